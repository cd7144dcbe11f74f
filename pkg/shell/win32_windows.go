//go:build windows

package shell

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	dllUser32   = windows.NewLazySystemDLL("user32.dll")
	dllKernel32 = windows.NewLazySystemDLL("kernel32.dll")
	dllGdi32    = windows.NewLazySystemDLL("gdi32.dll")

	procRegisterClassEx  = dllUser32.NewProc("RegisterClassExW")
	procUnregisterClass  = dllUser32.NewProc("UnregisterClassW")
	procCreateWindowEx   = dllUser32.NewProc("CreateWindowExW")
	procDefWindowProc    = dllUser32.NewProc("DefWindowProcW")
	procDestroyWindow    = dllUser32.NewProc("DestroyWindow")
	procShowWindow       = dllUser32.NewProc("ShowWindow")
	procIsWindowVisible  = dllUser32.NewProc("IsWindowVisible")
	procSetForeground    = dllUser32.NewProc("SetForegroundWindow")
	procGetMessage       = dllUser32.NewProc("GetMessageW")
	procTranslateMessage = dllUser32.NewProc("TranslateMessage")
	procDispatchMessage  = dllUser32.NewProc("DispatchMessageW")
	procPostMessage      = dllUser32.NewProc("PostMessageW")
	procPostQuitMessage  = dllUser32.NewProc("PostQuitMessage")
	procSendMessage      = dllUser32.NewProc("SendMessageW")
	procLoadCursor       = dllUser32.NewProc("LoadCursorW")
	procGetSystemMetrics = dllUser32.NewProc("GetSystemMetrics")
	procGetModuleHandle  = dllKernel32.NewProc("GetModuleHandleW")
	procGetStockObject   = dllGdi32.NewProc("GetStockObject")
)

const (
	wmSetFont         = 0x0030
	wmDestroy         = 0x0002
	wmClose           = 0x0010
	wmQueryEndSession = 0x0011
	wmEndSession      = 0x0016
	wmCommand         = 0x0111

	bmGetCheck   = 0x00F0
	bmSetCheck   = 0x00F1
	bstUnchecked = 0
	bstChecked   = 1

	wsCaption     = 0x00C00000
	wsThickFrame  = 0x00040000
	wsMinimizeBox = 0x00020000
	wsVisible     = 0x10000000
	wsChild       = 0x40000000
	wsTabStop     = 0x00010000

	bsPushButton    = 0x0
	bsDefPushButton = 0x1
	bsAutoCheckBox  = 0x3

	swHide       = 0
	swShowNormal = 1

	csVRedraw   = 0x1
	csHRedraw   = 0x2
	idcArrow    = 32512
	colorWindow = 5

	smCxScreen = 0
	smCyScreen = 1

	defaultGuiFont = 17

	bnClicked = 0
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

func loWord(v uintptr) uint16 {
	return uint16(v & 0xffff)
}

func hiWord(v uintptr) uint16 {
	return uint16((v >> 16) & 0xffff)
}

func boolOf(r0 uintptr) bool {
	return r0 != 0
}

func ptrOf(s *uint16) uintptr {
	return uintptr(unsafe.Pointer(s))
}
