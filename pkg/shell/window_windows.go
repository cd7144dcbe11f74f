//go:build windows

package shell

import (
	"fmt"
	"unsafe"

	log "github.com/echocat/slf4g"
	"golang.org/x/sys/windows"
)

const (
	windowWidth  = 350
	windowHeight = 200
)

// window is the hidden main window which doubles as the settings panel. It
// must be created, used and disposed on one locked OS thread; only the
// Post* methods may be called from elsewhere.
type window struct {
	instance  windows.Handle
	className *uint16
	hwnd      windows.HWND
	destroyed bool

	checkMute   windows.HWND
	checkVolume windows.HWND
	checkTarget windows.HWND

	dispatch func(Message) Result
}

func newWindow(title string, dispatch func(Message) Result) (*window, error) {
	result := &window{
		dispatch: dispatch,
	}
	success := false
	defer func() {
		if !success {
			result.dispose()
		}
	}()

	if err := result.register(title); err != nil {
		return nil, err
	}
	if err := result.create(title); err != nil {
		return nil, err
	}

	success = true
	return result, nil
}

func (this *window) register(className string) error {
	instance, _, err := procGetModuleHandle.Call(0)
	if instance == 0 {
		return fmt.Errorf("%w: cannot get module handle: %v", ErrWindowCreationFailed, err)
	}
	this.instance = windows.Handle(instance)

	if this.className, err = windows.UTF16PtrFromString(className); err != nil {
		return fmt.Errorf("%w: illegal class name %q: %v", ErrWindowCreationFailed, className, err)
	}

	cursor, _, _ := procLoadCursor.Call(0, idcArrow)

	wc := wndClassEx{
		Style:      csHRedraw | csVRedraw,
		WndProc:    windows.NewCallback(this.windowProc),
		Instance:   this.instance,
		Cursor:     windows.Handle(cursor),
		Background: windows.Handle(colorWindow + 1),
		ClassName:  this.className,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))

	if r0, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); r0 == 0 {
		this.className = nil
		return fmt.Errorf("%w: cannot register window class %q: %v", ErrWindowCreationFailed, className, err)
	}
	return nil
}

func (this *window) create(title string) (err error) {
	screenWidth, _, _ := procGetSystemMetrics.Call(smCxScreen)
	screenHeight, _, _ := procGetSystemMetrics.Call(smCyScreen)

	if this.hwnd, err = this.createWindow(
		0,
		this.className,
		title,
		wsCaption|wsThickFrame|wsMinimizeBox,
		(int32(screenWidth)-windowWidth)/2,
		(int32(screenHeight)-windowHeight)/2,
		windowWidth,
		windowHeight,
		0,
		0,
	); err != nil {
		return err
	}

	button, _ := windows.UTF16PtrFromString("BUTTON")
	control := func(text string, style uint32, id Command, x, y, width, height int32) (windows.HWND, error) {
		return this.createWindow(0, button, text, wsVisible|wsChild|wsTabStop|style, x, y, width, height, this.hwnd, uintptr(id))
	}

	if this.checkMute, err = control("Mute audio device(s).", bsAutoCheckBox, CommandCheckMute, 10, 10, 300, 20); err != nil {
		return err
	}
	if this.checkVolume, err = control("Set the volume to zero.", bsAutoCheckBox, CommandCheckVolume, 10, 40, 300, 20); err != nil {
		return err
	}
	if this.checkTarget, err = control("All speakers are targeted to process.", bsAutoCheckBox, CommandCheckTarget, 10, 70, 300, 20); err != nil {
		return err
	}
	if _, err = control("OK", bsDefPushButton, CommandOk, 30, 110, 100, 30); err != nil {
		return err
	}
	if _, err = control("Cancel", bsPushButton, CommandCancel, 200, 110, 100, 30); err != nil {
		return err
	}

	return nil
}

func (this *window) createWindow(exStyle uint32, className *uint16, title string, style uint32, x, y, width, height int32, parent windows.HWND, menu uintptr) (windows.HWND, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("%w: illegal title %q: %v", ErrWindowCreationFailed, title, err)
	}

	r0, _, err := procCreateWindowEx.Call(
		uintptr(exStyle),
		ptrOf(className),
		ptrOf(titlePtr),
		uintptr(style),
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		uintptr(parent),
		menu,
		uintptr(this.instance),
		0,
	)
	if r0 == 0 {
		return 0, fmt.Errorf("%w: cannot create %q: %v", ErrWindowCreationFailed, title, err)
	}
	result := windows.HWND(r0)

	if font, _, _ := procGetStockObject.Call(defaultGuiFont); font != 0 {
		_, _, _ = procSendMessage.Call(r0, wmSetFont, font, 1)
	}

	return result, nil
}

func (this *window) windowProc(hwnd, uMsg, wParam, lParam uintptr) uintptr {
	if m := translateMessage(uint32(uMsg), wParam); m.Kind != MessageOther && this.dispatch != nil {
		switch this.dispatch(m) {
		case ResultHandled:
			return 0
		case ResultAllow:
			return 1
		}
	}
	r0, _, _ := procDefWindowProc.Call(hwnd, uMsg, wParam, lParam)
	return r0
}

func translateMessage(uMsg uint32, wParam uintptr) Message {
	switch uMsg {
	case wmCommand:
		if hiWord(wParam) != bnClicked {
			return Message{Kind: MessageOther}
		}
		return CommandMessage(Command(loWord(wParam)))
	case wmClose:
		return Message{Kind: MessageClose}
	case wmDestroy:
		return Message{Kind: MessageDestroy}
	case wmQueryEndSession:
		return Message{Kind: MessageQueryEndSession}
	case wmEndSession:
		return Message{Kind: MessageEndSession, Ending: wParam != 0}
	default:
		return Message{Kind: MessageOther}
	}
}

func (this *window) loop() error {
	var m msg
	for {
		r0, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r0) {
		case -1:
			return fmt.Errorf("cannot receive window message: %w", err)
		case 0:
			return nil
		}
		_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		_, _, _ = procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (this *window) dispose() {
	if this.hwnd != 0 && !this.destroyed {
		this.Destroy()
	}
	if this.className != nil {
		if r0, _, err := procUnregisterClass.Call(ptrOf(this.className), uintptr(this.instance)); r0 == 0 {
			log.WithError(err).
				Debug("Cannot unregister window class.")
		}
		this.className = nil
	}
}

func (this *window) Show() {
	_, _, _ = procShowWindow.Call(uintptr(this.hwnd), swShowNormal)
	_, _, _ = procSetForeground.Call(uintptr(this.hwnd))
}

func (this *window) Hide() {
	_, _, _ = procShowWindow.Call(uintptr(this.hwnd), swHide)
}

func (this *window) IsVisible() bool {
	r0, _, _ := procIsWindowVisible.Call(uintptr(this.hwnd))
	return boolOf(r0)
}

func (this *window) Checks() (mute, volume, target bool) {
	return this.isChecked(this.checkMute), this.isChecked(this.checkVolume), this.isChecked(this.checkTarget)
}

func (this *window) SetChecks(mute, volume, target bool) {
	this.setChecked(this.checkMute, mute)
	this.setChecked(this.checkVolume, volume)
	this.setChecked(this.checkTarget, target)
}

func (this *window) isChecked(control windows.HWND) bool {
	r0, _, _ := procSendMessage.Call(uintptr(control), bmGetCheck, 0, 0)
	return r0 == bstChecked
}

func (this *window) setChecked(control windows.HWND, v bool) {
	state := uintptr(bstUnchecked)
	if v {
		state = bstChecked
	}
	_, _, _ = procSendMessage.Call(uintptr(control), bmSetCheck, state, 0)
}

func (this *window) PostCommand(c Command) {
	if r0, _, err := procPostMessage.Call(uintptr(this.hwnd), wmCommand, uintptr(c), 0); r0 == 0 {
		log.WithError(err).
			With("command", c).
			Warn("Cannot post command to window.")
	}
}

func (this *window) PostClose() {
	_, _, _ = procPostMessage.Call(uintptr(this.hwnd), wmClose, 0, 0)
}

func (this *window) Destroy() {
	this.destroyed = true
	_, _, _ = procDestroyWindow.Call(uintptr(this.hwnd))
}

func (this *window) Quit() {
	_, _, _ = procPostQuitMessage.Call(0)
}
