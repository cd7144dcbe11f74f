package shell

import (
	"fmt"
)

// Command identifies a tray menu entry or a control of the settings
// window. The values are the Win32 command identifiers.
type Command uint16

const (
	CommandCheckMute   = Command(100)
	CommandCheckVolume = Command(200)
	CommandCheckTarget = Command(300)
	CommandOk          = Command(400)
	CommandCancel      = Command(500)

	CommandSettings = Command(1000)
	CommandMuteNow  = Command(1001)
	CommandLicense  = Command(1002)
	CommandExit     = Command(1003)
)

var (
	AllCommands = Commands{
		CommandCheckMute,
		CommandCheckVolume,
		CommandCheckTarget,
		CommandOk,
		CommandCancel,
		CommandSettings,
		CommandMuteNow,
		CommandLicense,
		CommandExit,
	}
)

func (this Command) String() string {
	switch this {
	case CommandCheckMute:
		return "checkMute"
	case CommandCheckVolume:
		return "checkVolume"
	case CommandCheckTarget:
		return "checkTarget"
	case CommandOk:
		return "ok"
	case CommandCancel:
		return "cancel"
	case CommandSettings:
		return "settings"
	case CommandMuteNow:
		return "muteNow"
	case CommandLicense:
		return "license"
	case CommandExit:
		return "exit"
	default:
		return fmt.Sprintf("unknown-command-%d", this)
	}
}

func (this Command) IsKnown() bool {
	return AllCommands.Has(this)
}

type Commands []Command

func (this Commands) Has(v Command) bool {
	for _, candidate := range this {
		if candidate == v {
			return true
		}
	}
	return false
}
