package shell

import (
	"errors"

	log "github.com/echocat/slf4g"

	"github.com/blaubaer/auto-mute/pkg/preferences"
)

var (
	ErrWindowCreationFailed = errors.New("window creation failed")
	ErrUnsupported          = errors.New("the settings window is not supported on this platform")
)

// Window is the settings window together with the message loop it lives in.
type Window interface {
	Show()
	Hide()
	IsVisible() bool
	Checks() (mute, volume, target bool)
	SetChecks(mute, volume, target bool)
	// PostCommand queues c to be dispatched on the window thread.
	PostCommand(c Command)
	PostClose()
	Destroy()
	// Quit ends the message loop.
	Quit()
}

type Actions interface {
	Process(preferences.Preferences) error
	SavePreferences(preferences.Preferences) error
	OpenLicense() error
}

// Shell owns the state of the presentation layer: the current preferences
// and the settings window. It is created with the preferences loaded at
// startup, becomes usable with Attach once the window exists and is torn
// down when the window is destroyed. Dispatch must only be called from the
// thread running the message loop.
type Shell struct {
	Actions Actions

	preferences preferences.Preferences
	window      Window
}

func New(actions Actions, initial preferences.Preferences) *Shell {
	return &Shell{
		Actions:     actions,
		preferences: initial,
	}
}

func (this *Shell) Attach(w Window) {
	this.window = w
	p := this.preferences
	w.SetChecks(p.Mute, p.Volume, p.Target)
	log.With("preferences", p).
		Debug("Settings window attached.")
}

func (this *Shell) Preferences() preferences.Preferences {
	return this.preferences
}

func (this *Shell) State() State {
	if w := this.window; w != nil && w.IsVisible() {
		return StateSettingsVisible
	}
	return StateHidden
}

func (this *Shell) IsAttached() bool {
	return this.window != nil
}

func (this *Shell) Dispatch(m Message) Result {
	if this.window == nil {
		return ResultUnhandled
	}

	switch m.Kind {
	case MessageCommand:
		return this.onCommand(m.Command)
	case MessageClose:
		return this.onClose()
	case MessageDestroy:
		return this.onDestroy()
	case MessageQueryEndSession:
		return ResultAllow
	case MessageEndSession:
		return this.onEndSession(m.Ending)
	default:
		return ResultUnhandled
	}
}

func (this *Shell) onCommand(c Command) Result {
	log.With("command", c).
		With("state", this.State()).
		Debug("Command received.")

	switch c {
	case CommandSettings:
		this.window.Show()
	case CommandMuteNow:
		this.process("muteNow")
	case CommandLicense:
		if err := this.Actions.OpenLicense(); err != nil {
			log.WithError(err).
				Warn("Cannot open the open source licenses.")
		}
	case CommandExit:
		this.window.PostClose()
	case CommandCheckMute, CommandCheckVolume, CommandCheckTarget:
		// The checkboxes toggle themselves; their state is read on OK.
	case CommandOk:
		this.confirmSettings()
	case CommandCancel:
		// Edits stay in the checkboxes and are shown again on next open.
		this.window.Hide()
	default:
		return ResultUnhandled
	}
	return ResultHandled
}

func (this *Shell) confirmSettings() {
	this.preferences = this.preferences.WithChecks(this.window.Checks())
	if err := this.Actions.SavePreferences(this.preferences); err != nil {
		log.WithError(err).
			Error("Cannot save preferences.")
	}
	this.window.Hide()
}

func (this *Shell) onClose() Result {
	if this.window.IsVisible() {
		log.Debug("Close requested while settings are open. Ignored.")
		return ResultHandled
	}
	this.window.Destroy()
	return ResultHandled
}

func (this *Shell) onDestroy() Result {
	w := this.window
	this.window = nil
	w.Quit()
	log.Debug("Settings window destroyed.")
	return ResultHandled
}

func (this *Shell) onEndSession(ending bool) Result {
	if ending {
		log.Info("Session ends. Processing audio devices...")
		this.process("endSession")
	}
	return ResultHandled
}

func (this *Shell) process(trigger string) {
	if err := this.Actions.Process(this.preferences); err != nil {
		log.WithError(err).
			With("trigger", trigger).
			Error("Cannot process audio devices.")
	}
}
