//go:build windows

package shell

import (
	log "github.com/echocat/slf4g"
	"github.com/getlantern/systray"
)

type commandTarget interface {
	PostCommand(Command)
}

type tray struct {
	options Options
	target  commandTarget
}

func (this *tray) onReady() {
	if len(this.options.Icon) > 0 {
		systray.SetIcon(this.options.Icon)
	}
	systray.SetTitle(this.options.title())
	systray.SetTooltip(this.options.tooltip())

	items := map[Command]*systray.MenuItem{
		CommandSettings: systray.AddMenuItem("Settings", "Choose what happens to the audio devices."),
		CommandMuteNow:  systray.AddMenuItem("Mute now", "Process the audio devices right now."),
	}
	systray.AddSeparator()
	if this.options.License {
		items[CommandLicense] = systray.AddMenuItem("Open source licenses", "Show the licenses of the bundled open source software.")
		systray.AddSeparator()
	}
	items[CommandExit] = systray.AddMenuItem("Exit "+this.options.title(), "Exit "+this.options.title()+".")

	for c, item := range items {
		go this.forward(c, item)
	}

	log.Debug("Tray ready.")
}

func (this *tray) forward(c Command, item *systray.MenuItem) {
	this.forwardClicks(c, item.ClickedCh)
}

// forwardClicks posts every click to the window thread as c.
func (this *tray) forwardClicks(c Command, clicks <-chan struct{}) {
	for range clicks {
		this.target.PostCommand(c)
	}
}
