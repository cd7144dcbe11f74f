package shell

// Options of the tray and the settings window.
type Options struct {
	Title   string
	Tooltip string
	Icon    []byte

	// License enables the "Open source licenses" menu entry.
	License bool
}

func (this Options) title() string {
	if this.Title == "" {
		return "Auto Mute"
	}
	return this.Title
}

func (this Options) tooltip() string {
	if this.Tooltip == "" {
		return this.title()
	}
	return this.Tooltip
}
