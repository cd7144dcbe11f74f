package preferences

import (
	"fmt"
)

// Preferences decides what happens to the audio devices once muting is
// triggered.
type Preferences struct {
	// Mute mutes the device(s).
	Mute bool `json:"mute"`
	// Volume sets the master volume of the device(s) to zero.
	Volume bool `json:"volume"`
	// Target processes every active render device instead of only the
	// default console device.
	Target bool `json:"target"`
	// Logging appends a line to the action log for every processed device.
	// It is not exposed in the settings window and has to be set by hand;
	// nil means it was never set.
	Logging *bool `json:"logging,omitempty"`
}

func Default() Preferences {
	return Preferences{
		Mute:   true,
		Volume: false,
		Target: true,
	}
}

func (this Preferences) IsLogging() bool {
	return this.Logging != nil && *this.Logging
}

// WithChecks returns a copy with the three user editable values replaced.
// Logging stays as it is.
func (this Preferences) WithChecks(mute, volume, target bool) Preferences {
	result := this
	result.Mute = mute
	result.Volume = volume
	result.Target = target
	return result
}

func (this Preferences) String() string {
	return fmt.Sprintf("mute=%v, volume=%v, target=%v, logging=%v", this.Mute, this.Volume, this.Target, this.IsLogging())
}

func Bool(v bool) *bool {
	return &v
}
