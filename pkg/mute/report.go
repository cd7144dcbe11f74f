package mute

import (
	"errors"
	"fmt"

	"github.com/blaubaer/auto-mute/pkg/audio"
)

type Applied struct {
	Id     audio.DeviceId
	Name   string
	Muted  bool
	Zeroed bool
}

type Skip struct {
	Id    audio.DeviceId
	Cause error
}

func (this Skip) String() string {
	return fmt.Sprintf("%s: %v", this.Id, this.Cause)
}

type Report struct {
	Applied     []Applied
	Skipped     []Skip
	LogFailures int
}

func (this Report) String() string {
	return fmt.Sprintf("%d applied, %d skipped, %d log failures", len(this.Applied), len(this.Skipped), this.LogFailures)
}

// Err joins the causes of all skipped devices, or returns nil if nothing
// was skipped.
func (this Report) Err() error {
	if len(this.Skipped) == 0 {
		return nil
	}
	errs := make([]error, len(this.Skipped))
	for i, v := range this.Skipped {
		errs[i] = v.Cause
	}
	return errors.Join(errs...)
}
