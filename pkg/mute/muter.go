package mute

import (
	"fmt"

	log "github.com/echocat/slf4g"

	"github.com/blaubaer/auto-mute/pkg/audio"
	"github.com/blaubaer/auto-mute/pkg/preferences"
)

// Controller is the part of audio.Stack the Muter depends on.
type Controller interface {
	ListRenderDeviceIds() (audio.DeviceIds, error)
	DefaultRenderDeviceId(audio.Role) (audio.DeviceId, error)
	FriendlyName(audio.DeviceId) (string, error)
	GetVolume(audio.DeviceId) (float32, error)
	SetVolume(audio.DeviceId, float32) error
	GetMute(audio.DeviceId) (bool, error)
	SetMute(audio.DeviceId, bool) error
}

type Recorder interface {
	Record(deviceName string, mute, volume bool) error
}

type Muter struct {
	Audio Controller
	Log   Recorder
}

// Process mutes and/or zeroes either every render device or only the
// default console device, depending on p.Target.
func (this *Muter) Process(p preferences.Preferences) (Report, error) {
	log.With("preferences", p).
		Debug("Processing audio devices...")

	if p.Target {
		return this.MuteAll(p)
	}
	return this.MuteDefault(p)
}

// MuteDefault only touches the default device of the console role. Every
// failure is returned to the caller.
func (this *Muter) MuteDefault(p preferences.Preferences) (report Report, _ error) {
	id, err := this.Audio.DefaultRenderDeviceId(audio.RoleConsole)
	if err != nil {
		return report, fmt.Errorf("cannot resolve default render device: %w", err)
	}

	applied, err := this.apply(id, p)
	if err != nil {
		return report, err
	}
	report.Applied = append(report.Applied, applied)
	this.record(&report, applied, p)

	return report, nil
}

// MuteAll touches every active render device. A device that fails is
// skipped and does not prevent the others from being processed.
func (this *Muter) MuteAll(p preferences.Preferences) (report Report, _ error) {
	ids, err := this.Audio.ListRenderDeviceIds()
	if err != nil {
		return report, fmt.Errorf("cannot list render devices: %w", err)
	}

	for _, id := range ids {
		applied, err := this.apply(id, p)
		if err != nil {
			log.WithError(err).
				With("device", id).
				Warn("Cannot process audio device. Skipping it.")
			report.Skipped = append(report.Skipped, Skip{id, err})
			continue
		}
		report.Applied = append(report.Applied, applied)
		this.record(&report, applied, p)
	}

	return report, nil
}

func (this *Muter) apply(id audio.DeviceId, p preferences.Preferences) (Applied, error) {
	name, err := this.Audio.FriendlyName(id)
	if err != nil {
		return Applied{}, fmt.Errorf("cannot resolve name of device %q: %w", id, err)
	}
	result := Applied{
		Id:   id,
		Name: name,
	}

	if p.Mute {
		if err := this.Audio.SetMute(id, true); err != nil {
			return Applied{}, fmt.Errorf("cannot mute device %q: %w", name, err)
		}
		result.Muted = true
	}
	if p.Volume {
		if err := this.Audio.SetVolume(id, 0); err != nil {
			return Applied{}, fmt.Errorf("cannot set volume of device %q to zero: %w", name, err)
		}
		result.Zeroed = true
	}

	log.With("device", name).
		With("mute", p.Mute).
		With("volume", p.Volume).
		Info("Audio device processed.")

	return result, nil
}

// record writes the action log line. A failing log does not undo or fail
// an otherwise successful mute.
func (this *Muter) record(report *Report, applied Applied, p preferences.Preferences) {
	if !p.IsLogging() || this.Log == nil {
		return
	}
	if err := this.Log.Record(applied.Name, p.Mute, p.Volume); err != nil {
		log.WithError(err).
			With("device", applied.Name).
			Warn("Cannot record action.")
		report.LogFailures++
	}
}
