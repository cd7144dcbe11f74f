package mute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/auto-mute/pkg/audio"
	"github.com/blaubaer/auto-mute/pkg/preferences"
)

func TestMuter_Process_defaultDevice(t *testing.T) {
	ctrl := newFakeController()
	ctrl.add("Y", "Headphones")
	speakers := ctrl.add("X", "Speakers")
	ctrl.defaultDevice = "X"
	recorder := &fakeRecorder{}
	instance := &Muter{Audio: ctrl, Log: recorder}

	report, err := instance.Process(preferences.Preferences{Mute: true, Volume: true, Target: false, Logging: preferences.Bool(true)})
	require.NoError(t, err)

	assert.Equal(t, []fakeCall{
		{"default", "", audio.RoleConsole},
		{"setMute", "X", true},
		{"setVolume", "X", float32(0)},
	}, ctrl.calls)
	assert.True(t, speakers.mute)
	assert.Equal(t, float32(0), speakers.volume)
	assert.Equal(t, []string{"Speakers - Mute(True) Volume(True)"}, recorder.lines)
	assert.Equal(t, []Applied{{Id: "X", Name: "Speakers", Muted: true, Zeroed: true}}, report.Applied)
	assert.Empty(t, report.Skipped)
	assert.NoError(t, report.Err())
}

func TestMuter_Process_defaultDevice_onlyRequestedChanges(t *testing.T) {
	ctrl := newFakeController()
	speakers := ctrl.add("X", "Speakers")
	ctrl.defaultDevice = "X"
	recorder := &fakeRecorder{}
	instance := &Muter{Audio: ctrl, Log: recorder}

	_, err := instance.Process(preferences.Preferences{Mute: false, Volume: true, Target: false, Logging: preferences.Bool(true)})
	require.NoError(t, err)

	assert.False(t, speakers.mute)
	assert.Equal(t, float32(0), speakers.volume)
	assert.Equal(t, []string{"Speakers - Mute(False) Volume(True)"}, recorder.lines)
}

func TestMuter_Process_defaultDevice_failurePropagates(t *testing.T) {
	ctrl := newFakeController()
	other := ctrl.add("Y", "Headphones")
	instance := &Muter{Audio: ctrl}

	_, err := instance.Process(preferences.Preferences{Mute: true, Target: false})
	assert.ErrorIs(t, err, audio.ErrDeviceNotFound)
	assert.False(t, other.mute)

	ctrl.defaultDevice = "X"
	_, err = instance.Process(preferences.Preferences{Mute: true, Target: false})
	assert.ErrorIs(t, err, audio.ErrDeviceNotFound)
	assert.False(t, other.mute)
}

func TestMuter_Process_allDevices(t *testing.T) {
	ctrl := newFakeController()
	a := ctrl.add("A", "Speakers")
	b := ctrl.add("B", "Headphones")
	ctrl.defaultDevice = "A"
	recorder := &fakeRecorder{}
	instance := &Muter{Audio: ctrl, Log: recorder}

	report, err := instance.Process(preferences.Preferences{Mute: true, Volume: false, Target: true, Logging: preferences.Bool(true)})
	require.NoError(t, err)

	assert.True(t, a.mute)
	assert.True(t, b.mute)
	assert.Equal(t, float32(0.8), a.volume)
	assert.Equal(t, float32(0.8), b.volume)
	assert.Equal(t, []string{
		"Speakers - Mute(True) Volume(False)",
		"Headphones - Mute(True) Volume(False)",
	}, recorder.lines)
	assert.Len(t, report.Applied, 2)
	assert.Empty(t, report.Skipped)
}

func TestMuter_Process_allDevices_skipsDisconnectedDevice(t *testing.T) {
	ctrl := newFakeController()
	a := ctrl.add("A", "Speakers")
	b := ctrl.add("B", "Unplugged")
	c := ctrl.add("C", "Headphones")
	b.broken = true
	instance := &Muter{Audio: ctrl, Log: &fakeRecorder{}}

	report, err := instance.Process(preferences.Preferences{Mute: true, Volume: true, Target: true})
	require.NoError(t, err)

	assert.True(t, a.mute)
	assert.False(t, b.mute)
	assert.True(t, c.mute)
	assert.Len(t, report.Applied, 2)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, audio.DeviceId("B"), report.Skipped[0].Id)
	assert.ErrorIs(t, report.Skipped[0].Cause, audio.ErrDeviceNotFound)
	assert.ErrorIs(t, report.Err(), audio.ErrDeviceNotFound)
}

func TestMuter_Process_allDevices_listFailure(t *testing.T) {
	ctrl := newFakeController()
	ctrl.listErr = &audio.OperationFailedError{Kind: audio.ErrSessionInitFailed, Operation: "list"}
	instance := &Muter{Audio: ctrl}

	_, err := instance.Process(preferences.Default())
	assert.ErrorIs(t, err, audio.ErrSessionInitFailed)
}

func TestMuter_Process_noDevices(t *testing.T) {
	instance := &Muter{Audio: newFakeController()}

	report, err := instance.Process(preferences.Default())
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.Empty(t, report.Skipped)
}

func TestMuter_Process_loggingDisabled(t *testing.T) {
	ctrl := newFakeController()
	ctrl.add("A", "Speakers")
	recorder := &fakeRecorder{}
	instance := &Muter{Audio: ctrl, Log: recorder}

	_, err := instance.Process(preferences.Preferences{Mute: true, Target: true, Logging: preferences.Bool(false)})
	require.NoError(t, err)
	_, err = instance.Process(preferences.Preferences{Mute: true, Target: true})
	require.NoError(t, err)

	assert.Empty(t, recorder.lines)
}

func TestMuter_Process_logFailureDoesNotAbort(t *testing.T) {
	ctrl := newFakeController()
	a := ctrl.add("A", "Speakers")
	b := ctrl.add("B", "Headphones")
	instance := &Muter{Audio: ctrl, Log: &fakeRecorder{err: errFakeDisk}}

	report, err := instance.Process(preferences.Preferences{Mute: true, Target: true, Logging: preferences.Bool(true)})
	require.NoError(t, err)

	assert.True(t, a.mute)
	assert.True(t, b.mute)
	assert.Len(t, report.Applied, 2)
	assert.Equal(t, 2, report.LogFailures)
	assert.Equal(t, "2 applied, 0 skipped, 2 log failures", report.String())
}
