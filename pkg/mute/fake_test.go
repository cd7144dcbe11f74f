package mute

import (
	"errors"
	"fmt"

	"github.com/blaubaer/auto-mute/pkg/audio"
)

type fakeDevice struct {
	name   string
	volume float32
	mute   bool
	broken bool
}

type fakeCall struct {
	operation string
	id        audio.DeviceId
	value     any
}

type fakeController struct {
	devices       map[audio.DeviceId]*fakeDevice
	order         audio.DeviceIds
	defaultDevice audio.DeviceId
	listErr       error
	calls         []fakeCall
}

func newFakeController() *fakeController {
	return &fakeController{devices: map[audio.DeviceId]*fakeDevice{}}
}

func (this *fakeController) add(id audio.DeviceId, name string) *fakeDevice {
	result := &fakeDevice{name: name, volume: 0.8}
	this.devices[id] = result
	this.order = append(this.order, id)
	return result
}

func (this *fakeController) resolve(operation string, id audio.DeviceId) (*fakeDevice, error) {
	d, ok := this.devices[id]
	if !ok || d.broken {
		return nil, &audio.OperationFailedError{Kind: audio.ErrDeviceNotFound, Operation: operation, DeviceId: id}
	}
	return d, nil
}

func (this *fakeController) ListRenderDeviceIds() (audio.DeviceIds, error) {
	if err := this.listErr; err != nil {
		return nil, err
	}
	return append(audio.DeviceIds{}, this.order...), nil
}

func (this *fakeController) DefaultRenderDeviceId(role audio.Role) (audio.DeviceId, error) {
	this.calls = append(this.calls, fakeCall{"default", "", role})
	if this.defaultDevice == "" {
		return "", &audio.OperationFailedError{Kind: audio.ErrDeviceNotFound, Operation: "default"}
	}
	return this.defaultDevice, nil
}

func (this *fakeController) FriendlyName(id audio.DeviceId) (string, error) {
	d, err := this.resolve("name", id)
	if err != nil {
		return "", err
	}
	return d.name, nil
}

func (this *fakeController) GetVolume(id audio.DeviceId) (float32, error) {
	d, err := this.resolve("getVolume", id)
	if err != nil {
		return 0, err
	}
	return d.volume, nil
}

func (this *fakeController) SetVolume(id audio.DeviceId, v float32) error {
	this.calls = append(this.calls, fakeCall{"setVolume", id, v})
	d, err := this.resolve("setVolume", id)
	if err != nil {
		return err
	}
	d.volume = v
	return nil
}

func (this *fakeController) GetMute(id audio.DeviceId) (bool, error) {
	d, err := this.resolve("getMute", id)
	if err != nil {
		return false, err
	}
	return d.mute, nil
}

func (this *fakeController) SetMute(id audio.DeviceId, v bool) error {
	this.calls = append(this.calls, fakeCall{"setMute", id, v})
	d, err := this.resolve("setMute", id)
	if err != nil {
		return err
	}
	d.mute = v
	return nil
}

type fakeRecorder struct {
	lines []string
	err   error
}

func (this *fakeRecorder) Record(deviceName string, mute, volume bool) error {
	if this.err != nil {
		return this.err
	}
	this.lines = append(this.lines, FormatAction(deviceName, mute, volume))
	return nil
}

var errFakeDisk = errors.New("disk full")

func (this fakeCall) String() string {
	return fmt.Sprintf("%s(%s, %v)", this.operation, this.id, this.value)
}
