package audio

import (
	"fmt"
	"strings"
)

// DeviceId is the opaque endpoint identifier assigned by the OS.
type DeviceId string

func (this DeviceId) String() string {
	return string(this)
}

func (this DeviceId) IsZero() bool {
	return this == ""
}

type DeviceIds []DeviceId

func (this DeviceIds) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this DeviceIds) Contains(v DeviceId) bool {
	for _, candidate := range this {
		if candidate == v {
			return true
		}
	}
	return false
}

// Device is a snapshot of a render endpoint at the time it was described.
type Device struct {
	Id     DeviceId `json:"id"`
	Name   string   `json:"name"`
	Volume float32  `json:"volume"`
	Mute   bool     `json:"mute"`
}

func (this Device) String() string {
	return fmt.Sprintf("%s (volume: %.0f%%, mute: %v)", this.Name, this.Volume*100, this.Mute)
}

type Devices []Device

func (this Devices) IsZero() bool {
	return len(this) <= 0
}

func (this Devices) HasContent() bool {
	return !this.IsZero()
}

func (this Devices) Ids() DeviceIds {
	result := make(DeviceIds, len(this))
	for i, v := range this {
		result[i] = v.Id
	}
	return result
}

func (this Devices) String() string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return strings.Join(result, ", ")
}
