//go:build windows

package audio

import (
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
)

const (
	hresultFalse             = 0x00000001
	hresultRpcChangedMode    = 0x80010106
	hresultDeviceInvalidated = 0x88890004
)

func (this *Stack) ListRenderDeviceIds() (result DeviceIds, _ error) {
	err := this.withEnumerator(operationList, "", func(enumerator *wca.IMMDeviceEnumerator) error {
		return this.eachRenderDevice(enumerator, operationList, "", func(id DeviceId, _ *wca.IMMDevice) (bool, error) {
			result = append(result, id)
			return true, nil
		})
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = DeviceIds{}
	}
	return result, nil
}

func (this *Stack) DefaultRenderDeviceId(role Role) (result DeviceId, _ error) {
	err := this.withEnumerator(operationDefault, "", func(enumerator *wca.IMMDeviceEnumerator) error {
		var device *wca.IMMDevice
		if err := enumerator.GetDefaultAudioEndpoint(wca.ERender, role.eRole(), &device); err != nil {
			return newOperationFailed(ErrDeviceNotFound, operationDefault+" for role "+role.String(), "", err)
		}
		defer device.Release()

		var id string
		if err := device.GetId(&id); err != nil {
			return newOperationFailed(ErrPropertyAccessFailed, operationDefault+" for role "+role.String(), "", err)
		}
		result = DeviceId(id)
		return nil
	})
	return result, err
}

func (this *Stack) FriendlyName(id DeviceId) (result string, _ error) {
	err := this.withDevice(operationFriendlyName, id, func(device *wca.IMMDevice) (err error) {
		result, err = this.friendlyNameOf(device, operationFriendlyName, id)
		return err
	})
	return result, err
}

func (this *Stack) GetVolume(id DeviceId) (result float32, _ error) {
	err := this.withEndpointVolume(operationGetVolume, id, func(volume *wca.IAudioEndpointVolume) error {
		if err := volume.GetMasterVolumeLevelScalar(&result); err != nil {
			return newOperationFailed(ErrPropertyAccessFailed, operationGetVolume, id, err)
		}
		return nil
	})
	return result, err
}

func (this *Stack) SetVolume(id DeviceId, level float32) error {
	return this.withEndpointVolume(operationSetVolume, id, func(volume *wca.IAudioEndpointVolume) error {
		if err := volume.SetMasterVolumeLevelScalar(level, nil); err != nil {
			return newOperationFailed(ErrPropertyAccessFailed, operationSetVolume, id, err)
		}
		return nil
	})
}

func (this *Stack) GetMute(id DeviceId) (result bool, _ error) {
	err := this.withEndpointVolume(operationGetMute, id, func(volume *wca.IAudioEndpointVolume) error {
		if err := volume.GetMute(&result); err != nil {
			return newOperationFailed(ErrPropertyAccessFailed, operationGetMute, id, err)
		}
		return nil
	})
	return result, err
}

func (this *Stack) SetMute(id DeviceId, mute bool) error {
	return this.withEndpointVolume(operationSetMute, id, func(volume *wca.IAudioEndpointVolume) error {
		if err := volume.SetMute(mute, nil); err != nil {
			return newOperationFailed(ErrPropertyAccessFailed, operationSetMute, id, err)
		}
		return nil
	})
}

func (this *Stack) Describe(id DeviceId) (result Device, _ error) {
	err := this.withDevice(operationDescribe, id, func(device *wca.IMMDevice) (err error) {
		result, err = this.describe(device, operationDescribe, id)
		return err
	})
	return result, err
}

func (this *Stack) Devices() (result Devices, _ error) {
	err := this.withEnumerator(operationDescribeAll, "", func(enumerator *wca.IMMDeviceEnumerator) error {
		return this.eachRenderDevice(enumerator, operationDescribeAll, "", func(id DeviceId, device *wca.IMMDevice) (bool, error) {
			d, err := this.describe(device, operationDescribeAll, id)
			if err != nil {
				return false, err
			}
			result = append(result, d)
			return true, nil
		})
	})
	return result, err
}

// withEnumerator brackets fn with a COM session of its own. The goroutine
// stays on its OS thread until the session is closed again, as COM
// apartments are bound to threads.
func (this *Stack) withEnumerator(operation string, id DeviceId, fn func(*wca.IMMDeviceEnumerator) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		switch CodeOf(err) {
		case hresultFalse:
			// Already initialized on this thread, but still counted.
			defer ole.CoUninitialize()
		case hresultRpcChangedMode:
			// Initialized with another concurrency model by someone else.
		default:
			return newOperationFailed(ErrSessionInitFailed, operation, id, err)
		}
	} else {
		defer ole.CoUninitialize()
	}

	var enumerator *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &enumerator); err != nil {
		return newOperationFailed(ErrSessionInitFailed, operation, id, err)
	}
	defer enumerator.Release()

	return fn(enumerator)
}

func (this *Stack) withDevice(operation string, id DeviceId, fn func(*wca.IMMDevice) error) error {
	return this.withEnumerator(operation, id, func(enumerator *wca.IMMDeviceEnumerator) error {
		var found *wca.IMMDevice
		if err := this.eachRenderDevice(enumerator, operation, id, func(candidateId DeviceId, candidate *wca.IMMDevice) (bool, error) {
			if candidateId != id {
				return true, nil
			}
			candidate.AddRef()
			found = candidate
			return false, nil
		}); err != nil {
			return err
		}
		if found == nil {
			return newOperationFailed(ErrDeviceNotFound, operation, id, nil)
		}
		defer found.Release()

		return fn(found)
	})
}

func (this *Stack) withEndpointVolume(operation string, id DeviceId, fn func(*wca.IAudioEndpointVolume) error) error {
	return this.withDevice(operation, id, func(device *wca.IMMDevice) error {
		var volume *wca.IAudioEndpointVolume
		if err := device.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &volume); err != nil {
			kind := ErrPropertyAccessFailed
			if CodeOf(err) == hresultDeviceInvalidated {
				kind = ErrDeviceNotFound
			}
			return newOperationFailed(kind, operation, id, err)
		}
		defer volume.Release()

		return fn(volume)
	})
}

// eachRenderDevice visits every active render endpoint in enumeration
// order until fn returns false. The device handed to fn is released after
// fn returns.
func (this *Stack) eachRenderDevice(enumerator *wca.IMMDeviceEnumerator, operation string, id DeviceId, fn func(DeviceId, *wca.IMMDevice) (bool, error)) error {
	var collection *wca.IMMDeviceCollection
	if err := enumerator.EnumAudioEndpoints(wca.ERender, wca.DEVICE_STATE_ACTIVE, &collection); err != nil {
		return newOperationFailed(ErrSessionInitFailed, operation, id, err)
	}
	defer collection.Release()

	var count uint32
	if err := collection.GetCount(&count); err != nil {
		return newOperationFailed(ErrSessionInitFailed, operation, id, err)
	}

	for i := uint32(0); i < count; i++ {
		canContinue, err := this.visitRenderDevice(collection, i, operation, id, fn)
		if err != nil {
			return err
		}
		if !canContinue {
			return nil
		}
	}
	return nil
}

func (this *Stack) visitRenderDevice(collection *wca.IMMDeviceCollection, index uint32, operation string, id DeviceId, fn func(DeviceId, *wca.IMMDevice) (bool, error)) (bool, error) {
	var device *wca.IMMDevice
	if err := collection.Item(index, &device); err != nil {
		return false, newOperationFailed(ErrDeviceNotFound, operation, id, err)
	}
	defer device.Release()

	var candidateId string
	if err := device.GetId(&candidateId); err != nil {
		return false, newOperationFailed(ErrPropertyAccessFailed, operation, id, err)
	}

	return fn(DeviceId(candidateId), device)
}

func (this *Stack) friendlyNameOf(device *wca.IMMDevice, operation string, id DeviceId) (string, error) {
	var propertyStore *wca.IPropertyStore
	if err := device.OpenPropertyStore(wca.STGM_READ, &propertyStore); err != nil {
		return "", newOperationFailed(ErrPropertyAccessFailed, operation, id, err)
	}
	defer propertyStore.Release()

	var name wca.PROPVARIANT
	if err := propertyStore.GetValue(&wca.PKEY_Device_FriendlyName, &name); err != nil {
		return "", newOperationFailed(ErrPropertyAccessFailed, operation, id, err)
	}

	return name.String(), nil
}

func (this *Stack) describe(device *wca.IMMDevice, operation string, id DeviceId) (Device, error) {
	name, err := this.friendlyNameOf(device, operation, id)
	if err != nil {
		return Device{}, err
	}

	var volume *wca.IAudioEndpointVolume
	if err := device.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &volume); err != nil {
		return Device{}, newOperationFailed(ErrPropertyAccessFailed, operation, id, err)
	}
	defer volume.Release()

	result := Device{
		Id:   id,
		Name: name,
	}
	if err := volume.GetMasterVolumeLevelScalar(&result.Volume); err != nil {
		return Device{}, newOperationFailed(ErrPropertyAccessFailed, operation, id, err)
	}
	if err := volume.GetMute(&result.Mute); err != nil {
		return Device{}, newOperationFailed(ErrPropertyAccessFailed, operation, id, err)
	}

	return result, nil
}

func (this Role) eRole() uint32 {
	switch this {
	case RoleMultimedia:
		return wca.EMultimedia
	case RoleCommunications:
		return wca.ECommunications
	default:
		return wca.EConsole
	}
}
