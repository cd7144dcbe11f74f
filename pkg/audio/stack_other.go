//go:build !windows

package audio

func (this *Stack) ListRenderDeviceIds() (DeviceIds, error) {
	return nil, newOperationFailed(ErrSessionInitFailed, operationList, "", ErrUnsupported)
}

func (this *Stack) DefaultRenderDeviceId(Role) (DeviceId, error) {
	return "", newOperationFailed(ErrSessionInitFailed, operationDefault, "", ErrUnsupported)
}

func (this *Stack) FriendlyName(id DeviceId) (string, error) {
	return "", newOperationFailed(ErrSessionInitFailed, operationFriendlyName, id, ErrUnsupported)
}

func (this *Stack) GetVolume(id DeviceId) (float32, error) {
	return 0, newOperationFailed(ErrSessionInitFailed, operationGetVolume, id, ErrUnsupported)
}

func (this *Stack) SetVolume(id DeviceId, _ float32) error {
	return newOperationFailed(ErrSessionInitFailed, operationSetVolume, id, ErrUnsupported)
}

func (this *Stack) GetMute(id DeviceId) (bool, error) {
	return false, newOperationFailed(ErrSessionInitFailed, operationGetMute, id, ErrUnsupported)
}

func (this *Stack) SetMute(id DeviceId, _ bool) error {
	return newOperationFailed(ErrSessionInitFailed, operationSetMute, id, ErrUnsupported)
}

func (this *Stack) Describe(id DeviceId) (Device, error) {
	return Device{}, newOperationFailed(ErrSessionInitFailed, operationDescribe, id, ErrUnsupported)
}

func (this *Stack) Devices() (Devices, error) {
	return nil, newOperationFailed(ErrSessionInitFailed, operationDescribeAll, "", ErrUnsupported)
}
