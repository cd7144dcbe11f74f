package audio

// Stack controls render endpoints of the OS audio subsystem. It holds no
// platform handle between calls: every operation opens and closes its own
// session, so a Stack is safe to keep around for the whole process.
type Stack struct{}

const (
	operationList         = "list render devices"
	operationDefault      = "resolve default render device"
	operationFriendlyName = "get friendly name"
	operationGetVolume    = "get volume"
	operationSetVolume    = "set volume"
	operationGetMute      = "get mute"
	operationSetMute      = "set mute"
	operationDescribe     = "describe device"
	operationDescribeAll  = "describe render devices"
)
