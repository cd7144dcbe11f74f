package audio

import (
	"errors"
	"fmt"

	"github.com/go-ole/go-ole"

	"github.com/blaubaer/auto-mute/pkg/common"
)

var (
	ErrSessionInitFailed    = errors.New("audio session initialization failed")
	ErrDeviceNotFound       = errors.New("audio device not found")
	ErrPropertyAccessFailed = errors.New("audio property access failed")
	ErrUnsupported          = errors.New("audio control is not supported on this platform")
)

// OperationFailedError is returned by every operation of Stack. Kind is one
// of the Err* sentinels and can be matched with errors.Is.
type OperationFailedError struct {
	Kind      error
	Operation string
	DeviceId  DeviceId
	Code      uint32
	Cause     error
}

func (this *OperationFailedError) Error() string {
	var target string
	if !this.DeviceId.IsZero() {
		target = fmt.Sprintf(" on device %q", this.DeviceId)
	}
	if this.Cause == nil {
		return fmt.Sprintf("%s%s: %v", this.Operation, target, this.Kind)
	}
	if this.Code != 0 {
		return fmt.Sprintf("%s%s: %v (0x%08X): %v", this.Operation, target, this.Kind, this.Code, this.Cause)
	}
	return fmt.Sprintf("%s%s: %v: %v", this.Operation, target, this.Kind, this.Cause)
}

func (this *OperationFailedError) Unwrap() error {
	return this.Cause
}

func (this *OperationFailedError) Is(target error) bool {
	return this.Kind != nil && target == this.Kind
}

func newOperationFailed(kind error, operation string, id DeviceId, cause error) *OperationFailedError {
	return &OperationFailedError{
		Kind:      kind,
		Operation: operation,
		DeviceId:  id,
		Code:      CodeOf(cause),
		Cause:     cause,
	}
}

// CodeOf returns the HRESULT carried by err or 0 if there is none.
func CodeOf(err error) uint32 {
	if err == nil {
		return 0
	}
	if oe, ok := common.AsError[*ole.OleError](err); ok {
		return uint32(oe.Code())
	}
	if ofe, ok := common.AsError[*OperationFailedError](err); ok {
		return ofe.Code
	}
	return 0
}
