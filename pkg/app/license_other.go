//go:build !windows

package app

import (
	"errors"
)

var errOpenDocumentUnsupported = errors.New("opening documents is not supported on this platform")

func openDocument(string) error {
	return errOpenDocumentUnsupported
}
