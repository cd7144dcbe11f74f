package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	log "github.com/echocat/slf4g"
	"github.com/shirou/gopsutil/process"

	"github.com/blaubaer/auto-mute/pkg/common"
)

var ErrAlreadyRunning = errors.New("another instance is already running")

type runningProcess struct {
	pid int32
	exe string
}

// processes lists the running processes. It is replaced in tests.
var processes = func() ([]runningProcess, error) {
	ps, err := process.Processes()
	if err != nil {
		return nil, err
	}
	result := make([]runningProcess, 0, len(ps))
	for _, p := range ps {
		exe, err := p.Exe()
		if err != nil {
			// Mostly processes of other users or the system.
			continue
		}
		result = append(result, runningProcess{p.Pid, exe})
	}
	return result, nil
}

// EnsureSingleInstance fails with ErrAlreadyRunning if another process of
// the same executable is alive, unless AllowMultipleInstances is set.
func (this *App) EnsureSingleInstance() error {
	if this.config.AllowMultipleInstances {
		return nil
	}
	return ensureSingleInstance(common.ExecutablePath(), int32(os.Getpid()))
}

func ensureSingleInstance(exe string, self int32) error {
	ps, err := processes()
	if err != nil {
		log.WithError(err).
			Warn("Cannot list running processes. Cannot ensure that this is the only instance.")
		return nil
	}

	for _, p := range ps {
		if p.pid == self || !sameExecutable(p.exe, exe) {
			continue
		}
		return fmt.Errorf("%w: pid %d (%s)", ErrAlreadyRunning, p.pid, p.exe)
	}
	return nil
}

func sameExecutable(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
