package mute

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blaubaer/auto-mute/pkg/common"
)

const actionLogTimeLayout = "2006/01/02 15:04:05"

// DefaultActionLogFile returns <directory of binary>/<basename of binary>.log
func DefaultActionLogFile() string {
	return common.BesideExecutable(".log")
}

// ActionLog appends one line per processed device to File. The file is
// opened and closed again for every line.
type ActionLog struct {
	File string
	Now  func() time.Time
}

func NewActionLog(fn string) *ActionLog {
	if fn == "" {
		fn = DefaultActionLogFile()
	}
	return &ActionLog{File: fn}
}

func (this *ActionLog) Record(deviceName string, mute, volume bool) error {
	f, err := os.OpenFile(this.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if os.IsNotExist(err) {
		_ = os.MkdirAll(filepath.Dir(this.File), 0755)
		f, err = os.OpenFile(this.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	}
	if err != nil {
		return fmt.Errorf("cannot open action log %q: %w", this.File, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := fmt.Fprintf(f, "%s : %s\n", this.now().Format(actionLogTimeLayout), FormatAction(deviceName, mute, volume)); err != nil {
		return fmt.Errorf("cannot write to action log %q: %w", this.File, err)
	}
	return nil
}

func (this *ActionLog) now() time.Time {
	if v := this.Now; v != nil {
		return v()
	}
	return time.Now()
}

// FormatAction renders "<name> - Mute(<True|False>) Volume(<True|False>)".
func FormatAction(deviceName string, mute, volume bool) string {
	return fmt.Sprintf("%s - Mute(%s) Volume(%s)", deviceName, formatFlag(mute), formatFlag(volume))
}

func formatFlag(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
