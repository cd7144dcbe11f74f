package preferences

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/echocat/slf4g"

	"github.com/blaubaer/auto-mute/pkg/common"
)

// DefaultFile returns <directory of binary>/<basename of binary>.json
func DefaultFile() string {
	return common.BesideExecutable(".json")
}

// Store persists Preferences as a flat JSON object.
type Store struct {
	File string
}

func NewStore(fn string) *Store {
	if fn == "" {
		fn = DefaultFile()
	}
	return &Store{File: fn}
}

// Load returns Default if the file does not exist. Every key present in
// the file overrides only its own default.
func (this *Store) Load() (Preferences, error) {
	result := Default()

	f, err := os.Open(this.File)
	if os.IsNotExist(err) {
		log.With("file", this.File).
			Debug("Preferences absent. Using defaults.")
		return result, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("cannot open preferences file %q: %w", this.File, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := loadFrom(f, &result); err != nil {
		return Preferences{}, fmt.Errorf("cannot load preferences file %q: %w", this.File, err)
	}

	return result, nil
}

func (this *Store) Save(v Preferences) error {
	_ = os.MkdirAll(filepath.Dir(this.File), 0755)

	f, err := os.OpenFile(this.File, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cannot open preferences file %q: %w", this.File, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := saveTo(f, v); err != nil {
		return fmt.Errorf("cannot write preferences file %q: %w", this.File, err)
	}

	log.With("file", this.File).
		With("preferences", v).
		Info("Preferences saved.")

	return nil
}

func loadFrom(r io.Reader, to *Preferences) error {
	return json.NewDecoder(r).Decode(to)
}

func saveTo(w io.Writer, v Preferences) error {
	return json.NewEncoder(w).Encode(v)
}
