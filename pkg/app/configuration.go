package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	log "github.com/echocat/slf4g"
	"gopkg.in/yaml.v3"

	"github.com/blaubaer/auto-mute/pkg/common"
)

const configurationFileName = "auto-mute/configuration.yml"

func NewConfiguration() Configuration {
	return Configuration{}
}

// Configuration of the application itself. The user facing mute settings
// are not part of it, see preferences.Preferences.
type Configuration struct {
	PreventAutoSave        bool `yaml:"preventAutoSave"`
	AllowMultipleInstances bool `yaml:"allowMultipleInstances,omitempty"`

	PreferencesFile string `yaml:"preferencesFile,omitempty"`
	ActionLogFile   string `yaml:"actionLogFile,omitempty"`
	LicenseFile     string `yaml:"licenseFile,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("preventAutoSave", "If provided configuration will NOT automatically be saved upon changes.").
		Envar("AM_PREVENT_AUTO_SAVE").
		BoolVar(&this.PreventAutoSave)
	using.Flag("allowMultipleInstances", "If provided more than one tray instance of this executable may run at the same time.").
		Envar("AM_ALLOW_MULTIPLE_INSTANCES").
		BoolVar(&this.AllowMultipleInstances)
	using.Flag("preferencesFile", "File where the mute preferences are stored. Defaults to <executable>.json.").
		Envar("AM_PREFERENCES_FILE").
		PlaceHolder("<file>").
		StringVar(&this.PreferencesFile)
	using.Flag("actionLogFile", "File every processed audio device is recorded to if logging is enabled. Defaults to <executable>.log.").
		Envar("AM_ACTION_LOG_FILE").
		PlaceHolder("<file>").
		StringVar(&this.ActionLogFile)
	using.Flag("licenseFile", "Document with the open source licenses. Defaults to <executable directory>/resources/oss_license.html.").
		Envar("AM_LICENSE_FILE").
		PlaceHolder("<file>").
		StringVar(&this.LicenseFile)
}

func (this *Configuration) loadFrom(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(this); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (this *Configuration) loadFromFile(fn string, ignoreNotFound bool) error {
	f, err := os.Open(fn)
	if os.IsNotExist(err) && ignoreNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := this.loadFrom(f); err != nil {
		return fmt.Errorf("cannot load configuration file %q: %w", fn, err)
	}

	return nil
}

func (this *Configuration) saveTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc.Encode(this)
}

func (this *Configuration) saveToFile(fn string) error {
	_ = os.MkdirAll(filepath.Dir(fn), 0700)

	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := this.saveTo(f); err != nil {
		return fmt.Errorf("cannot write file %q: %w", fn, err)
	}

	return nil
}

func (this Configuration) licenseFile() string {
	if v := this.LicenseFile; v != "" {
		return v
	}
	return filepath.Join(common.ExecutableDirectory(), "resources", "oss_license.html")
}

func defaultConfigurationFile() string {
	fn, err := xdg.ConfigFile(configurationFileName)
	if err != nil {
		log.WithError(err).
			Debug("Cannot resolve configuration directory. Falling back to the user's home.")
		return filepath.Join(xdg.Home, ".config", filepath.FromSlash(configurationFileName))
	}
	return fn
}
