package app

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	log "github.com/echocat/slf4g"

	"github.com/blaubaer/auto-mute/pkg/audio"
	"github.com/blaubaer/auto-mute/pkg/common"
	"github.com/blaubaer/auto-mute/pkg/mute"
	"github.com/blaubaer/auto-mute/pkg/preferences"
)

var ErrNotInitialized = errors.New("application not initialized")

func NewApp() *App {
	return &App{
		config: NewConfiguration(),
	}
}

type App struct {
	AudioStack        audio.Stack
	ConfigurationFile string

	configFromFlags Configuration
	config          Configuration

	store *preferences.Store
	muter *mute.Muter
}

func (this *App) SetupConfiguration(using common.FlagHolder) {
	this.configFromFlags.SetupConfiguration(using)

	using.Flag("configuration", "Defines the file from which the configuration should be loaded and/or stored to.").
		Short('c').
		Envar("AM_CONFIGURATION").
		PlaceHolder("<file>").
		StringVar(&this.ConfigurationFile)
}

func (this *App) Configuration() Configuration {
	return this.config
}

func (this *App) Initialize() (rErr error) {
	success := false
	defer func() {
		if !success {
			if err := this.Dispose(); err != nil && rErr == nil {
				rErr = err
			}
		}
	}()

	if err := this.config.loadFromFile(this.configurationFile(), true); err != nil {
		return err
	}
	if err := mergo.Merge(&this.config, this.configFromFlags, mergo.WithOverride); err != nil {
		return fmt.Errorf("cannot merge configuration with flags: %w", err)
	}

	this.store = preferences.NewStore(this.config.PreferencesFile)
	this.muter = &mute.Muter{
		Audio: &this.AudioStack,
		Log:   mute.NewActionLog(this.config.ActionLogFile),
	}

	if err := this.saveConf(); err != nil {
		return err
	}

	log.With("configuration", this.configurationFile()).
		With("preferences", this.store.File).
		Debug("Application initialized.")

	success = true
	return nil
}

func (this *App) configurationFile() string {
	if v := this.ConfigurationFile; v != "" {
		return v
	}
	return defaultConfigurationFile()
}

// saveConf writes the configuration only if the file does not exist yet.
func (this *App) saveConf() error {
	if this.config.PreventAutoSave {
		log.Debug("Automatically save of configuration disabled.")
		return nil
	}

	fn := this.configurationFile()
	_, err := os.Stat(fn)
	if os.IsNotExist(err) {
		log.With("file", fn).Info("Configuration absent.")
	} else if err != nil {
		return fmt.Errorf("cannot check configuration file %q: %w", fn, err)
	} else {
		return nil
	}

	if err := this.config.saveToFile(fn); err != nil {
		return err
	}

	log.With("file", fn).Info("Configuration saved.")

	return nil
}

func (this *App) Dispose() error {
	this.muter = nil
	this.store = nil
	return nil
}

func (this *App) LoadPreferences() (preferences.Preferences, error) {
	if this.store == nil {
		return preferences.Preferences{}, ErrNotInitialized
	}
	return this.store.Load()
}

func (this *App) SavePreferences(p preferences.Preferences) error {
	if this.store == nil {
		return ErrNotInitialized
	}
	return this.store.Save(p)
}

// Process runs the mute operation with p. Devices that were skipped are
// already reported by the muter and do not fail the operation.
func (this *App) Process(p preferences.Preferences) error {
	report, err := this.ProcessWithReport(p)
	if err != nil {
		return err
	}
	log.With("report", report).
		Info("Audio devices processed.")
	return nil
}

func (this *App) ProcessWithReport(p preferences.Preferences) (mute.Report, error) {
	if this.muter == nil {
		return mute.Report{}, ErrNotInitialized
	}
	return this.muter.Process(p)
}

func (this *App) HasLicense() bool {
	fi, err := os.Stat(this.config.licenseFile())
	return err == nil && !fi.IsDir()
}

func (this *App) OpenLicense() error {
	fn := this.config.licenseFile()
	if err := openDocument(fn); err != nil {
		return fmt.Errorf("cannot open license file %q: %w", fn, err)
	}
	return nil
}
