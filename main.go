package main

import (
	_ "embed"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/facade/value"
	"github.com/echocat/slf4g/native/formatter"

	"github.com/blaubaer/auto-mute/pkg/app"
	"github.com/blaubaer/auto-mute/pkg/audio"
	"github.com/blaubaer/auto-mute/pkg/preferences"
	"github.com/blaubaer/auto-mute/pkg/shell"
)

const title = "Auto Mute"

func main() {
	lv := value.NewProvider(native.DefaultProvider)
	lv.Consumer.Formatter.Codec = value.MappingFormatterCodec{
		"text": formatter.NewText(func(v *formatter.Text) {
			bv := true
			v.AllowMultiLineMessage = &bv
			v.MultiLineMessageAfterFields = &bv
		}),
		"json": formatter.NewJson(),
	}

	a := app.NewApp()

	cmd := kingpin.New("auto-mute", "Mutes and/or zeroes the volume of the speakers, on demand or when the Windows session ends.")
	a.SetupConfiguration(cmd)

	cmd.Flag("log.level", "").
		SetValue(lv.Level)
	cmd.Flag("log.format", "").
		Default("text").
		SetValue(lv.Consumer.Formatter)
	cmd.Flag("log.color", "").
		Default("auto").
		SetValue(lv.Consumer.Formatter.ColorMode)

	cmd.Command("tray", "Shows the tray icon and processes the speakers when the session ends.").
		Default().
		Action(func(*kingpin.ParseContext) error {
			return runTray(a)
		})

	var mo muteOverrides
	muteCmd := cmd.Command("mute", "Processes the speakers once using the stored preferences.").
		Action(func(*kingpin.ParseContext) error {
			return runMute(a, &mo)
		})
	mo.setup(muteCmd)

	cmd.Command("devices", "Lists all active speakers.").
		Action(func(*kingpin.ParseContext) error {
			return runDevices(a)
		})

	kingpin.MustParse(cmd.Parse(os.Args[1:]))
}

func runTray(a *app.App) (rErr error) {
	if err := a.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := a.Dispose(); err != nil && rErr == nil {
			rErr = err
		}
	}()

	if err := a.EnsureSingleInstance(); err != nil {
		return err
	}

	p, err := a.LoadPreferences()
	if err != nil {
		log.WithError(err).
			Warn("Cannot load preferences. Continue with defaults.")
		p = preferences.Default()
	}

	return shell.Run(shell.New(a, p), shell.Options{
		Title:   title,
		Tooltip: title,
		Icon:    trayIcon,
		License: a.HasLicense(),
	})
}

// muteOverrides are the flags of the mute command. Only flags given by the
// user replace the stored preferences.
type muteOverrides struct {
	mute, muteSet       bool
	volume, volumeSet   bool
	target, targetSet   bool
	logging, loggingSet bool
}

func (this *muteOverrides) setup(using *kingpin.CmdClause) {
	using.Flag("mute", "Mute the speakers. Overrides the stored preference.").
		IsSetByUser(&this.muteSet).
		BoolVar(&this.mute)
	using.Flag("volume", "Set the volume of the speakers to zero. Overrides the stored preference.").
		IsSetByUser(&this.volumeSet).
		BoolVar(&this.volume)
	using.Flag("all", "Process all speakers instead of only the default one. Overrides the stored preference.").
		IsSetByUser(&this.targetSet).
		BoolVar(&this.target)
	using.Flag("logging", "Record every processed speaker in the action log. Overrides the stored preference.").
		IsSetByUser(&this.loggingSet).
		BoolVar(&this.logging)
}

func (this *muteOverrides) apply(p preferences.Preferences) preferences.Preferences {
	if this.muteSet {
		p.Mute = this.mute
	}
	if this.volumeSet {
		p.Volume = this.volume
	}
	if this.targetSet {
		p.Target = this.target
	}
	if this.loggingSet {
		p.Logging = preferences.Bool(this.logging)
	}
	return p
}

func runMute(a *app.App, mo *muteOverrides) (rErr error) {
	if err := a.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := a.Dispose(); err != nil && rErr == nil {
			rErr = err
		}
	}()

	p, err := a.LoadPreferences()
	if err != nil {
		return err
	}
	p = mo.apply(p)

	report, err := a.ProcessWithReport(p)
	if err != nil {
		return err
	}
	log.With("report", report).
		With("preferences", p).
		Info("Audio devices processed.")
	return report.Err()
}

func runDevices(a *app.App) error {
	devices, err := a.AudioStack.Devices()
	if err != nil {
		return err
	}

	defaults := map[audio.DeviceId]audio.Roles{}
	for _, role := range audio.AllRoles {
		id, err := a.AudioStack.DefaultRenderDeviceId(role)
		if err != nil {
			log.WithError(err).
				With("role", role).
				Debug("Cannot resolve default render device.")
			continue
		}
		defaults[id] = append(defaults[id], role)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tVOLUME\tMUTE\tDEFAULT FOR\tID")
	for _, d := range devices {
		_, _ = fmt.Fprintf(w, "%s\t%.0f%%\t%v\t%v\t%s\n", d.Name, d.Volume*100, d.Mute, defaults[d.Id], d.Id)
	}
	return w.Flush()
}

//go:embed assets/mute.ico
var trayIcon []byte
