//go:build windows

package shell

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/echocat/slf4g"
	"github.com/getlantern/systray"
)

// Run shows the tray icon and blocks until the user exits. The settings
// window and its message loop live on a dedicated OS thread; the tray
// occupies the calling one.
func Run(instance *Shell, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	created := make(chan *window, 1)
	done := make(chan error, 1)
	go func() {
		done <- runWindow(instance, opts, created)
	}()

	w := <-created
	if w == nil {
		return <-done
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		for range sigs {
			log.Info("Terminated. Going down...")
			w.PostCommand(CommandExit)
		}
	}()

	t := &tray{options: opts, target: w}
	systray.Run(t.onReady, nil)

	return <-done
}

func runWindow(instance *Shell, opts Options, created chan<- *window) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w, err := newWindow(opts.title(), instance.Dispatch)
	if err != nil {
		created <- nil
		return err
	}
	defer w.dispose()
	defer systray.Quit()

	instance.Attach(w)
	created <- w

	log.Debug("Message loop started.")
	defer log.Debug("Message loop stopped.")
	return w.loop()
}
