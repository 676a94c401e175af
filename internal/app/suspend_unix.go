//go:build !windows

package app

import (
	"os"

	statepkg "github.com/kk-code-lab/rtree/internal/state"
	"golang.org/x/sys/unix"
)

func contSignals() []os.Signal {
	return []os.Signal{unix.SIGCONT}
}

func (app *Application) suspendToShell() {
	_ = app.screen.Suspend()
	// Stop this process only; the process group may hold the launching shell.
	_ = unix.Kill(unix.Getpid(), unix.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.log.WithError(err).Warn("resume after stop failed")
		return false
	}
	app.screen.Sync()
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.applyAction(statepkg.ResizeAction{Width: w, Height: h})
	}
	return true
}
