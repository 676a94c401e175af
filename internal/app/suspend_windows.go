//go:build windows

package app

import "os"

// No job control on Windows: suspend is ignored and nothing ever resumes.
func contSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {
	app.log.Debug("suspend is not supported on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
