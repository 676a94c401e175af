package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rtree/internal/state"
)

// Run drives the event loop until a quit action arrives. The screen is
// finalised on return.
func (app *Application) Run() {
	defer app.Close()

	app.render()

	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigCont chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigCont = make(chan os.Signal, 1)
		signal.Notify(sigCont, sigs...)
		defer signal.Stop(sigCont)
	}

	for !app.shouldQuit {
		dirty := false
		select {
		case ev := <-eventChan:
			dirty = app.handleEvent(ev)
		case <-sigCont:
			dirty = app.resumeAfterStop()
		}

		if app.processActions() {
			dirty = true
		}
		if dirty && !app.shouldQuit {
			app.render()
		}
	}

	app.log.WithField("path", app.state.CurrentPath).Info("rtree stopped")
}

func (app *Application) render() {
	app.renderer.Render(app.state)
}

// handleEvent feeds terminal events to the input handler. It reports whether
// the screen needs redrawing.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	}
	return false
}

// processActions drains queued actions and reports whether any ran.
func (app *Application) processActions() bool {
	handled := false
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
			handled = true
		default:
			return handled
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
	case statepkg.SuspendAction:
		app.suspendToShell()
	default:
		app.applyAction(action)
	}
}

// applyAction runs the reducer and records any failure for the status line.
func (app *Application) applyAction(action statepkg.Action) {
	newState, err := app.reducer.Reduce(app.state, action)
	if err != nil {
		app.state.LastError = err
		app.log.WithError(err).Warnf("action %T failed", action)
		return
	}
	app.state = newState
	app.input.SetState(newState)
}
