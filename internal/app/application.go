package app

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rtree/internal/config"
	fsutil "github.com/kk-code-lab/rtree/internal/fs"
	statepkg "github.com/kk-code-lab/rtree/internal/state"
	inputui "github.com/kk-code-lab/rtree/internal/ui/input"
	renderui "github.com/kk-code-lab/rtree/internal/ui/render"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options configures a new Application.
type Options struct {
	// StartPath is the directory shown first; empty means the working directory.
	StartPath string
	Config    *config.Config
	Logger    logrus.FieldLogger
	// Screen replaces the terminal screen. Tests pass a simulation screen.
	Screen tcell.Screen
}

// Application owns the screen and runs the event loop.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	log        logrus.FieldLogger
	shouldQuit bool
	closeOnce  sync.Once
}

// NewApplication resolves the start directory, initialises the screen and
// loads the first listing.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	startPath, err := resolveStartPath(opts.StartPath)
	if err != nil {
		return nil, err
	}

	scanner, err := fsutil.NewScanner(fsutil.ScanOptions{
		Ignore:   cfg.Ignore,
		MaxDepth: cfg.MaxDepth,
		Logger:   log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "configure scanner")
	}

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "create screen")
		}
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialise screen")
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	state := &statepkg.AppState{
		SelectedIndex:       -1,
		ParentSelectedIndex: -1,
	}
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	actionCh := make(chan statepkg.Action, 16)
	input := inputui.NewInputHandler(actionCh)
	input.SetState(state)

	app := &Application{
		screen: screen,
		state:  state,
		reducer: statepkg.NewStateReducer(statepkg.ReducerConfig{
			Scanner:    scanner,
			Logger:     log,
			DetectMIME: cfg.Preview.MIME,
		}),
		renderer: renderui.NewRenderer(screen, renderui.Options{
			TabWidth: cfg.TabWidth,
			Markdown: cfg.Preview.Markdown,
			Wrap:     cfg.Preview.Wrap,
		}),
		input:    input,
		actionCh: actionCh,
		log:      log,
	}

	app.applyAction(statepkg.GoToPathAction{Path: startPath})
	log.WithField("path", startPath).Info("rtree started")

	return app, nil
}

// resolveStartPath returns an absolute directory for path.
func resolveStartPath(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "determine working directory")
		}
		path = wd
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", abs)
	}
	if !info.IsDir() {
		return "", errors.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// CurrentPath returns the directory shown in the tree panel.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

// Close releases the terminal. Safe to call more than once.
func (app *Application) Close() {
	app.closeOnce.Do(app.screen.Fini)
}
