package mcl

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Session owns the terminal between Init and Fini.
type Session struct {
	screen tcell.Screen
	once   sync.Once
}

func EnterSession(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("enter terminal session: %w", err)
	}
	return &Session{screen: screen}, nil
}

func (s *Session) Screen() tcell.Screen { return s.screen }

// Leave restores the terminal. It is safe to call more than once.
func (s *Session) Leave() {
	s.once.Do(s.screen.Fini)
}

// RunSession enters the terminal, runs fn and restores the terminal on every
// exit path. A panic in fn is logged and re-raised after the terminal is
// restored.
func RunSession(screen tcell.Screen, logger *slog.Logger, fn func(tcell.Screen) error) error {
	s, err := EnterSession(screen)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			s.Leave()
			logger.Error("panic in terminal session", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			panic(r)
		}
		s.Leave()
	}()
	return fn(s.Screen())
}

// runUI starts the interactive interface on a fresh terminal screen.
func runUI(cfg Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("enter terminal session: %w", err)
	}
	app, err := NewApp(cfg, logLauncher{log: logger}, logger)
	if err != nil {
		return err
	}
	logger.Info("ui started")
	defer logger.Info("ui stopped")
	return RunSession(screen, logger, app.Run)
}
