package mcl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrNoProfile = errors.New("profile name is required")

type LaunchOptions struct {
	Profile    string
	Offline    bool
	Memory     string
	Resolution string
	ExtraArgs  []string
	Headless   bool
}

// Launcher starts a game profile. Launch returns once the request is handed
// off; it does not wait for the game.
type Launcher interface {
	Launch(opts LaunchOptions) error
}

func (o LaunchOptions) validate() error {
	if strings.TrimSpace(o.Profile) == "" {
		return ErrNoProfile
	}
	return nil
}

func (o LaunchOptions) mode() string {
	if o.Offline {
		return "offline"
	}
	return "online"
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func (o LaunchOptions) jvmArgs() string {
	if len(o.ExtraArgs) == 0 {
		return "None"
	}
	return strings.Join(o.ExtraArgs, " ")
}

// printLauncher describes the launch on a writer. It backs the launch
// subcommand.
type printLauncher struct {
	out io.Writer
}

func (l printLauncher) Launch(opts LaunchOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	fmt.Fprintln(l.out, InfoMsg(fmt.Sprintf("Launching profile '%s' in %s mode...", opts.Profile, opts.mode())))
	fmt.Fprintf(l.out, "  Memory: %s\n", orDefault(opts.Memory, "Default"))
	fmt.Fprintf(l.out, "  Resolution: %s\n", orDefault(opts.Resolution, "Default"))
	fmt.Fprintf(l.out, "  JVM Args: %s\n", opts.jvmArgs())
	if opts.Headless {
		fmt.Fprintln(l.out, WarnMsg("Running in headless mode..."))
	}
	return nil
}

// logLauncher records launch requests made from the UI.
type logLauncher struct {
	log *slog.Logger
}

func (l logLauncher) Launch(opts LaunchOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	l.log.Info("launch requested",
		"profile", opts.Profile,
		"mode", opts.mode(),
		"memory", orDefault(opts.Memory, "Default"),
		"resolution", orDefault(opts.Resolution, "Default"),
		"jvm_args", opts.jvmArgs(),
		"headless", opts.Headless,
	)
	return nil
}
