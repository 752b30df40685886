package mcl

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var Version = "dev"

// versionLabel prefixes numeric versions with "v" and leaves names like
// "dev" alone.
func versionLabel() string {
	if Version != "" && Version[0] >= '0' && Version[0] <= '9' {
		return "v" + Version
	}
	return Version
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, ErrorMsg(fmt.Sprintf("error: %v", err)))
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "mcl",
		Short:         "A terminal launcher for game profiles",
		Long:          "mcl manages launcher profiles and instances. Run without a subcommand to open the interactive UI.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runUICmd,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		&cobra.Command{
			Use:   "ui",
			Short: "Open the interactive UI",
			Args:  cobra.NoArgs,
			RunE:  runUICmd,
		},
		newLaunchCmd(),
		newProfilesCmd(),
		newConfigCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				out := cmd.OutOrStdout()
				if isTerminal(out) {
					fmt.Fprint(out, GetBannerANSI())
				} else {
					fmt.Fprintln(out, GetBannerPlain())
				}
				fmt.Fprintln(out, StyleHeader.Render("mcl")+" "+versionLabel())
			},
		},
	)
	return root
}

func runUICmd(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	logger, closeLog := openLogger(cfg.General.Debug)
	defer closeLog()
	return runUI(cfg, logger)
}

func newLaunchCmd() *cobra.Command {
	var (
		opts    LaunchOptions
		offline bool
	)
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			opts.Offline = offline || cfg.Account.Offline
			if !flags.Changed("memory") {
				opts.Memory = cfg.Launch.Memory
			}
			if !flags.Changed("resolution") {
				opts.Resolution = cfg.Launch.Resolution
			}
			if !flags.Changed("jvm-args") {
				opts.ExtraArgs = cfg.Launch.JVMArgs
			}
			if !flags.Changed("no-window") {
				opts.Headless = cfg.Launch.NoWindow
			}
			return printLauncher{out: cmd.OutOrStdout()}.Launch(opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.Profile, "profile", "p", "", "profile to launch")
	f.BoolVarP(&offline, "offline", "o", false, "launch in offline mode")
	f.StringVarP(&opts.Memory, "memory", "m", "", "memory allocation, e.g. 4G")
	f.StringVarP(&opts.Resolution, "resolution", "r", "", "window resolution, e.g. 1920x1080")
	f.StringArrayVarP(&opts.ExtraArgs, "jvm-args", "j", nil, "extra JVM argument (repeatable)")
	f.BoolVarP(&opts.Headless, "no-window", "n", false, "run without a game window")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func newProfilesCmd() *cobra.Command {
	var (
		list       bool
		deleteName string
	)
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List or delete profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case list:
				fmt.Fprintln(out, InfoMsg("Listing all profiles..."))
			case cmd.Flags().Changed("delete"):
				if deleteName == "" {
					return ErrNoProfile
				}
				fmt.Fprintln(out, WarnMsg(fmt.Sprintf("Deleting profile '%s'...", deleteName)))
			default:
				return cmd.Help()
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list all profiles")
	cmd.Flags().StringVarP(&deleteName, "delete", "d", "", "delete the named profile")
	cmd.MarkFlagsMutuallyExclusive("list", "delete")
	return cmd
}

func newConfigCmd() *cobra.Command {
	var initFile bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := ConfigPath()
			if err != nil {
				return err
			}
			if initFile {
				wrote, err := WriteDefaultConfig(path)
				if err != nil {
					return err
				}
				if wrote {
					fmt.Fprintln(out, SuccessMsg("wrote "+StylePath.Render(path)))
				} else {
					fmt.Fprintln(out, WarnMsg("config already exists: "+StylePath.Render(path)))
				}
				return nil
			}
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, StyleDim.Render("# "+path))
			return toml.NewEncoder(out).Encode(cfg)
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write the default config file if missing")
	return cmd
}
