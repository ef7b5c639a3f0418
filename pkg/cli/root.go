// Package cli implements the hgline command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"hgline/pkg/config"
	"hgline/pkg/logging"
	"hgline/pkg/prompt"

	"github.com/spf13/cobra"
)

// options holds global flags and the state loaded before every command.
type options struct {
	configPath string
	dir        string
	noColor    bool

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the hgline command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hgline",
		Short: "Mercurial branch segment for prompts and status lines",
		Long: `hgline prints the current Mercurial bookmark or branch for a directory,
shortened to fit a prompt or status line.

It reads .hg/bookmarks.current and .hg/namejournal directly and never runs hg.
Outside a repository it prints nothing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default ~/.hgline/config.json, or $HGLINE_CONFIG)")
	cmd.PersistentFlags().StringVarP(&opts.dir, "path", "p", "", "Directory to inspect (default current directory)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable styling")

	cmd.AddCommand(
		newPromptCmd(opts),
		newBarCmd(opts),
		newDoctorCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and logging. Configuration problems are logged
// and defaults are used so that a prompt never breaks.
func (o *options) setup() error {
	if o.configPath == "" {
		o.configPath = config.GetConfigPath()
	}

	var warnings []error

	cfg, err := config.Load(o.configPath)
	if err != nil {
		warnings = append(warnings, err)
		cfg = config.Default()
	}

	lookup, err := config.EnvLookup(config.EnvFileFor(o.configPath))
	if err != nil {
		warnings = append(warnings, err)
	}
	cfg, err = config.ApplyEnv(cfg, lookup)
	if err != nil {
		warnings = append(warnings, err)
	}

	logger, err := logging.Init(cfg)
	if err != nil {
		warnings = append(warnings, fmt.Errorf("failed to initialize logging: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		warnings = append(warnings, err)
	}
	for _, w := range warnings {
		logger.Warn("configuration problem", slog.String("config", o.configPath), slog.Any("error", w))
	}

	o.cfg = cfg
	o.logger = logger

	if o.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		o.dir = wd
	}
	return nil
}

func (o *options) promptContext() prompt.Context {
	return prompt.Context{CurrentDir: o.dir, Logger: o.logger}
}

func (o *options) render(m *prompt.Module) string {
	if o.noColor {
		return m.String()
	}
	return m.Render()
}
