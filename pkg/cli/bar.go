package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hgline/pkg/prompt"
	"hgline/pkg/ui/statusbar"
	"hgline/pkg/watch"

	"github.com/spf13/cobra"
)

func newBarCmd(o *options) *cobra.Command {
	var (
		watchMode bool
		theme     string
	)

	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Draw a status bar on the bottom terminal row",
		Long: `Draw a status bar on the bottom terminal row with the directory and the
hg_branch module. With --watch the bar is redrawn whenever the bookmark or
branch changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBar(cmd, o, theme, watchMode)
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Redraw when the bookmark or branch changes")
	cmd.Flags().StringVar(&theme, "theme", "purple", "Bar colors: purple, cyan or dark")

	return cmd
}

func runBar(cmd *cobra.Command, o *options, theme string, watchMode bool) error {
	out := cmd.OutOrStdout()

	sb := statusbar.New(o.dir)
	sb.SetTheme(theme)

	refresh := func() {
		sb.SetModule("")
		if module, ok := prompt.HgBranch(o.promptContext(), o.cfg.HgBranch); ok {
			sb.SetModule(module.String())
		}
		fmt.Fprint(out, sb.Render())
	}

	refresh()
	if !watchMode {
		return nil
	}

	hgDir, ok := prompt.LocatorFor(o.cfg.HgBranch, o.logger).Locate(o.dir)
	if !ok {
		return fmt.Errorf("%s is not inside a Mercurial repository", o.dir)
	}
	w, err := watch.New(hgDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o.logger.Debug("watching repository", slog.String("repo", hgDir))
	return watchBar(ctx, out, sb, w, refresh)
}

// watchBar redraws the bar on every change until ctx ends, then clears it at
// the terminal's size at that moment.
func watchBar(ctx context.Context, out io.Writer, sb *statusbar.StatusBar, w *watch.Watcher, refresh func()) error {
	defer func() { fmt.Fprint(out, sb.Clear()) }()
	return w.Run(ctx, refresh)
}
