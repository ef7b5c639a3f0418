package cli

import (
	"fmt"

	"hgline/pkg/hg"
	"hgline/pkg/label"
	"hgline/pkg/prompt"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newDoctorCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Explain how the label for a directory is found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, o)
		},
	}
}

func runDoctor(cmd *cobra.Command, o *options) error {
	out := cmd.OutOrStdout()
	key := o.colorFunc(color.FgCyan)
	good := o.colorFunc(color.FgGreen)
	warn := o.colorFunc(color.FgYellow)
	bad := o.colorFunc(color.FgRed, color.Bold)

	hgCfg := o.cfg.HgBranch

	fmt.Fprintf(out, "%s %s\n", key("config:"), o.configPath)
	if err := o.cfg.Validate(); err != nil {
		fmt.Fprintf(out, "  %s %v\n", warn("warning:"), err)
	}
	if hgCfg.Disabled {
		fmt.Fprintf(out, "  %s hg_branch is disabled\n", warn("warning:"))
	}
	fmt.Fprintf(out, "%s %s\n", key("directory:"), o.dir)
	locator := prompt.LocatorFor(hgCfg, o.logger)
	fmt.Fprintf(out, "%s %s\n", key("ascent policy:"), locator.Policy)

	repoDir, found := locator.Locate(o.dir)
	if !found {
		fmt.Fprintf(out, "%s %s\n", key("repository:"), bad("not found"))
		return nil
	}
	fmt.Fprintf(out, "%s %s\n", key("repository:"), good(repoDir))

	raw, source, resolved := hg.NewResolver().Lookup(repoDir)
	if resolved {
		fmt.Fprintf(out, "%s %s\n", key("source:"), good(source))
	} else {
		fmt.Fprintf(out, "%s %s\n", key("source:"), warn("none, label is empty"))
	}
	fmt.Fprintf(out, "%s %q\n", key("label:"), raw)

	policy := label.NewPolicy(hgCfg.TruncationLength, hgCfg.TruncationSymbol, o.logger)
	if policy.Unbounded() {
		if hgCfg.TruncationLength <= 0 {
			fmt.Fprintf(out, "%s unbounded (%s)\n", key("truncation:"),
				warn(fmt.Sprintf("truncation_length %d is not positive", hgCfg.TruncationLength)))
		} else {
			fmt.Fprintf(out, "%s unbounded\n", key("truncation:"))
		}
	} else {
		fmt.Fprintf(out, "%s %d graphemes, marker %q\n", key("truncation:"), policy.MaxLength, policy.Marker)
	}

	rendered := label.Truncate(raw, policy)
	fmt.Fprintf(out, "%s %q (%d graphemes, %d cells)\n", key("rendered:"), rendered,
		label.Count(rendered), runewidth.StringWidth(rendered))
	return nil
}

// colorFunc returns a sprint function for attrs that honors --no-color
// without touching color.NoColor.
func (o *options) colorFunc(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if o.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}
