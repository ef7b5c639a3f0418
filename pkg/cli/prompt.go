package cli

import (
	"fmt"

	"hgline/pkg/prompt"

	"github.com/spf13/cobra"
)

func newPromptCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print the hg_branch module (default command)",
		Example: `  # bash
  PS1='\w $(hgline prompt)\$ '`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, o)
		},
	}
}

func runPrompt(cmd *cobra.Command, o *options) error {
	module, ok := prompt.HgBranch(o.promptContext(), o.cfg.HgBranch)
	if !ok {
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), o.render(module))
	return nil
}
