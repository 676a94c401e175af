package main

import (
	"github.com/kk-code-lab/rtree/internal/shellsetup"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [SHELL]",
		Short: "Print a shell function that changes into the last visited directory",
		Long: `Print a wrapper function for bash, zsh, sh, ksh, fish or pwsh. Add it to your
shell startup file, for example:

    eval "$(rtree shell bash)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			return shellsetup.Write(cmd.OutOrStdout(), shell, shellsetup.Config{})
		},
	}
}
