package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "Inkwell renders and edits themed terminal textareas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
