package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipesh/pipesh/core"
)

// execCmd runs a single pipeline non-interactively.
var execCmd = &cobra.Command{
	Use:   "exec PIPELINE",
	Short: "Execute one command pipeline and exit.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		interp := core.NewInterpreter()
		for name, value := range cfg.Env {
			interp.Vars().Set(name, value)
		}

		out, execErr := interp.Execute(args[0])
		switch {
		case execErr != nil:
			fmt.Fprintln(cmd.OutOrStdout(), execErr)
		case out != nil && *out != "":
			fmt.Fprintln(cmd.OutOrStdout(), *out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
