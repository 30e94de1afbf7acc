package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pipesh/pipesh/core"
	"github.com/pipesh/pipesh/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command when called without any subcommands:
// the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "pipesh",
	Short: "A small POSIX-like shell emulator",
	Long: `pipesh reads command lines, expands session and environment variables,
and executes builtin and external commands connected by pipes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sh, err := core.NewShell(cfg)
		if err != nil {
			return err
		}
		defer sh.Close()

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.yaml, defaults to the built-in configuration")
}
