package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentary/vshell/core/config"
)

var cfgPath string

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "vshell",
})

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("couldn't load config", "path", cfgPath, "err", err)
		return nil, err
	}
	return cfg, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vshell",
	Short: "Workspace shell emulator",
	Long: `vshell runs a reduced POSIX-style shell against a virtual,
workspace-scoped filesystem and reports captured stdout, stderr and the
exit code. Nothing ever touches a real process table.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "vshell.yaml", "config file path")
}
