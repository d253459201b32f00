package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentary/vshell/core"
	"github.com/agentary/vshell/core/vfs"
)

var (
	runDir     string
	runEnv     []string
	runTimeout int
)

// runCmd executes one command line against a workspace and prints the
// captured result.
var runCmd = &cobra.Command{
	Use:   "run COMMAND",
	Short: "Execute a command line against a workspace",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var store vfs.Store
		if runDir != "" {
			store = vfs.NewDirStore(runDir)
		} else {
			store = vfs.NewMemStore()
		}

		env := map[string]string{}
		for k, v := range cfg.Env {
			env[k] = v
		}
		for _, kv := range runEnv {
			key, value, found := strings.Cut(kv, "=")
			if !found {
				logger.Warn("ignoring malformed --env entry", "entry", kv)
				continue
			}
			env[key] = value
		}

		interpreter := core.New(store)
		result := interpreter.Execute(cmd.Context(), strings.Join(args, " "),
			cfg.Workspace, env, cfg.Timeout(runTimeout))

		fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
		fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
		if result.ExitCode != 0 {
			return fmt.Errorf("exit code %d", result.ExitCode)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runDir, "dir", "", "directory backing the workspace (default: in-memory)")
	runCmd.Flags().StringArrayVar(&runEnv, "env", nil, "environment overrides as KEY=value")
	runCmd.Flags().IntVar(&runTimeout, "timeout", 0, "timeout in seconds (clamped by config)")
	rootCmd.AddCommand(runCmd)
}
