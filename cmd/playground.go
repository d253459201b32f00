package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentary/vshell/core"
	"github.com/agentary/vshell/core/vfs"
)

var (
	colorPrompt = color.New(color.FgGreen, color.Bold)
	colorStderr = color.New(color.FgRed)
	colorStatus = color.New(color.Faint)
)

// playgroundCmd runs an interactive loop against a throwaway in-memory
// workspace. Every line is an independent execution, exactly like a tool
// call: working directory and exports do not persist between lines.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Interactively run commands against an in-memory workspace",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store := vfs.NewMemStore()
		interpreter := core.New(store)

		rl, err := readline.NewEx(&readline.Config{
			Prompt: colorPrompt.Sprint("workspace$ "),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		logger.Info("workspace is in-memory and discarded on exit",
			"workspace", cfg.Workspace)

		for {
			line, err := rl.Readline()
			switch {
			case err == io.EOF:
				return nil
			case err == readline.ErrInterrupt:
				continue
			case err != nil:
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if line == "exit" {
				return nil
			}

			result := interpreter.Execute(cmd.Context(), line, cfg.Workspace,
				cfg.Env, cfg.Timeout(0))

			fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
			if result.Stderr != "" {
				colorStderr.Fprint(cmd.ErrOrStderr(), result.Stderr)
			}
			if result.ExitCode != 0 {
				colorStatus.Fprintf(cmd.ErrOrStderr(), "exit code: %d\n", result.ExitCode)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
