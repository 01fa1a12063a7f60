package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gavel/internal/tui"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse recordings interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTTY() {
				return fmt.Errorf("browse requires an interactive terminal")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			resolver, err := ctx.sessionResolver()
			if err != nil {
				return err
			}

			model := tui.New(client, resolver, cfg.UI.PageSize, ctx.ensureLogger())
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = program.Run()
			return err
		},
	}
}
