package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gavel/internal/cache"
	"gavel/internal/catalog"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the offline catalog snapshot",
	}

	cacheCmd.AddCommand(newCacheRefreshCommand(ctx))
	cacheCmd.AddCommand(newCacheShowCommand(ctx))

	return cacheCmd
}

func newCacheRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the catalog and user directory and save a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Cache.Enabled {
				return errors.New("snapshot cache is disabled; enable [cache] in the configuration")
			}
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			cat := catalog.New(client, ctx.ensureLogger())
			if err := cat.LoadAll(cmd.Context()); err != nil {
				return err
			}
			if err := saveSnapshot(ctx, cmd, client, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot with %d recordings\n", len(cat.Recordings()))
			return nil
		},
	}
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Describe the saved snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Cache.Enabled {
				return errors.New("snapshot cache is disabled; enable [cache] in the configuration")
			}
			store, err := cache.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := store.LoadSnapshot(cmd.Context())
			if err != nil {
				if errors.Is(err, cache.ErrNoSnapshot) {
					fmt.Fprintln(cmd.OutOrStdout(), "No snapshot saved yet")
					return nil
				}
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"path":       store.Path(),
					"saved_at":   snap.SavedAt,
					"recordings": len(snap.Recordings),
					"courts":     len(snap.Courts),
					"courtrooms": len(snap.Courtrooms),
					"users":      len(snap.Users),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Snapshot path: %s\n", store.Path())
			fmt.Fprintf(out, "Saved at:      %s\n", snap.SavedAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintf(out, "Recordings:    %d\n", len(snap.Recordings))
			fmt.Fprintf(out, "Courts:        %d\n", len(snap.Courts))
			fmt.Fprintf(out, "Courtrooms:    %d\n", len(snap.Courtrooms))
			fmt.Fprintf(out, "Users:         %d\n", len(snap.Users))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}
