package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gavel/internal/cache"
	"gavel/internal/catalog"
	"gavel/internal/courtapi"
)

func newRecordingsCommand(ctx *commandContext) *cobra.Command {
	recordingsCmd := &cobra.Command{
		Use:   "recordings",
		Short: "Browse the court recording catalog",
	}

	recordingsCmd.AddCommand(newRecordingsListCommand(ctx))
	recordingsCmd.AddCommand(newRecordingsShowCommand(ctx))
	recordingsCmd.AddCommand(newRecordingsExportCommand(ctx))

	return recordingsCmd
}

func newRecordingsListCommand(ctx *commandContext) *cobra.Command {
	var searchTerm string
	var page int
	var jsonOutput bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recordings, optionally filtered and paginated",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(ctx, cmd, offline)
			if err != nil {
				return err
			}

			cfg, _ := ctx.ensureConfig()
			result := catalog.Paginate(cat.Search(searchTerm), page, cfg.UI.PageSize)
			if jsonOutput {
				return writeJSON(cmd, result)
			}

			rows := make([][]string, 0, len(result.Recordings))
			for _, rec := range result.Recordings {
				rows = append(rows, []string{
					strconv.FormatInt(rec.ID, 10),
					rec.CaseNumber,
					rec.Title,
					rec.Date,
					rec.Court,
					rec.Courtroom,
					rec.JudgeName,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Case", "Title", "Date", "Court", "Courtroom", "Judge"},
				rows,
				[]columnAlignment{alignRight},
			))
			fmt.Fprintf(out, "Page %d of %d (%d recordings)\n", result.Number, result.Count, result.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Filter recordings by a case-insensitive term")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	cmd.Flags().BoolVar(&offline, "offline", false, "Serve from the local snapshot without contacting the backend")
	return cmd
}

func newRecordingsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "show <recording-id>",
		Short: "Show one recording's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "recording id")
			if err != nil {
				return err
			}
			cat, err := loadCatalog(ctx, cmd, offline)
			if err != nil {
				return err
			}
			rec, ok := cat.Recording(id)
			if !ok {
				return fmt.Errorf("recording %d not found", id)
			}
			if jsonOutput {
				return writeJSON(cmd, rec)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Case number: %s\n", rec.CaseNumber)
			fmt.Fprintf(out, "Title:       %s\n", rec.Title)
			fmt.Fprintf(out, "Date:        %s\n", rec.Date)
			fmt.Fprintf(out, "Court:       %s\n", rec.Court)
			fmt.Fprintf(out, "Courtroom:   %s\n", rec.Courtroom)
			fmt.Fprintf(out, "Judge:       %s\n", rec.JudgeName)
			if strings.TrimSpace(rec.Notes) != "" {
				fmt.Fprintf(out, "Notes:       %s\n", rec.Notes)
			}
			fmt.Fprintf(out, "Transcript:  %s\n", yesNo(strings.TrimSpace(rec.Transcript) != ""))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	cmd.Flags().BoolVar(&offline, "offline", false, "Serve from the local snapshot without contacting the backend")
	return cmd
}

func newRecordingsExportCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var offline bool

	cmd := &cobra.Command{
		Use:   "export <recording-id>",
		Short: "Export a recording's transcript to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "recording id")
			if err != nil {
				return err
			}
			cat, err := loadCatalog(ctx, cmd, offline)
			if err != nil {
				return err
			}
			rec, ok := cat.Recording(id)
			if !ok {
				return fmt.Errorf("recording %d not found", id)
			}

			dir := strings.TrimSpace(outputDir)
			if dir == "" {
				dir = "."
			}
			target := filepath.Join(dir, catalog.ExportFilename(rec))
			if err := os.WriteFile(target, []byte(catalog.ExportTranscript(rec)), 0o644); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write the transcript into")
	cmd.Flags().BoolVar(&offline, "offline", false, "Serve from the local snapshot without contacting the backend")
	return cmd
}

// loadCatalog loads the catalog from the backend, falling back to (or
// directly serving) the local snapshot when offline is requested. A
// successful backend load refreshes the snapshot when caching is on.
func loadCatalog(ctx *commandContext, cmd *cobra.Command, offline bool) (*catalog.Catalog, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}

	if offline {
		return catalogFromSnapshot(ctx, cmd)
	}

	client, err := ctx.apiClient()
	if err != nil {
		return nil, err
	}
	cat := catalog.New(client, ctx.ensureLogger())
	if err := cat.LoadAll(cmd.Context()); err != nil {
		if cfg.Cache.Enabled {
			if snapCat, snapErr := catalogFromSnapshot(ctx, cmd); snapErr == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Backend unreachable; showing cached snapshot")
				return snapCat, nil
			}
		}
		return nil, err
	}

	if cfg.Cache.Enabled {
		if err := saveSnapshot(ctx, cmd, client, cat); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: snapshot not saved: %v\n", err)
		}
	}
	return cat, nil
}

func catalogFromSnapshot(ctx *commandContext, cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Cache.Enabled {
		return nil, errors.New("snapshot cache is disabled; enable [cache] in the configuration")
	}
	store, err := cache.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	snap, err := store.LoadSnapshot(cmd.Context())
	if err != nil {
		if errors.Is(err, cache.ErrNoSnapshot) {
			return nil, errors.New("no snapshot saved yet; run a command online first")
		}
		return nil, err
	}

	cat := catalog.New(snap, ctx.ensureLogger())
	if err := cat.LoadAll(cmd.Context()); err != nil {
		return nil, err
	}
	return cat, nil
}

func saveSnapshot(ctx *commandContext, cmd *cobra.Command, client *courtapi.Client, cat *catalog.Catalog) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	users, err := client.ListUsers(cmd.Context())
	if err != nil {
		return err
	}
	store, err := cache.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveSnapshot(cmd.Context(), cache.Snapshot{
		Recordings: cat.Recordings(),
		Courts:     cat.Courts(),
		Courtrooms: cat.Courtrooms(),
		Users:      users,
	})
}

func parseID(arg, label string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", label, arg)
	}
	return id, nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
