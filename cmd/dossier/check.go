// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nevinshine/research-dossier/internal/logbook"
)

var checkCmd = &cobra.Command{
	Use:   "check [track-key]",
	Short: "Verify that every log's front-matter will render",
	Long: `Check parses the front-matter of every log and validates it against the
log schema: title, date (YYYY-MM-DD), and tldr must be present, and the
filename must be a slug.

Titles or summaries containing double quotes or backslashes are written
unescaped by "dossier new" and break the front-matter; check reports them so
they can be fixed by hand. Exits non-zero when any log has issues.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	tracks, err := selectTracks(args)
	if err != nil {
		return err
	}

	reports, err := logbook.Check(afero.NewOsFs(), loadConfig().Scaffold.ContentRoot, tracks)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(reports) == 0 {
		fmt.Fprintln(out, "All logs are valid.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintln(out, heading(out, fmt.Sprintf("%s (%s)", r.Path, r.Track.Name)))
		for _, issue := range r.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		logger.Warn("invalid log", zap.String("path", r.Path), zap.Int("issues", len(r.Issues)))
	}
	return fmt.Errorf("%d log(s) have issues", len(reports))
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
