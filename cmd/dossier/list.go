// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nevinshine/research-dossier/internal/catalog"
	"github.com/nevinshine/research-dossier/internal/logbook"
	"github.com/nevinshine/research-dossier/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list [track-key]",
	Short: "List filed research logs, newest first",
	Long: `List reads every log under the track directories and prints its date,
track, and title from the front-matter. Pass a track key to list one track.
Logs whose front-matter does not parse are listed last; run "dossier check"
for details.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

// listedEntry is the JSON shape of one listed log.
type listedEntry struct {
	logbook.Entry
	Error string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	tracks, err := selectTracks(args)
	if err != nil {
		return err
	}

	entries, err := logbook.List(afero.NewOsFs(), loadConfig().Scaffold.ContentRoot, tracks)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		listed := make([]listedEntry, len(entries))
		for i, e := range entries {
			listed[i] = listedEntry{Entry: e}
			if e.Err != nil {
				listed[i].Error = e.Err.Error()
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listed)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No logs found.")
		return nil
	}

	fmt.Fprintln(out, heading(out, fmt.Sprintf("%-10s  %-28s  %-40s  %s", "Date", "Track", "Title", "File")))
	fmt.Fprintln(out, strings.Repeat("-", 110))
	for _, e := range entries {
		date, title := "?", "(front-matter does not parse)"
		if e.Meta != nil {
			date, title = e.Meta.Date, e.Meta.Title
		}
		if r := []rune(title); len(r) > 40 {
			title = string(r[:37]) + "..."
		}
		fmt.Fprintf(out, "%-10s  %-28s  %-40s  %s\n", date, e.Track.Name, title, e.Slug())
	}
	fmt.Fprintf(out, "\n%d logs\n", len(entries))
	return nil
}

// selectTracks returns every track, or the single track named by args[0].
func selectTracks(args []string) ([]types.Track, error) {
	if len(args) == 0 {
		return catalog.Default().Tracks(), nil
	}
	t, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: choose one of %s", err, catalog.Default().KeyRange())
	}
	return []types.Track{t}, nil
}

func init() {
	listCmd.Flags().Bool("json", false, "output logs as JSON")
	rootCmd.AddCommand(listCmd)
}
