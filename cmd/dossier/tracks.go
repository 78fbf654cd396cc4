// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nevinshine/research-dossier/internal/catalog"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the research tracks a log can be filed under",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks := catalog.Default().Tracks()
		out := cmd.OutOrStdout()

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(tracks)
		}

		fmt.Fprintln(out, heading(out, fmt.Sprintf("%-4s  %-30s  %s", "Key", "Track", "Directory")))
		fmt.Fprintln(out, strings.Repeat("-", 72))
		for _, t := range tracks {
			fmt.Fprintf(out, "%-4s  %-30s  %s\n", t.Key, t.Name, t.Dir)
		}
		return nil
	},
}

func init() {
	tracksCmd.Flags().Bool("json", false, "output tracks as JSON")
	rootCmd.AddCommand(tracksCmd)
}
