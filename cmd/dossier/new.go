// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nevinshine/research-dossier/internal/catalog"
	"github.com/nevinshine/research-dossier/internal/editor"
	"github.com/nevinshine/research-dossier/internal/scaffold"
	"github.com/nevinshine/research-dossier/internal/wizard"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Interactively scaffold a new research log",
	Long: `New asks which track a log belongs to, its title, and a one-sentence
TL;DR, then writes <slug>.md with front-matter under the track's directory and
opens it in your editor.

An existing log with the same slug is overwritten. An unknown track key or a
failed write is reported and the command still exits successfully.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := loadConfig().Scaffold
	if noEditor, _ := cmd.Flags().GetBool("no-editor"); noEditor {
		cfg.OpenEditor = false
	}

	var launcher editor.Launcher
	if cfg.OpenEditor {
		l, err := editor.New(cfg.Editor)
		if err != nil {
			logger.Debug("editor disabled", zap.Error(err))
		} else {
			launcher = l
		}
	}

	w := &wizard.Wizard{
		Catalog:    catalog.Default(),
		Scaffolder: scaffold.New(afero.NewOsFs(), cfg.ContentRoot),
		Editor:     launcher,
		Logger:     logger,
	}
	res, err := w.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("wizard finished", zap.Stringer("outcome", res.Outcome))
	return nil
}

func init() {
	newCmd.Flags().String("editor", editor.DefaultCommand, "editor command used to open the new log")
	newCmd.Flags().Bool("no-editor", false, "do not open the new log in an editor")

	_ = viper.BindPFlag("scaffold.editor", newCmd.Flags().Lookup("editor"))

	rootCmd.AddCommand(newCmd)
}
