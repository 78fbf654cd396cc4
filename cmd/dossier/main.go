// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dossier CLI, which files new
// research logs into the documentation site's content tree and inspects
// the logs already there.
package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nevinshine/research-dossier/internal/editor"
	"github.com/nevinshine/research-dossier/internal/logging"
	"github.com/nevinshine/research-dossier/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once flags and config are known.
var logger = zap.NewNop()

// rootCmd is the base command for the dossier CLI.
var rootCmd = &cobra.Command{
	Use:   "dossier",
	Short: "Scaffold and inspect research logs for the security research dossier",
	Long: `dossier manages the research logs published on the System Security Research
Dossier site. Each log belongs to a track (Sentinel, Hyperion, Telos, or field
notes) and lives as a Markdown file with front-matter under that track's
content directory.

Use "dossier new" (or plain "dossier") to file a log interactively, "dossier
list" to see what is already filed, and "dossier check" to verify front-matter
before publishing.`,
	Args:         cobra.NoArgs,
	RunE:         runNew,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(loadConfig().Log)
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dossier.yaml or ~/.config/dossier/config.yaml)")
	rootCmd.PersistentFlags().String("content-root", ".", "directory the track paths are relative to")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file (rotated)")

	viper.SetDefault("scaffold.content_root", ".")
	viper.SetDefault("scaffold.editor", editor.DefaultCommand)
	viper.SetDefault("scaffold.open_editor", true)
	viper.SetDefault("log.level", "info")

	_ = viper.BindPFlag("scaffold.content_root", rootCmd.PersistentFlags().Lookup("content-root"))
	_ = viper.BindPFlag("log.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dossier")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dossier"))
		}
	}

	viper.SetEnvPrefix("DOSSIER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is normal; defaults and flags apply.
	_ = viper.ReadInConfig()
}

// loadConfig assembles the effective configuration from defaults, the
// config file, DOSSIER_* environment variables, and flags.
func loadConfig() types.Config {
	return types.Config{
		Scaffold: types.ScaffoldConfig{
			ContentRoot: viper.GetString("scaffold.content_root"),
			Editor:      viper.GetString("scaffold.editor"),
			OpenEditor:  viper.GetBool("scaffold.open_editor"),
		},
		Log: types.LogConfig{
			Verbose:    viper.GetBool("log.verbose"),
			Level:      viper.GetString("log.level"),
			File:       viper.GetString("log.file"),
			MaxSizeMB:  viper.GetInt("log.max_size_mb"),
			MaxBackups: viper.GetInt("log.max_backups"),
		},
	}
}

// heading renders a table header in bold when w is a terminal.
func heading(w io.Writer, s string) string {
	return lipgloss.NewRenderer(w).NewStyle().Bold(true).Render(s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
