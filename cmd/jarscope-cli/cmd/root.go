package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jarscope/internal/adapters/filesystem"
	"jarscope/internal/adapters/memory"
	"jarscope/internal/adapters/sqlite"
	"jarscope/internal/adapters/zipfile"
	"jarscope/internal/application"
	"jarscope/internal/config"
	"jarscope/internal/ports"
)

var (
	exportDir string
	source    *filesystem.Source
	archives  ports.ArchiveReader
	settings  ports.SettingsStore
)

var rootCmd = &cobra.Command{
	Use:   "jarscope-cli",
	Short: "Inspect .jar and .class files from the command line",
	Long: `jarscope-cli lists the classes inside Java archives and prints a
simplified Java source view of class files.

The source view is synthesized from markers found in the class bytes
(entry points, constructors, method and field names). It is not a real
bytecode decompilation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		source = filesystem.NewSource(exportDir)
		archives = zipfile.NewReader()

		store, err := sqlite.OpenSettingsStore(config.SettingsDBPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: settings will not be saved: %v\n", err)
			settings = memory.NewSettings()
			return nil
		}
		settings = store
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if settings != nil {
			return settings.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&exportDir, "export-dir", "d", config.ExportDir(), "directory for exported .java files")
}

// noticeError turns a pipeline error into what the user sees. Outcomes that
// are not failures, like an archive without classes, are printed and
// swallowed.
func noticeError(err error) error {
	notice := application.NoticeFor(err)
	if !notice.IsError {
		fmt.Println(notice)
		return nil
	}
	return errors.New(notice.String())
}
