package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jarscope/internal/adapters/sqlite"
	"jarscope/internal/application"
	"jarscope/internal/application/commands"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the saved display settings",
	Long: `Show the display settings shared with the jarscope TUI.

Examples:
  jarscope-cli settings
  jarscope-cli settings toggle show_line_numbers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := settings.Load()
		if err != nil {
			return err
		}
		printSettings(current)

		fmt.Println()
		if store, ok := settings.(*sqlite.SettingsStore); ok {
			fmt.Printf("settings file: %s\n", store.Path())
		} else {
			fmt.Println("settings file: none (not saved)")
		}
		fmt.Printf("export dir:    %s\n", source.ExportDir())
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:       "toggle <key>",
	Short:     "Flip one display setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: settingKeyNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := settings.Load()
		if err != nil {
			return err
		}
		next, err := commands.NewToggleSettingCommand(settings, current, args[0]).Execute()
		if err != nil {
			return noticeError(err)
		}
		printSettings(next)
		return nil
	},
}

func printSettings(s application.DisplaySettings) {
	for _, k := range application.SettingKeys {
		state := "off"
		if s.Get(k) {
			state = "on"
		}
		fmt.Printf("%-22s %-3s  %s\n", k, state, k.Label())
	}
}

func settingKeyNames() []string {
	names := make([]string, 0, len(application.SettingKeys))
	for _, k := range application.SettingKeys {
		names = append(names, string(k))
	}
	return names
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(toggleCmd)
}
