package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jarscope/internal/adapters/clipboard"
	"jarscope/internal/adapters/editor"
	"jarscope/internal/adapters/memory"
	"jarscope/internal/application"
	"jarscope/internal/application/commands"
)

var (
	member         string
	export         bool
	edit           bool
	copyToClip     bool
	lineNumbers    bool
	removeComments bool
	inlineSimple   bool
	simplify       bool
)

var decompileCmd = &cobra.Command{
	Use:   "decompile <file>",
	Short: "Print the simplified source of a class",
	Long: `Print the simplified Java source of a .class file, or of one class
inside a .jar archive. Without --member the first class of the archive
is used.

Formatting flags override the saved settings for this run only.

Examples:
  jarscope-cli decompile Main.class
  jarscope-cli decompile app.jar --member com/app/Main.class
  jarscope-cli decompile app.jar --remove-comments --export
  jarscope-cli decompile Main.class --edit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		display, err := displaySettings(cmd)
		if err != nil {
			return err
		}

		history, err := memory.NewHistory(1)
		if err != nil {
			return err
		}
		session := application.NewSession(history)
		session.SetSettings(display)

		open := commands.NewOpenFileCommand(source, archives, args[0])
		open.Member = member
		result, err := session.RunOpen(ctx, open.Execute)
		if err != nil {
			return noticeError(err)
		}

		switch {
		case export || edit:
			path, err := commands.NewExportCommand(source, &result, display).Execute()
			if err != nil {
				return noticeError(err)
			}
			fmt.Println("Saved " + path)
			if edit {
				return editor.NewOpener().OpenFile(path)
			}
		case copyToClip:
			if err := commands.NewCopyCommand(clipboard.NewSystem(), &result, display).Execute(); err != nil {
				return noticeError(err)
			}
			fmt.Println("Copied " + result.FileName + " to clipboard")
		default:
			fmt.Print(session.Rendered())
		}
		return nil
	},
}

// displaySettings starts from the saved settings and applies the flags the
// user set explicitly
func displaySettings(cmd *cobra.Command) (application.DisplaySettings, error) {
	saved, err := settings.Load()
	if err != nil {
		return application.DisplaySettings{}, err
	}

	flags := []struct {
		name  string
		key   application.SettingKey
		value bool
	}{
		{"line-numbers", application.SettingShowLineNumbers, lineNumbers},
		{"remove-comments", application.SettingRemoveComments, removeComments},
		{"inline-simple", application.SettingInlineSimpleMethods, inlineSimple},
		{"simplify", application.SettingSimplifyExpressions, simplify},
	}
	for _, f := range flags {
		if cmd.Flags().Changed(f.name) {
			saved = saved.With(f.key, f.value)
		}
	}
	return saved, nil
}

func init() {
	rootCmd.AddCommand(decompileCmd)
	decompileCmd.Flags().StringVarP(&member, "member", "m", "", "archive member path, e.g. com/app/Main.class")
	decompileCmd.Flags().BoolVarP(&export, "export", "e", false, "save as .java in the export directory instead of printing")
	decompileCmd.Flags().BoolVar(&edit, "edit", false, "save as .java and open it in $EDITOR")
	decompileCmd.Flags().BoolVarP(&copyToClip, "copy", "c", false, "copy to the clipboard instead of printing")
	decompileCmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", false, "prefix lines with line numbers")
	decompileCmd.Flags().BoolVar(&removeComments, "remove-comments", false, "drop comment lines")
	decompileCmd.Flags().BoolVar(&inlineSimple, "inline-simple", false, "collapse one-line method bodies")
	decompileCmd.Flags().BoolVar(&simplify, "simplify", false, "drop implicit super() calls and repeated blank lines")
	decompileCmd.MarkFlagsMutuallyExclusive("export", "copy")
	decompileCmd.MarkFlagsMutuallyExclusive("edit", "copy")
}
