package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jarscope/internal/application"
	"jarscope/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list <file.jar>",
	Short: "List the classes of an archive",
	Long: `List every .class entry of a .jar archive in archive order.

Example:
  jarscope-cli list app.jar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opened, err := openArchive(args[0])
		if err != nil {
			return noticeError(err)
		}

		for _, m := range opened.Members {
			fmt.Println(m)
		}
		return nil
	},
}

// openArchive runs the open pipeline and rejects single class files
func openArchive(path string) (*application.Opened, error) {
	opened, err := commands.NewOpenFileCommand(source, archives, path).Execute(context.Background())
	if err != nil {
		return nil, err
	}
	if opened.Kind != application.InputArchive {
		return nil, &application.ValidationError{
			Field:   "path",
			Message: opened.Name + " is not a .jar archive",
		}
	}
	return opened, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
