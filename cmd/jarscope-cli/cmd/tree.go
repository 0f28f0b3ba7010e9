package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jarscope/internal/application"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file.jar>",
	Short: "Display the package tree of an archive",
	Long: `Display the classes of a .jar archive grouped by package.

Example:
  jarscope-cli tree app.jar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opened, err := openArchive(args[0])
		if err != nil {
			return noticeError(err)
		}

		for _, id := range opened.Tree.Roots() {
			printTree(opened.Tree, id, 0)
		}
		return nil
	},
}

func printTree(tree *application.PathTree, id application.NodeID, depth int) {
	node := tree.Node(id)
	indent := strings.Repeat("  ", depth)
	if !node.IsDirectory {
		fmt.Printf("%s%s\n", indent, node.Name)
		return
	}

	fmt.Printf("%s%s/\n", indent, node.Name)
	for _, child := range tree.Children(id) {
		printTree(tree, child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
