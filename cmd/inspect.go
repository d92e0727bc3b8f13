package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mabhi256/marshal48/internal/explorer"
	"github.com/mabhi256/marshal48/internal/marshal"
	"github.com/mabhi256/marshal48/utils"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Decode a Marshal 4.8 stream and browse it interactively",
	Long: `Inspect decodes a Marshal 4.8 binary stream and opens an interactive
tree browser over the decoded value, its object table, and its symbol
table, with fuzzy search over symbol and class names.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".bin", ".marshal", ".dump"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()

		root, session, err := marshal.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		return explorer.Run(root, session)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
