package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mabhi256/marshal48/internal/demohost"
	"github.com/mabhi256/marshal48/internal/marshal"
	"github.com/mabhi256/marshal48/internal/marshal/host"
	"github.com/mabhi256/marshal48/utils"
)

var (
	decodeCopy bool
	decodeRepr bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a Marshal 4.8 stream and print it",
	Long: `Decode reads a Marshal 4.8 binary stream and prints the value it
describes, projected through a demo host that materializes any class
name as a generic attribute bag (see internal/demohost).

Use --repr for the bounded, cycle-safe debug representation instead of
the projected Go value, and --copy to also put it on the clipboard.`,
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

		var out string
		if decodeRepr {
			out = marshal.Repr(root)
		} else {
			caps := host.New(demohost.NewFactory())
			hostVal, err := root.ToHost(caps)
			if err != nil {
				return fmt.Errorf("project %s: %w", args[0], err)
			}
			out = fmt.Sprintf("%+v", hostVal)
		}

		fmt.Println(out)
		fmt.Printf("(%d symbols, %d objects)\n", len(session.Symbols()), len(session.Objects()))

		if decodeCopy {
			if err := clipboard.WriteAll(out); err != nil {
				fmt.Printf("note: could not copy to clipboard: %v\n", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&decodeCopy, "copy", false, "copy the printed representation to the clipboard")
	decodeCmd.Flags().BoolVar(&decodeRepr, "repr", false, "print the bounded debug representation instead of the projected value")
}
