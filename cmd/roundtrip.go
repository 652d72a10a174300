package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mattmcc/microformats2/mf2"
)

// roundtripCmd represents the roundtrip command
var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [json_file]",
	Short: "Reload a previously emitted MF2 JSON file and print it back out",
	Long: `Roundtrip reads MF2 JSON (as produced by "parse"), reconstructs the
Document it describes, and re-emits it, exercising the JSON
deserialize/serialize contract from the command line. Pass "-" or omit
the argument to read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openInput(args)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		doc, err := mf2.NewFromJSON(data)
		if err != nil {
			return fmt.Errorf("failed to decode document: %w", err)
		}

		out, err := doc.AsJSON()
		if err != nil {
			return fmt.Errorf("failed to serialize document: %w", err)
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}
