package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattmcc/microformats2/mf2"
)

var baseURL string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [html_file]",
	Short: "Parse an HTML file and print its Microformats2 JSON",
	Long: `Parse reads an HTML document, walks it for h-*/p-*/u-*/e-*/dt-*
class tokens, and prints the canonical MF2 JSON. Pass "-" or omit the
argument to read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openInput(args)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()

		doc, err := mf2.Parse(f, baseURL)
		if err != nil {
			return fmt.Errorf("failed to parse html: %w", err)
		}

		out, err := doc.AsJSON()
		if err != nil {
			return fmt.Errorf("failed to serialize document: %w", err)
		}

		fmt.Println(string(out))
		return nil
	},
}

func openInput(args []string) (*os.File, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil
	}
	return os.Open(args[0])
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&baseURL, "base", mf2.DefaultBaseURL, "base URL used to resolve relative URLs")
}
