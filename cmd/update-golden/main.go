// Command update-golden regenerates mf2/testdata/*_golden.json from the
// corresponding *.html fixtures. Run it after changing extraction or
// implied-property behavior and diff the result before committing.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattmcc/microformats2/mf2"
)

func main() {
	// Paths are relative to the repository root.
	inputs, err := filepath.Glob("mf2/testdata/*.html")
	if err != nil {
		log.Fatalf("Failed to glob files: %v", err)
	}

	for _, inputFile := range inputs {
		outputFile := strings.TrimSuffix(inputFile, ".html") + "_golden.json"

		fmt.Printf("Processing %s -> %s\n", inputFile, outputFile)
		f, err := os.Open(inputFile)
		if err != nil {
			log.Printf("Failed to open input file %s: %v", inputFile, err)
			continue
		}

		doc, err := mf2.Parse(f, mf2.DefaultBaseURL)
		f.Close()
		if err != nil {
			log.Printf("Parse failed for %s: %v", inputFile, err)
			continue
		}

		out, err := doc.AsJSON()
		if err != nil {
			log.Printf("Serialize failed for %s: %v", inputFile, err)
			continue
		}

		if err := os.WriteFile(outputFile, append(out, '\n'), 0644); err != nil {
			log.Printf("Failed to write output file %s: %v", outputFile, err)
			continue
		}
	}

	fmt.Println("Done. Golden files updated.")
}
