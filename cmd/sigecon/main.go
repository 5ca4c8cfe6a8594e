package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coder-gabrielsantos/sigecon-extractor/constants"
	"github.com/coder-gabrielsantos/sigecon-extractor/internal/extractor"
	"github.com/coder-gabrielsantos/sigecon-extractor/internal/ingest"
)

var version = "1.2.1"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sigecon",
		Short:        "Extract procurement line items from PDF and spreadsheet tables",
		SilenceUsage: true,
	}
	root.AddCommand(extractCmd(), versionCmd())
	return root
}

func extractCmd() *cobra.Command {
	var (
		optionalTotal bool
		minScore      int
	)
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract line items from a document and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ext := constants.NormalizeExt(filepath.Ext(path))
			if !constants.IsAllowedExt(ext) {
				return fmt.Errorf("file extension %q is not accepted", ext)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			rows, err := ingest.ReadRows(ext, data)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			ex := extractor.New(nil, extractor.Config{
				MinHeaderScore: minScore,
				OptionalTotal:  optionalTotal,
			})
			result, err := ex.Extract(rows)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().BoolVar(&optionalTotal, "optional-total", false, "compute the total column instead of requiring it")
	cmd.Flags().IntVar(&minScore, "min-header-score", 0, "override the header confidence floor")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "sigecon "+version)
		},
	}
}
