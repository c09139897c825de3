// Package main provides the CLI entry point for xlrange.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange"
	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/output"
	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/parser"
	"github.com/spf13/cobra"
)

type extractFlags struct {
	sheet        string
	columns      string
	rangeRef     string
	startCol     int
	endCol       int
	startRow     int
	endRow       int
	includeEmpty bool
	omitDropped  bool
	format       string
	outputPath   string
	pretty       bool
}

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlrange",
		Short: "Extract cell ranges from Excel files",
		Long: `xlrange reads a rectangular cell range from one sheet of an xlsx
workbook and outputs the values together with a cell address map.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newExtractCmd(), newSheetsCmd())
	return rootCmd
}

func newExtractCmd() *cobra.Command {
	var fl extractFlags
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract a cell range from a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.OutOrStdout(), args[0], fl)
		},
	}

	cmd.Flags().StringVarP(&fl.sheet, "sheet", "s", "", "Sheet name (may come from a Sheet! prefix in --range)")
	cmd.Flags().StringVarP(&fl.columns, "columns", "c", "", "Column span by letters, e.g. A:C")
	cmd.Flags().StringVarP(&fl.rangeRef, "range", "r", "", "Cell range, e.g. B2:D10")
	cmd.Flags().IntVar(&fl.startCol, "start-col", 0, "First column number (1-based)")
	cmd.Flags().IntVar(&fl.endCol, "end-col", 0, "Last column number (1-based, inclusive)")
	cmd.Flags().IntVar(&fl.startRow, "start-row", 0, "First row (default: 1)")
	cmd.Flags().IntVar(&fl.endRow, "end-row", 0, "Last row (default: last row with data)")
	cmd.Flags().BoolVar(&fl.includeEmpty, "include-empty", false, "Keep rows whose cells are all empty")
	cmd.Flags().BoolVar(&fl.omitDropped, "omit-dropped", false, "Leave cells of dropped rows out of the address map")
	cmd.Flags().StringVarP(&fl.format, "format", "f", "json", "Output format: json, csv, parquet")
	cmd.Flags().StringVarP(&fl.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&fl.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.MarkFlagsMutuallyExclusive("columns", "range", "start-col")
	cmd.MarkFlagsMutuallyExclusive("columns", "range", "end-col")

	return cmd
}

func newSheetsCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List sheets with their data bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := xlrange.SheetNames(args[0])
			if err != nil {
				return err
			}
			jsonData, err := output.SheetsToJSON(sheets, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runExtract(stdout io.Writer, inputPath string, fl extractFlags) error {
	logger := newLogger()

	switch fl.format {
	case "json", "csv", "parquet":
	default:
		return fmt.Errorf("invalid format: %s (must be json, csv, or parquet)", fl.format)
	}

	opts := xlrange.Options{
		StartRow:             fl.startRow,
		EndRow:               fl.endRow,
		IncludeEmpty:         fl.includeEmpty,
		OmitDroppedAddresses: fl.omitDropped,
	}

	sheet, startCol, endCol, opts, err := resolveColumns(fl, opts)
	if err != nil {
		return err
	}

	logger.Printf("Extracting columns %d..%d of sheet %q from %s", startCol, endCol, sheet, inputPath)
	result, err := xlrange.ExtractResult(inputPath, sheet, startCol, endCol, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Printf("Kept %d of %d rows, mapped %d cells", len(result.Table), result.Window.Rows(), len(result.Addresses))

	w := stdout
	if fl.outputPath != "" {
		file, err := os.Create(fl.outputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				logger.Printf("Error closing output file: %v", err)
			}
		}()
		w = file
	}

	if err := writeResult(w, result, fl); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if fl.outputPath != "" {
		logger.Printf("Output written to %s", fl.outputPath)
	}
	return nil
}

// resolveColumns picks the sheet and column span from whichever of --range,
// --columns or --start-col/--end-col was given.
func resolveColumns(fl extractFlags, opts xlrange.Options) (string, int, int, xlrange.Options, error) {
	switch {
	case fl.rangeRef != "":
		sheet, w, opts, err := xlrange.ResolveRef(fl.sheet, fl.rangeRef, opts)
		if err != nil {
			return "", 0, 0, opts, err
		}
		return sheet, w.C1, w.C2, opts, nil
	case fl.columns != "":
		start, end, err := parser.ParseColumns(fl.columns)
		if err != nil {
			return "", 0, 0, opts, fmt.Errorf("%w: invalid column letters: %v", xlrange.ErrInvalidInput, err)
		}
		return fl.sheet, start, end, opts, nil
	case fl.startCol != 0 || fl.endCol != 0:
		end := fl.endCol
		if end == 0 {
			end = fl.startCol
		}
		return fl.sheet, fl.startCol, end, opts, nil
	default:
		return "", 0, 0, opts, fmt.Errorf("one of --columns, --range or --start-col is required")
	}
}

func writeResult(w io.Writer, result *models.Result, fl extractFlags) error {
	switch fl.format {
	case "csv":
		return output.WriteCSV(w, result.Table)
	case "parquet":
		return output.WriteParquet(w, result)
	default:
		jsonData, err := output.ToJSON(result, fl.pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(jsonData))
		return err
	}
}

func newLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "xlrange: ", log.LstdFlags)
}
