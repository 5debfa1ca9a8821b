package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/njchilds90/allometry/internal/batch"
)

var (
	flagIn      string
	flagOut     string
	flagWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a CSV of predictions and inversions",
	Long: `Reads rows of species,independent,dependent,value,direction and writes
them back with result and error columns appended. direction is forward or
inverse. Row order is preserved; a failing row is reported in its error
column and does not stop the run.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&flagIn, "in", "-", "input CSV file (- for stdin)")
	batchCmd.Flags().StringVar(&flagOut, "out", "-", "output CSV file (- for stdout)")
	batchCmd.Flags().IntVar(&flagWorkers, "workers", 0, "concurrent rows (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry("")
	if err != nil {
		return err
	}
	workers := flagWorkers
	if workers <= 0 {
		workers = cfg.Batch.Workers
	}
	runner, err := batch.NewRunner(reg, workers, logger)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if flagIn != "-" {
		f, err := os.Open(flagIn)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = cmd.OutOrStdout()
	var outFile *os.File
	if flagOut != "-" {
		outFile, err = os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer outFile.Close()
		out = outFile
	}

	sum, err := runner.Run(cmd.Context(), in, out)
	if err != nil {
		return err
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("closing output: %w", err)
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d rows, %d failed\n", sum.Rows, sum.Failed)
	return nil
}
