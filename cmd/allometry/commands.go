package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/allometry"
)

var predictCmd = &cobra.Command{
	Use:   "predict SPECIES INDEPENDENT DEPENDENT VALUE",
	Short: "Predict one tree dimension from another",
	Long: `Evaluates the equation registered for SPECIES relating INDEPENDENT to
DEPENDENT at VALUE. Variable names are matched verbatim; quote names that
contain spaces. Flags go before the arguments so that negative values
such as -1 are read as values.

Example:
  allometry predict ACRU dbh "tree ht" 30`,
	Args: cobra.ExactArgs(4),
	RunE: runPredict,
}

var (
	flagRootPolicy string
	flagAllRoots   bool
)

var invertCmd = &cobra.Command{
	Use:   "invert [flags] SPECIES INDEPENDENT DEPENDENT VALUE",
	Short: "Recover the independent measurement from a dependent one",
	Long: `Solves the equation registered for SPECIES relating INDEPENDENT to
DEPENDENT for the independent variable, given the dependent VALUE.

When several real roots exist the root policy picks one: "smallest" (the
default) or "nonneg" (the smallest non-negative root). Many table
equations have a negative root below the physical one, so use
--root-policy nonneg when the answer must be a real measurement. --all
also prints every candidate root. Flags go before the arguments.

Example:
  allometry invert --root-policy nonneg ACRU dbh age 20`,
	Args: cobra.ExactArgs(4),
	RunE: runInvert,
}

func init() {
	// Negative measurements must not be parsed as shorthand flags.
	predictCmd.Flags().SetInterspersed(false)
	invertCmd.Flags().SetInterspersed(false)

	invertCmd.Flags().StringVar(&flagRootPolicy, "root-policy", "", "root selection: smallest|nonneg (default from config)")
	invertCmd.Flags().BoolVar(&flagAllRoots, "all", false, "print every real root in ascending order")
}

var speciesCmd = &cobra.Command{
	Use:   "species [CODE]",
	Short: "List species, or one species' relationships",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSpecies,
}

// CLIResult is the JSON shape of predict and invert output.
type CLIResult struct {
	Species     string    `json:"species"`
	Independent string    `json:"independent"`
	Dependent   string    `json:"dependent"`
	Direction   string    `json:"direction"`
	Input       float64   `json:"input"`
	Result      float64   `json:"result"`
	Roots       []float64 `json:"roots,omitempty"`
}

func parseMeasurement(args []string) (float64, error) {
	v, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: not a number", args[3])
	}
	return v, nil
}

func runPredict(cmd *cobra.Command, args []string) error {
	v, err := parseMeasurement(args)
	if err != nil {
		return err
	}
	reg, err := openRegistry("")
	if err != nil {
		return err
	}
	out, err := reg.Predict(args[0], args[1], args[2], v)
	if err != nil {
		logger.Debug("predict failed", zap.String("kind", allometry.KindOf(err)), zap.Error(err))
		return err
	}
	return writeResult(cmd.OutOrStdout(), CLIResult{
		Species: args[0], Independent: args[1], Dependent: args[2],
		Direction: "forward", Input: v, Result: out,
	})
}

func runInvert(cmd *cobra.Command, args []string) error {
	v, err := parseMeasurement(args)
	if err != nil {
		return err
	}
	reg, err := openRegistry(flagRootPolicy)
	if err != nil {
		return err
	}
	res := CLIResult{
		Species: args[0], Independent: args[1], Dependent: args[2],
		Direction: "inverse", Input: v,
	}

	if flagAllRoots {
		eq, err := reg.Lookup(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		roots, err := reg.Solver().Roots(eq, v)
		if err != nil {
			return err
		}
		res.Roots = roots
	}

	res.Result, err = reg.Invert(args[0], args[1], args[2], v)
	if err != nil {
		logger.Debug("invert failed", zap.String("kind", allometry.KindOf(err)), zap.Error(err))
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}

func runSpecies(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry("")
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if len(args) == 0 {
		resp := reg.HandleToolCall(allometry.ToolRequest{Tool: "list_species"})
		if resp.Error != "" {
			return fmt.Errorf("%s", resp.Error)
		}
		infos := resp.Result.([]allometry.SpeciesInfo)
		if flagFormat == "json" {
			return writeJSON(w, infos)
		}
		formatSpeciesText(w, infos)
		return nil
	}

	resp := reg.HandleToolCall(allometry.ToolRequest{
		Tool:   "list_relationships",
		Params: map[string]interface{}{"species": args[0]},
	})
	if resp.Error != "" {
		return fmt.Errorf("%s", resp.Error)
	}
	rels := resp.Result.([]allometry.RelationshipInfo)
	if flagFormat == "json" {
		return writeJSON(w, rels)
	}
	formatRelationshipsText(w, args[0], rels)
	return nil
}
