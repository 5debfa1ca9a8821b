// cmd/allometry: command-line front end for the allometry registry.
//
// Usage:
//
//	allometry predict ACRU dbh "tree ht" 30
//	allometry invert --root-policy nonneg ACRU dbh age 20
//	allometry species ACRU
//	allometry batch --in trees.csv --out results.csv
//	allometry serve --addr :8080
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/allometry"
	"github.com/njchilds90/allometry/internal/config"
	"github.com/njchilds90/allometry/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagConfig  string
	flagFormat  string
	flagVerbose bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "allometry",
	Short:         "Urban tree allometry: predict and invert tree dimensions",
	Long:          "allometry evaluates published regression equations relating tree dimensions (dbh, height, crown size, age, leaf area) for Pacific Northwest street-tree species, forward or inverted.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		c, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = c
		logger, err = logging.New(cfg.Logging, flagVerbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(predictCmd, invertCmd, speciesCmd, batchCmd, serveCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "allometry %s\n", version)
		return nil
	},
}

// openRegistry builds the frozen default registry with the configured
// solver. A non-empty policy overrides the configured root policy.
func openRegistry(policy string) (*allometry.Registry, error) {
	solver := cfg.SolverSettings()
	if policy != "" {
		p, err := allometry.ParseRootPolicy(policy)
		if err != nil {
			return nil, err
		}
		solver.Policy = p
	}
	reg, err := allometry.NewDefaultRegistry(allometry.WithSolver(solver))
	if err != nil {
		return nil, fmt.Errorf("loading species table: %w", err)
	}
	logger.Debug("registry loaded",
		zap.Int("species", len(reg.Codes())),
		zap.Stringer("root_policy", solver.Policy))
	return reg, nil
}
