package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"smartsales/internal"
	"smartsales/internal/sink"
	"smartsales/internal/warehouse"
	"smartsales/logger"
	"smartsales/specs"
)

var rootCmd = &cobra.Command{
	Use:   "smartsales",
	Short: "OLAP cubing over the smart sales data warehouse",
	Long: `smartsales builds multidimensional aggregation cubes over the sales
fact table: it derives calendar dimensions from the sale date, groups by
the configured dimensions, aggregates the configured metrics, and writes
the cube as CSV for slicing and dicing in downstream tools.`,
	SilenceUsage: true,
}

var initFlags struct {
	dbPath string
	seed   bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data warehouse tables",
	Long: `Create a fresh SQLite data warehouse with the customer, product and
sale tables. An existing database file at the same path is deleted first.`,
	RunE: runInit,
}

var buildFlags struct {
	dbPath     string
	configPath string
	outPath    string
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the OLAP cube and write it as CSV",
	RunE:  runBuild,
}

func init() {
	initCmd.Flags().StringVar(&initFlags.dbPath, "db", "data/dw/smart_sales.db", "Path to the warehouse database file")
	initCmd.Flags().BoolVar(&initFlags.seed, "seed", false, "Seed the warehouse with the documented sample dataset")

	buildCmd.Flags().StringVar(&buildFlags.dbPath, "db", "data/dw/smart_sales.db", "Path to the warehouse database file")
	buildCmd.Flags().StringVar(&buildFlags.configPath, "config", "", "Cube config YAML (defaults to the documented example cube)")
	buildCmd.Flags().StringVar(&buildFlags.outPath, "out", "data/olap_cubing_outputs/multidimensional_olap_cube.csv", "Output CSV path")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(buildCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	log := logger.New(os.Stdout, slog.LevelInfo)

	if _, err := os.Stat(initFlags.dbPath); err == nil {
		if err := os.Remove(initFlags.dbPath); err != nil {
			return fmt.Errorf("deleting existing database %s: %w", initFlags.dbPath, err)
		}
		log.Info("existing database deleted", "path", initFlags.dbPath)
	}

	if initFlags.dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(initFlags.dbPath), 0o755); err != nil {
			return fmt.Errorf("creating warehouse directory: %w", err)
		}
	}

	wh, err := warehouse.Open(initFlags.dbPath, log)
	if err != nil {
		return err
	}
	if err := wh.CreateTables(); err != nil {
		return err
	}
	if initFlags.seed {
		if err := wh.SeedSampleData(); err != nil {
			return err
		}
	}

	log.Info("data warehouse created", "path", initFlags.dbPath)
	return nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	log := logger.New(os.Stdout, slog.LevelInfo)

	config := exampleCubeConfig()
	if buildFlags.configPath != "" {
		loaded, err := internal.LoadCubeConfig(buildFlags.configPath)
		if err != nil {
			return err
		}
		config = loaded
	}

	wh, err := warehouse.Open(buildFlags.dbPath, log)
	if err != nil {
		return err
	}

	pipeline := internal.NewPipeline(wh, sink.NewCSVSink(buildFlags.outPath, log), nil, log)
	if _, err := pipeline.Run(config); err != nil {
		return err
	}

	log.Info("see cube output", "path", buildFlags.outPath)
	return nil
}

// exampleCubeConfig is the documented example usage, not an engine
// default: quarterly sales by product and customer.
func exampleCubeConfig() specs.CubeConfigSpec {
	return specs.CubeConfigSpec{
		DateColumn: "sale_date",
		Dimensions: []string{"Quarter", "product_id", "customer_id"},
		Metrics: []specs.MetricSpec{
			{Column: "sale_amount_usd", Functions: []string{"sum", "mean"}},
			{Column: "transaction_id", Functions: []string{"count"}},
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
