package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/msgetl/internal/cleaner"
	"github.com/vvka-141/msgetl/internal/files/filesystem"
	"github.com/vvka-141/msgetl/internal/files/loader"
	"github.com/vvka-141/msgetl/internal/logging"
	"github.com/vvka-141/msgetl/internal/services"
	"github.com/vvka-141/msgetl/internal/store"
	"github.com/vvka-141/msgetl/pkg/msgetl"
)

var rootCmd = &cobra.Command{
	Use:   "msgetl <messages_csv> <categories_csv> <database>",
	Short: "Merge, clean and store disaster response messages",
	Long: `msgetl joins a messages CSV with its categories CSV on the id column,
expands the packed categories into one integer column per category, drops
invalid and duplicate rows, and replaces a table in a SQLite database with
the result. A postgres:// URL writes to PostgreSQL instead.

Defaults match the disaster response dataset and can be changed with flags
or a msgetl.yaml file in the working directory.

Exit Codes:
  0  - Success, or usage printed
  1  - General error
  2  - CLI usage error (invalid flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Input file unreadable
  12 - Data error (missing column, malformed categories, empty input)
  13 - Database unavailable or write failed`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runPipeline,
}

type rootFlagValues struct {
	configPath        string
	table             string
	key               string
	csvDelimiter      string
	categoriesColumn  string
	categoryDelimiter string
	suffixLength      int
	dropColumns       []string
	filterColumn      string
	invalidValue      int64
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for msgetl")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print row counts after each stage")

	f := rootCmd.Flags()
	f.StringVar(&rootFlags.configPath, "config", "", "YAML config file (default: "+defaultConfigHint+")")
	f.StringVar(&rootFlags.table, "table", msgetl.DefaultTableName, "Table the cleaned data replaces")
	f.StringVar(&rootFlags.key, "key", msgetl.DefaultKeyColumn, "Column both files are joined on")
	f.StringVar(&rootFlags.csvDelimiter, "csv-delimiter", string(msgetl.DefaultCSVDelimiter), `Field delimiter of both CSV files (\t for tab)`)
	f.StringVar(&rootFlags.categoriesColumn, "categories-column", msgetl.DefaultCategoriesColumn, "Column holding the packed categories")
	f.StringVar(&rootFlags.categoryDelimiter, "category-delimiter", msgetl.DefaultCategoryDelimiter, "Separator between packed name-value pairs")
	f.IntVar(&rootFlags.suffixLength, "suffix-length", msgetl.DefaultSuffixLength, "Characters stripped from each first-row entry to get the category name")
	f.StringSliceVar(&rootFlags.dropColumns, "drop-column", msgetl.DefaultDropColumns(), "Category column to remove after expansion (repeatable)")
	f.StringVar(&rootFlags.filterColumn, "filter-column", msgetl.DefaultFilterColumn, "Category column checked against --invalid-value")
	f.Int64Var(&rootFlags.invalidValue, "invalid-value", msgetl.DefaultInvalidValue, "Rows whose filter column equals this value are removed")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func runPipeline(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		printUsage(cmd.OutOrStdout())
		return nil
	}
	verbose := getVerboseFlag(cmd)

	config, err := buildRunConfig(cmd, args, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)
	fsProvider := filesystem.NewOSFileSystem()

	pipeline := services.NewPipelineService(
		func(cfg msgetl.RunConfig) msgetl.Loader {
			return loader.NewLoader(fsProvider, cfg.KeyColumn, cfg.CSVDelimiter)
		},
		func(cfg msgetl.RunConfig, logger msgetl.Logger) msgetl.Cleaner {
			return cleaner.New(cfg.Clean, cfg.KeyColumn, logger)
		},
		store.Open,
		logger,
	)

	// Ctrl+C and SIGTERM cancel the run before anything is committed
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return pipeline.Run(ctx, config)
}

// commandContext returns the command's context, or a background context when
// the command is invoked directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
