package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/msgetl/internal/config"
	"github.com/vvka-141/msgetl/pkg/msgetl"
)

const defaultConfigHint = config.ConfigFileName + " in the working directory, if present"

// buildRunConfig resolves the run configuration: built-in defaults, then the
// YAML file, then any flag set on the command line.
func buildRunConfig(cmd *cobra.Command, args []string, verbose bool) (msgetl.RunConfig, error) {
	// .env may carry PGPASSWORD and friends for PostgreSQL destinations
	_ = godotenv.Load()

	cfg := msgetl.DefaultRunConfig(args[0], args[1], args[2])
	cfg.Verbose = verbose

	if err := applyConfigFile(&cfg); err != nil {
		return cfg, err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyConfigFile(cfg *msgetl.RunConfig) error {
	path := rootFlags.configPath
	explicit := path != ""
	if !explicit {
		path = config.ConfigFileName
	}

	project, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to load config %s: %w: %w", path, msgetl.ErrInvalidConfig, err)
	}
	return project.Apply(cfg)
}

func applyFlags(cmd *cobra.Command, cfg *msgetl.RunConfig) error {
	flags := cmd.Flags()

	if flags.Changed("table") {
		cfg.TableName = rootFlags.table
	}
	if flags.Changed("key") {
		cfg.KeyColumn = rootFlags.key
	}
	if flags.Changed("csv-delimiter") {
		r, err := config.ParseDelimiter(rootFlags.csvDelimiter)
		if err != nil {
			return fmt.Errorf("--csv-delimiter: %w", err)
		}
		cfg.CSVDelimiter = r
	}
	if flags.Changed("categories-column") {
		cfg.Clean.CategoriesColumn = rootFlags.categoriesColumn
	}
	if flags.Changed("category-delimiter") {
		cfg.Clean.Delimiter = rootFlags.categoryDelimiter
	}
	if flags.Changed("suffix-length") {
		cfg.Clean.SuffixLength = rootFlags.suffixLength
	}
	if flags.Changed("drop-column") {
		cfg.Clean.DropColumns = append([]string(nil), rootFlags.dropColumns...)
	}
	if flags.Changed("filter-column") {
		cfg.Clean.FilterColumn = rootFlags.filterColumn
	}
	if flags.Changed("invalid-value") {
		cfg.Clean.InvalidValue = rootFlags.invalidValue
	}
	return nil
}
