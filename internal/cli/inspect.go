package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/msgetl/internal/store"
	"github.com/vvka-141/msgetl/internal/tui"
	"github.com/vvka-141/msgetl/pkg/msgetl"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <database>",
	Short: "Show the columns, types and row count of a stored table",
	Long: `Reads a table written by msgetl and prints its columns with their
types, followed by the number of rows.`,
	Example: `  msgetl inspect DisasterResponse.db
  msgetl inspect postgres://etl@localhost/etl --table messages`,
	Args: RequireDatabase,
	RunE: runInspect,
}

var inspectFlags struct {
	table string
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectFlags.table, "table", msgetl.DefaultTableName, "Table to inspect")
}

func runInspect(cmd *cobra.Command, args []string) error {
	destination := args[0]
	_ = godotenv.Load()

	// Opening a missing SQLite file would create it
	if !store.IsPostgresURL(destination) {
		if _, err := os.Stat(destination); err != nil {
			return fmt.Errorf("cannot inspect %s: %w: %w", destination, msgetl.ErrStoreUnavailable, err)
		}
	}

	ctx := commandContext(cmd)
	s, err := store.Open(ctx, destination)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.ReadTable(ctx, inspectFlags.table)
	if err != nil {
		return fmt.Errorf("cannot inspect %s: %w", destination, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Table %s in %s\n", inspectFlags.table, destination)
	fmt.Fprintln(out, renderColumns(data, tui.IsStyled(out)))
	fmt.Fprintf(out, "%d rows\n", data.NumRows())
	return nil
}

func renderColumns(data *msgetl.Table, styled bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COLUMN", "TYPE")
	for _, c := range data.Columns {
		t.Row(c.Name, c.Kind.String())
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell
	if styled {
		header = tui.StageStyle.Padding(0, 1)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return header
		}
		return cell
	})
	return t.String()
}
