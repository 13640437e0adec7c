package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const usageMessage = `Please provide the filepaths of the messages and categories datasets as the first and second argument respectively, as well as the filepath of the database to save the cleaned data to as the third argument. 

Example: msgetl disaster_messages.csv disaster_categories.csv DisasterResponse.db`

// printUsage writes the positional-argument usage to w.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageMessage)
}

// RequireDatabase validates that exactly one database argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDatabase(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <database>

Usage: %s

Example:
  %s DisasterResponse.db --table df`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
