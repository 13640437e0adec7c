package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

const (
	messagesCSV = "id,message,original,genre\n" +
		"2,Weather update - a cold front from Cuba,Un front froid,direct\n" +
		"7,Is the Hurricane over or is it not over,Cyclone nan fini osinon li pa fini,direct\n" +
		"8,Looking for someone but no name,Patnm,direct\n" +
		"8,Looking for someone but no name,Patnm,direct\n"
	categoriesCSV = "id,categories\n" +
		"2,related-1;request-0;offer-0;child_alone-0\n" +
		"7,related-2;request-0;offer-0;child_alone-0\n" +
		"8,related-1;request-1;offer-0;child_alone-0\n"
)

// resetRootFlags restores every flag to its unset state between tests.
func resetRootFlags(t *testing.T) {
	t.Helper()
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
	require.NoError(t, rootCmd.Flags().Lookup("drop-column").Value.(pflag.SliceValue).Replace(nil))

	rootFlags = rootFlagValues{}
	inspectFlags.table = msgetl.DefaultTableName
	for _, fs := range []*pflag.FlagSet{rootCmd.Flags(), rootCmd.PersistentFlags(), inspectCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetRootFlags(t)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// writeInputs writes both CSV fixtures into a fresh directory.
func writeInputs(t *testing.T, messages, categories string) (dir, messagesPath, categoriesPath string) {
	t.Helper()
	dir = t.TempDir()
	messagesPath = filepath.Join(dir, "disaster_messages.csv")
	categoriesPath = filepath.Join(dir, "disaster_categories.csv")
	require.NoError(t, os.WriteFile(messagesPath, []byte(messages), 0644))
	require.NoError(t, os.WriteFile(categoriesPath, []byte(categories), 0644))
	return dir, messagesPath, categoriesPath
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
