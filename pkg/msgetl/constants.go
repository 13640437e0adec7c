package msgetl

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of flags)
//   - 3+: Application-specific errors
//
// A wrong argument count is not an error: usage is printed and the
// process exits with ExitSuccess.
const (
	ExitSuccess      = 0  // Pipeline completed or usage printed
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // Flag usage error (unknown or invalid flag)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or flags
	ExitInputError   = 11 // Input file missing or unreadable
	ExitDataError    = 12 // Input data cannot be joined or cleaned
	ExitStoreError   = 13 // Output store unavailable or write failed
)

const (
	// DefaultTableName is the table the cleaned data is written to.
	DefaultTableName = "df"

	// DefaultKeyColumn is the column both input files are joined on.
	DefaultKeyColumn = "id"

	// DefaultCSVDelimiter separates fields in both input files.
	DefaultCSVDelimiter = ','

	// DefaultCategoriesColumn holds the packed name-value pairs.
	DefaultCategoriesColumn = "categories"

	// DefaultCategoryDelimiter separates name-value pairs in the packed column.
	DefaultCategoryDelimiter = ";"

	// DefaultSuffixLength is the number of trailing characters ("-" plus one
	// digit) stripped from a packed entry to obtain the category name.
	DefaultSuffixLength = 2

	// DefaultFilterColumn is the category whose invalid value removes a row.
	DefaultFilterColumn = "related"

	// DefaultInvalidValue marks mislabeled rows in DefaultFilterColumn.
	DefaultInvalidValue int64 = 2

	// JoinSuffixLeft and JoinSuffixRight disambiguate non-key columns
	// present in both inputs.
	JoinSuffixLeft  = "_x"
	JoinSuffixRight = "_y"
)

// DefaultDropColumns lists categories that carry a single constant value
// in the reference dataset.
func DefaultDropColumns() []string {
	return []string{"child_alone"}
}
