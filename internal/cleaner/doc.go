// Package cleaner turns the joined message/category table into the
// analysis-ready table.
//
// The packed categories column ("related-1;request-0;...") is expanded into
// one integer column per category. Category names come from the first row,
// with the value suffix stripped. Each expanded value is parsed from its own
// row, so values stay attached to the row key they were read with.
//
// After expansion the configured degenerate columns are dropped, rows with
// the invalid filter value are removed and exact duplicates are collapsed.
package cleaner
