// Package resolve turns loosely formatted date strings scraped from pages,
// feeds, and metadata into canonical timestamps.
//
// Resolution runs a fixed chain of stages and stops at the first one that
// succeeds:
//
//  1. weekday tokens are stripped ("Tues, 04 June 2013" -> "04 June 2013")
//  2. a free-form parser tries the string without a format hint
//  3. the format catalog is tried in order, standard entries before custom ones
//  4. a "yy-mm-dd" heuristic reinterprets two-digit-year dates
//  5. a permissive multilingual parser makes a last attempt
//
// A Resolver is immutable once built and safe for concurrent use.
package resolve
