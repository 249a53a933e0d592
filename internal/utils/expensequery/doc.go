// Package expensequery turns raw list parameters into a deterministic expense
// query: a filter predicate, a sort order and a page window.
//
// Everything here is a pure function of its inputs (including the current
// time, which callers pass in). Unknown sort and filter values degrade to
// their defaults; only a malformed custom date range is an error.
package expensequery
