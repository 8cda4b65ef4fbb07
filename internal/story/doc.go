// Package story enumerates narrative assets under a resolved story data
// directory.
//
// Two strategies run on every call. The database strategy asks an
// mdb.Querier for main story rows when master.mdb is present and maps each
// row to a native:// reference. The file strategy walks the directory for
// storytimeline_<id>.json files at least three levels deep and takes the
// first two path segments as category and group. Results are concatenated,
// database first, with no cross-source reconciliation.
//
// A failing database never aborts enumeration; it is logged once and
// contributes nothing.
package story
