// Package preflight provides advisory readiness checks for the paths a
// discovery run depends on.
//
// The CLI "storyfinder check" command runs RunAll after a discovery and
// renders the results as a table. Checks never change state and never fail
// the process; a failed check only explains why a listing came back empty
// or short.
package preflight
