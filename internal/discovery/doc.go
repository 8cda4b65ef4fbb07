// Package discovery chains the installation locator, layout resolver, and
// story enumerator into one run. Each run gets a fresh correlation id and
// reports not-found stages through Report.Outcome instead of errors.
package discovery
