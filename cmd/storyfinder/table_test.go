package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	if got := renderTable(nil, [][]string{{"x"}}); got != "" {
		t.Fatalf("expected empty output without headers, got %q", got)
	}

	out := renderTable([]string{"ID", "Name"}, [][]string{{"7", "alpha", "extra"}, {"12"}}, 1)
	requireContains(t, out, "Name")
	requireContains(t, out, "alpha")
	if strings.Contains(out, "extra") {
		t.Fatalf("expected cells beyond the header width to be dropped, got:\n%s", out)
	}
	if !strings.Contains(out, "│  7 │") {
		t.Fatalf("expected the first column to be right aligned, got:\n%s", out)
	}
}
