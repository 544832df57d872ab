package menu

import (
	"errors"
	"strings"
	"testing"
)

func TestLayoutEmptyLabels(t *testing.T) {
	_, err := Layout(nil, Options{})
	if !errors.Is(err, ErrEmptyMenu) {
		t.Fatalf("expected ErrEmptyMenu, got %v", err)
	}
}

func TestLayoutRejectsNarrowColumns(t *testing.T) {
	_, err := Layout([]string{"a"}, Options{MaxColumnWidth: 3})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.MaxColumnWidth != 3 {
		t.Errorf("ConfigError should carry the offending width, got %d", cfgErr.MaxColumnWidth)
	}
	if !strings.Contains(err.Error(), "maxColumnWidth=3") {
		t.Errorf("error message should include the offending values, got %q", err.Error())
	}
}

func TestLayoutRejectsNegativeColumns(t *testing.T) {
	_, err := Layout([]string{"a"}, Options{Columns: -1})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Columns != -1 {
		t.Errorf("ConfigError should carry the offending column count, got %d", cfgErr.Columns)
	}
}

func TestLayoutSingleColumn(t *testing.T) {
	g, err := Layout([]string{"dev", "staging", "prod"}, Options{Columns: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Columns != 1 || g.Rows != 3 || g.Total != 3 {
		t.Errorf("expected 1x3 grid of 3, got %dx%d of %d", g.Columns, g.Rows, g.Total)
	}
	// "staging" is the widest label in the column.
	if g.colWidths[0] != 7 {
		t.Errorf("expected column width 7, got %d", g.colWidths[0])
	}
	if cell, ok := g.cell(0, 0); !ok || cell != " dev     " {
		t.Errorf("expected %q, got %q", " dev     ", cell)
	}
}

func TestLayoutShortLastColumn(t *testing.T) {
	g, err := Layout([]string{"a", "b", "c", "d", "e"}, Options{Columns: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Columns != 2 || g.Rows != 3 {
		t.Errorf("expected 2x3 grid, got %dx%d", g.Columns, g.Rows)
	}
	// Column 1 holds d and e only; its row 2 is an empty cell.
	if _, ok := g.cell(1, 1); !ok {
		t.Error("cell (1,1) should be populated")
	}
	if _, ok := g.cell(1, 2); ok {
		t.Error("cell (1,2) should be empty")
	}
}

func TestLayoutAutoColumns(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	// 80 columns at width 20 fit floor(80/22) = 3 columns.
	g, err := Layout(labels, Options{Width: 80})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Columns != 3 || g.Rows != 3 {
		t.Errorf("expected 3x3 grid, got %dx%d", g.Columns, g.Rows)
	}

	// A width too small for even one column still yields one.
	g, err = Layout(labels, Options{Width: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Columns != 1 {
		t.Errorf("expected 1 column minimum, got %d", g.Columns)
	}
}

func TestLayoutClampsColumnsToLabelCount(t *testing.T) {
	g, err := Layout([]string{"x", "y"}, Options{Columns: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Columns != 2 || g.Rows != 1 {
		t.Errorf("expected 2x1 grid, got %dx%d", g.Columns, g.Rows)
	}
}

func TestLayoutDropsEmptyColumns(t *testing.T) {
	// 6 labels over 4 requested columns round up to 2 rows, which only 3
	// columns can fill; the empty fourth column must not survive.
	g, err := Layout([]string{"a", "b", "c", "d", "e", "f"}, Options{Columns: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Columns != 3 || g.Rows != 2 {
		t.Errorf("expected 3x2 grid, got %dx%d", g.Columns, g.Rows)
	}
}

func TestLayoutTruncation(t *testing.T) {
	// 15-character label at width 10: first 6 characters plus the
	// ellipsis, 9 display columns in total.
	g, err := Layout([]string{"abcdefghijklmno"}, Options{MaxColumnWidth: 10, Columns: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cell, ok := g.cell(0, 0)
	if !ok {
		t.Fatal("cell (0,0) should be populated")
	}
	if cell != " abcdef... " {
		t.Errorf("expected %q, got %q", " abcdef... ", cell)
	}
}

func TestLayoutPadsToWidestInColumn(t *testing.T) {
	g, err := Layout([]string{"ab", "abcd"}, Options{Columns: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	short, _ := g.cell(0, 0)
	long, _ := g.cell(0, 1)
	if short != " ab   " {
		t.Errorf("expected short label padded to column width, got %q", short)
	}
	if long != " abcd " {
		t.Errorf("expected %q, got %q", " abcd ", long)
	}
}

func TestLayoutDefaultMaxColumnWidth(t *testing.T) {
	// A 30-character label under the default cap of 20 truncates to 16
	// characters plus the ellipsis.
	label := strings.Repeat("x", 30)
	g, err := Layout([]string{label}, Options{Columns: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cell, _ := g.cell(0, 0)
	want := " " + strings.Repeat("x", 16) + ellipsis + " "
	if cell != want {
		t.Errorf("expected %q, got %q", want, cell)
	}
}
