// ABOUTME: Tests for separator detection and header column tokenization
// ABOUTME: Covers spinner leftovers, missing separators, display-width offsets

package winget

import "testing"

func TestFindSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{
			name:  "basic table",
			lines: []string{"Name  Id", "--------------", "row"},
			want:  1,
		},
		{
			name:  "spinner leftovers skipped",
			lines: []string{"-", "\\", "Name  Id", "--------------", "row"},
			want:  3,
		},
		{
			name:  "dashes with spaces",
			lines: []string{"Name  Id", "------  ------", "row"},
			want:  1,
		},
		{
			name:  "too short is not a separator",
			lines: []string{"Name", "----", "row"},
			want:  -1,
		},
		{
			name:  "first line cannot be the separator",
			lines: []string{"---------------", "row"},
			want:  -1,
		},
		{
			name:  "no separator at all",
			lines: []string{"some", "free", "text"},
			want:  -1,
		},
		{
			name:  "non-dash characters disqualify",
			lines: []string{"Name", "----=----=----", "row"},
			want:  -1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := findSeparator(tt.lines)
			if got != tt.want {
				t.Errorf("findSeparator = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestDetectColumns(t *testing.T) {
	t.Parallel()

	cols := DetectColumns("Name           Id             Version")
	want := []Column{
		{Name: "Name", Start: 0},
		{Name: "Id", Start: 15},
		{Name: "Version", Start: 30},
	}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns; want %d", len(cols), len(want))
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("col[%d] = %+v; want %+v", i, cols[i], want[i])
		}
	}
}

func TestDetectColumnsMultiByteHeader(t *testing.T) {
	t.Parallel()

	// "Versión" spans 8 bytes but 7 display columns; the following column's
	// start offset must be measured in display columns.
	cols := DetectColumns("Versión  Quelle")
	if len(cols) != 2 {
		t.Fatalf("got %d columns; want 2", len(cols))
	}
	if cols[0].Name != "Versión" || cols[0].Start != 0 {
		t.Errorf("col[0] = %+v; want {Versión 0}", cols[0])
	}
	if cols[1].Name != "Quelle" || cols[1].Start != 9 {
		t.Errorf("col[1] = %+v; want {Quelle 9}", cols[1])
	}
}

func TestDetectColumnsEmptyAndBlank(t *testing.T) {
	t.Parallel()

	if cols := DetectColumns(""); cols != nil {
		t.Errorf("DetectColumns(\"\") = %v; want nil", cols)
	}
	if cols := DetectColumns("     "); cols != nil {
		t.Errorf("DetectColumns(blank) = %v; want nil", cols)
	}
}
