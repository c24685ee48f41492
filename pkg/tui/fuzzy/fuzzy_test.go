// ABOUTME: Tests for the fuzzy matching wrapper
// ABOUTME: Validates ranking, index mapping, and empty pattern behavior

package fuzzy

import "testing"

func TestFindRanksBestFirst(t *testing.T) {
	t.Parallel()

	items := []string{"Google Chrome", "CPUID CPU-Z", "Mozilla Firefox"}
	matches := Find("chrome", items)

	if len(matches) == 0 {
		t.Fatal("Find returned no matches; want at least one")
	}
	if matches[0].Index != 0 {
		t.Errorf("best match index = %d; want 0", matches[0].Index)
	}
	if matches[0].Str != "Google Chrome" {
		t.Errorf("best match = %q; want %q", matches[0].Str, "Google Chrome")
	}
}

func TestFindNoMatch(t *testing.T) {
	t.Parallel()

	matches := Find("zzzz", []string{"Google Chrome"})
	if len(matches) != 0 {
		t.Errorf("Find returned %d matches; want 0", len(matches))
	}
}
