package builder

import (
	"errors"
	"sort"
	"testing"

	"github.com/vvka-141/fstree/pkg/fstree"
)

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"file2", "file10", true},
		{"file10", "file2", false},
		{"a", "B", true},
		{"B", "a", false},
		{"x01", "x1", true}, // equal numerically, byte-wise tie break
		{"x1", "x01", false},
		{"img12b", "img12a", false},
		{"v1.2", "v1.10", true},
		{"abc", "abcd", true},
		{"", "a", true},
		{"same", "same", false},
		{"\u00c4b", "a\u0308c", true}, // precomposed and decomposed umlaut fold alike
		{"STRASSE2", "straße10", true},
	}

	for _, tt := range tests {
		if got := naturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNaturalLess_TotalOrder(t *testing.T) {
	names := []string{"file10", "File2", "file2", "file1", "a", "A", "file02", "z9", "z10"}
	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })

	for i := 0; i < len(names)-1; i++ {
		if naturalLess(names[i+1], names[i]) {
			t.Errorf("order not consistent at %d: %q sorts after %q", i, names[i+1], names[i])
		}
	}
}

func TestParseOrdering(t *testing.T) {
	for _, o := range Orderings {
		got, err := ParseOrdering(string(o))
		if err != nil {
			t.Errorf("ParseOrdering(%q) error: %v", o, err)
		}
		if got != o {
			t.Errorf("ParseOrdering(%q) = %q", o, got)
		}
	}

	_, err := ParseOrdering("alphabetical")
	if !errors.Is(err, fstree.ErrInvalidConfig) {
		t.Errorf("ParseOrdering(alphabetical) error = %v, want ErrInvalidConfig", err)
	}
}
