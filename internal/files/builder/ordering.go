package builder

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/vvka-141/fstree/internal/files/filesystem"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// Ordering decides the order in which sibling entries are visited and attached.
type Ordering string

const (
	// OrderProvider keeps the order returned by the filesystem provider.
	OrderProvider Ordering = "none"
	// OrderLexical sorts by base name, byte-wise.
	OrderLexical Ordering = "lexical"
	// OrderNatural sorts case-insensitively, comparing digit runs numerically
	// ("file2" before "file10").
	OrderNatural Ordering = "natural"
	// OrderDirsFirst puts directories before files, each group lexical.
	OrderDirsFirst Ordering = "dirs-first"
)

// Orderings lists every supported ordering, for flag help and completion.
var Orderings = []Ordering{OrderLexical, OrderNatural, OrderDirsFirst, OrderProvider}

// ParseOrdering converts a name into an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	for _, o := range Orderings {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown ordering %q (valid: lexical, natural, dirs-first, none): %w", s, fstree.ErrInvalidConfig)
}

// sortEntries orders paths in place according to o.
func sortEntries(o Ordering, fs filesystem.FileSystemProvider, paths []string) {
	switch o {
	case OrderLexical:
		sort.SliceStable(paths, func(i, j int) bool {
			return fs.BaseName(paths[i]) < fs.BaseName(paths[j])
		})
	case OrderNatural:
		sort.SliceStable(paths, func(i, j int) bool {
			return naturalLess(fs.BaseName(paths[i]), fs.BaseName(paths[j]))
		})
	case OrderDirsFirst:
		isDir := make(map[string]bool, len(paths))
		for _, p := range paths {
			// A failing Stat sorts as a file; the walk reports the error itself.
			if info, err := fs.Stat(p); err == nil {
				isDir[p] = info.IsDir()
			}
		}
		sort.SliceStable(paths, func(i, j int) bool {
			if isDir[paths[i]] != isDir[paths[j]] {
				return isDir[paths[i]]
			}
			return fs.BaseName(paths[i]) < fs.BaseName(paths[j])
		})
	}
}

// foldName case-folds an NFC-normalized name, so "Ä" written precomposed or
// decomposed compares equal to "ä".
func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// naturalLess compares names case-insensitively, treating runs of digits as
// numbers. Ties fall back to a byte-wise comparison so the order is total.
func naturalLess(a, b string) bool {
	la, lb := foldName(a), foldName(b)
	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		ca, cb := la[i], lb[j]
		if isDigit(ca) && isDigit(cb) {
			si := i
			for i < len(la) && isDigit(la[i]) {
				i++
			}
			sj := j
			for j < len(lb) && isDigit(lb[j]) {
				j++
			}
			na := strings.TrimLeft(la[si:i], "0")
			nb := strings.TrimLeft(lb[sj:j], "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	if len(la)-i != len(lb)-j {
		return len(la)-i < len(lb)-j
	}
	return a < b
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
