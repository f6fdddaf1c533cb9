package domain

import (
	"slices"
	"strings"
)

// NormalizeTitle prepares a dish title for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved; titles are displayed as typed.
func NormalizeTitle(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeLabel prepares an allergen or tag for set membership:
// trimmed, lowercased, inner whitespace compressed.
func NormalizeLabel(text string) string {
	return strings.ToLower(NormalizeTitle(text))
}

// NormalizeLabelSet normalizes every label, drops empties and duplicates,
// and returns the result sorted. A nil or empty input yields an empty,
// non-nil slice so it stores as '{}' rather than NULL.
func NormalizeLabelSet(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if n := NormalizeLabel(l); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
