package directory

import "sort"

// FindDuplicateShortcodes computes the multiset of shortcodes in a
// normalized emoji list and returns every value that appears more than once,
// sorted lexicographically. An empty result means the list can satisfy the
// (host, shortcode) uniqueness invariant.
func FindDuplicateShortcodes(emojis []RemoteEmoji) []string {
	counts := make(map[string]int, len(emojis))
	for _, e := range emojis {
		counts[e.Shortcode]++
	}

	var dups []string
	for code, n := range counts {
		if n > 1 {
			dups = append(dups, code)
		}
	}
	sort.Strings(dups)
	return dups
}
