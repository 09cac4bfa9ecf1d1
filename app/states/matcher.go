package states

import (
	"sort"
	"strings"
)

// Extract returns the canonical full names of every US state the text
// mentions, ordered by first occurrence, without duplicates.
//
// A candidate (full name or 2-letter abbreviation) only counts when it appears
// surrounded by spaces, or immediately followed by a comma or period, within
// the text padded with one leading and trailing space. This rejects matches
// inside longer words ("Indianapolis" does not mention Indiana's abbreviation
// "IN") while still catching sentence-final mentions like "... in CA.".
// Matching is case-sensitive: state names are proper nouns and lowercase
// abbreviations are overwhelmingly ordinary words ("in", "me", "or").
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	padded := " " + text + " "

	// Earliest match position per canonical name. An abbreviation hit and a
	// full-name hit for the same state collapse to whichever occurs first.
	positions := make(map[string]int)

	for abbr, name := range abbreviationToName {
		if pos := matchPosition(padded, name); pos >= 0 {
			recordPosition(positions, name, pos)
		}
		if pos := matchPosition(padded, abbr); pos >= 0 {
			recordPosition(positions, name, pos)
		}
	}

	if len(positions) == 0 {
		return nil
	}

	matched := make([]string, 0, len(positions))
	for name := range positions {
		matched = append(matched, name)
	}
	sort.Slice(matched, func(i, j int) bool {
		if positions[matched[i]] != positions[matched[j]] {
			return positions[matched[i]] < positions[matched[j]]
		}
		return matched[i] < matched[j]
	})

	return matched
}

// matchPosition returns the index of the earliest boundary-checked occurrence
// of candidate in the padded text, or -1 when there is none.
func matchPosition(padded, candidate string) int {
	earliest := -1
	for _, suffix := range []string{" ", ",", "."} {
		if idx := strings.Index(padded, " "+candidate+suffix); idx >= 0 {
			if earliest < 0 || idx < earliest {
				earliest = idx
			}
		}
	}
	return earliest
}

func recordPosition(positions map[string]int, name string, pos int) {
	if existing, ok := positions[name]; !ok || pos < existing {
		positions[name] = pos
	}
}
