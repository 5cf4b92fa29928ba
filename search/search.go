package search

import (
	"strings"
)

// Lines splits contents into lines terminated by "\n" or "\r\n". A final line
// terminator does not produce an extra empty line, and a "\r" that is not
// followed by "\n" stays part of its line.
func Lines(contents string) []string {
	if contents == "" {
		return []string{}
	}

	lines := strings.Split(contents, "\n")
	// The last segment is the only one without a "\n" after it
	terminated := len(lines) - 1
	if lines[terminated] == "" {
		lines = lines[:terminated]
	}
	for i := 0; i < terminated && i < len(lines); i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}

// Search returns every line of contents that contains query exactly
func Search(query, contents string) []string {
	results := make([]string, 0)

	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}

	return results
}

// SearchCaseInsensitive returns every line of contents that contains query
// once both are lowercased. The returned lines keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	results := make([]string, 0)

	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}

	return results
}

// For returns the search function for the given mode
func For(caseSensitive bool) Func {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}

// Matches is like Search or SearchCaseInsensitive but also reports line numbers
func Matches(query, contents string, caseSensitive bool) []Match {
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	matches := make([]Match, 0)

	for i, line := range Lines(contents) {
		candidate := line
		if !caseSensitive {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			matches = append(matches, Match{Line: i + 1, Text: line})
		}
	}

	return matches
}
