package search

import (
	"bufio"
	"strings"
)

// Search returns the lines of contents that contain query, in file order.
// With ignoreCase both sides are lowered before the containment test.
func Search(query, contents string, ignoreCase bool) []string {
	var results []string

	if ignoreCase {
		query = strings.ToLower(query)
	}

	scanner := bufio.NewScanner(strings.NewReader(contents))
	// one token may span the whole input
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(contents)+1)

	offset := 0
	for scanner.Scan() {
		n := len(scanner.Bytes())
		line := contents[offset : offset+n]
		offset = nextLine(contents, offset+n)

		candidate := line
		if ignoreCase {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseSensitive is Search with an exact match.
func SearchCaseSensitive(query, contents string) []string {
	return Search(query, contents, false)
}

// SearchCaseInsensitive is Search with lowercase folding on both sides.
func SearchCaseInsensitive(query, contents string) []string {
	return Search(query, contents, true)
}

// nextLine skips the \r\n or \n that ScanLines dropped after a token ending at end.
func nextLine(contents string, end int) int {
	if end < len(contents) && contents[end] == '\r' {
		end++
	}
	if end < len(contents) && contents[end] == '\n' {
		end++
	}
	return end
}
