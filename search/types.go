package search

// Func searches contents for query and returns the matching lines in file order
type Func func(query, contents string) []string

// Match is a matching line together with its position in the file
type Match struct {
	Line int    // 1-based
	Text string // matching line without its terminator
}
