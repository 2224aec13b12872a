// Package catalog manages an ordered, in-memory collection of book records.
//
// Every operation returns a Response value instead of an error: callers
// switch on the concrete variant (Listing, Ack or Failure) or read
// StatusCode to decide what happened.
package catalog

// Book is a single catalog record. All five fields are required.
type Book struct {
	ID     string `json:"id" yaml:"id" mapstructure:"id"`
	Title  string `json:"title" yaml:"title" mapstructure:"title"`
	Author string `json:"author" yaml:"author" mapstructure:"author"`
	Year   int    `json:"year" yaml:"year" mapstructure:"year"`
	Genre  string `json:"genre" yaml:"genre" mapstructure:"genre"`
}

// Candidate is an unvalidated record as it arrives from a caller, typically
// a decoded JSON or YAML object.
type Candidate map[string]any

// requiredKeys is the exact key set of a well-formed candidate.
var requiredKeys = []string{"id", "title", "author", "year", "genre"}

// BookToCandidate returns the well-formed candidate describing b.
func BookToCandidate(b Book) Candidate {
	return Candidate{
		"id":     b.ID,
		"title":  b.Title,
		"author": b.Author,
		"year":   b.Year,
		"genre":  b.Genre,
	}
}
