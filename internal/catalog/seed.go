package catalog

// DefaultSeed returns the records a new catalog starts with.
func DefaultSeed() []Book {
	return []Book{
		{
			ID:     "1",
			Title:  "1984",
			Author: "George Orwell",
			Year:   1949,
			Genre:  "Dystopian",
		},
		{
			ID:     "2",
			Title:  "To Kill a Mockingbird",
			Author: "Harper Lee",
			Year:   1960,
			Genre:  "Fiction",
		},
		{
			ID:     "3",
			Title:  "The Great Gatsby",
			Author: "F. Scott Fitzgerald",
			Year:   1925,
			Genre:  "Classic",
		},
	}
}
