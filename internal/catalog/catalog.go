package catalog

import (
	stdErrors "errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/lepinkainen/bookshelf/internal/errors"
)

// Catalog holds book records in insertion order.
//
// Each operation takes the catalog lock for its whole duration, so no caller
// ever observes a partially applied write.
type Catalog struct {
	mu    sync.RWMutex
	books []Book
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithSeed replaces the default starting records. The slice is copied.
func WithSeed(seed []Book) Option {
	return func(c *Catalog) {
		c.books = slices.Clone(seed)
	}
}

// New constructs a Catalog seeded with DefaultSeed unless WithSeed is given.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		books: DefaultSeed(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// List returns a copy of all records in insertion order.
func (c *Catalog) List() Response {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]Book, len(c.books))
	copy(books, c.books)
	return Listing{Books: books}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.books)
}

// Get returns the first record with the given id.
func (c *Catalog) Get(id string) (Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return Book{}, false
	}
	return c.books[idx], true
}

// Add validates candidate and appends it. Records sharing an id with an
// existing one are accepted.
func (c *Catalog) Add(candidate Candidate) Response {
	book, err := Validate(candidate)
	if err != nil {
		return invalid("add", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = append(c.books, book)
	slog.Debug("Book added", "id", book.ID, "count", len(c.books))
	return Ack{Status: StatusCreated, Message: MsgAdded}
}

// Delete removes the first record with the given id.
func (c *Catalog) Delete(id string) Response {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return notFound("delete", id)
	}

	c.books = slices.Delete(c.books, idx, idx+1)
	slog.Debug("Book deleted", "id", id, "count", len(c.books))
	return Ack{Status: StatusOK, Message: MsgDeleted}
}

// Update replaces the first record with the given id by candidate, keeping
// its position. The candidate is validated before the id is looked up, and
// its own id replaces the old one.
func (c *Catalog) Update(id string, candidate Candidate) Response {
	book, err := Validate(candidate)
	if err != nil {
		return invalid("update", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return notFound("update", id)
	}

	c.books[idx] = book
	slog.Debug("Book updated", "id", id, "new_id", book.ID)
	return Ack{Status: StatusOK, Message: MsgUpdated}
}

// indexOf must be called with c.mu held.
func (c *Catalog) indexOf(id string) int {
	return slices.IndexFunc(c.books, func(b Book) bool {
		return b.ID == id
	})
}

func invalid(op string, err error) Failure {
	var validationErr *errors.ValidationError
	if !stdErrors.As(err, &validationErr) {
		validationErr = errors.NewValidationError(err.Error())
	}
	slog.Debug("Rejected book data", "op", op, "reason", validationErr.Reason)
	return Failure{Status: StatusBadRequest, Err: validationErr}
}

func notFound(op string, id string) Failure {
	slog.Debug("Book not found", "op", op, "id", id)
	return Failure{Status: StatusNotFound, Err: errors.NewNotFoundError(id)}
}
