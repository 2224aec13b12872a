package datastore

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/bookshelf/internal/catalog"
)

// BooksTable is the table a catalog snapshot is exported to.
const BooksTable = "books"

const booksSchema = `CREATE TABLE IF NOT EXISTS books (
	position INTEGER PRIMARY KEY,
	id TEXT,
	title TEXT,
	author TEXT,
	year INTEGER,
	genre TEXT
)`

// ExportBooks replaces the books table with the given records. position
// keeps the catalog order since ids need not be unique.
func ExportBooks(store Store, books []catalog.Book) error {
	if err := store.DropTable(BooksTable); err != nil {
		return err
	}
	if err := store.CreateTable(booksSchema); err != nil {
		return err
	}

	records := make([]map[string]any, len(books))
	for i, book := range books {
		records[i] = map[string]any{
			"position": i,
			"id":       book.ID,
			"title":    book.Title,
			"author":   book.Author,
			"year":     book.Year,
			"genre":    book.Genre,
		}
	}

	if err := store.BatchInsert(BooksTable, records); err != nil {
		return fmt.Errorf("failed to export books: %w", err)
	}

	slog.Info("Exported books to SQLite", "table", BooksTable, "count", len(books))
	return nil
}

// ExportToFile connects to the SQLite database at dbPath and exports books.
func ExportToFile(dbPath string, books []catalog.Book) error {
	store := NewSQLiteStore(dbPath)
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return ExportBooks(store, books)
}
