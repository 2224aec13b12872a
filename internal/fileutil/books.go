package fileutil

import (
	stdErrors "errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/errors"
)

// ParseCandidate decodes a single YAML or JSON object into a candidate.
// Empty input yields a nil candidate, which the catalog rejects as invalid.
func ParseCandidate(data []byte) (catalog.Candidate, error) {
	var candidate catalog.Candidate
	if err := yaml.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse book data: %w", err)
	}
	return candidate, nil
}

// ReadCandidateFile reads a candidate record from a YAML or JSON file.
func ReadCandidateFile(path string) (catalog.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book file: %w", err)
	}
	return ParseCandidate(data)
}

// ReadSeedFile reads a list of records from a YAML or JSON file. Every entry
// has to pass the same validation the catalog applies to new records.
func ReadSeedFile(path string) ([]catalog.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var candidates []catalog.Candidate
	if err := yaml.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	books := make([]catalog.Book, 0, len(candidates))
	for i, candidate := range candidates {
		book, err := catalog.Validate(candidate)
		if err != nil {
			var validationErr *errors.ValidationError
			if stdErrors.As(err, &validationErr) {
				return nil, fmt.Errorf("seed entry %d in %s (%s): %w", i, path, validationErr.Reason, err)
			}
			return nil, fmt.Errorf("seed entry %d in %s: %w", i, path, err)
		}
		books = append(books, book)
	}

	return books, nil
}
