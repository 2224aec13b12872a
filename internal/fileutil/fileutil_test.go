package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/testutil"
)

func TestFileExists(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("exists.txt", "x")
	env.MkdirAll("dir")

	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "existing file",
			path:     env.Path("exists.txt"),
			expected: true,
		},
		{
			name:     "non-existing file",
			path:     env.Path("missing.txt"),
			expected: false,
		},
		{
			name:     "directory",
			path:     env.Path("dir"),
			expected: false, // FileExists returns false for directories
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FileExists(tc.path))
		})
	}
}

func TestWriteFileWithOverwrite(t *testing.T) {
	env := testutil.NewTestEnv(t)

	testCases := []struct {
		name           string
		file           string
		overwrite      bool
		existingData   string
		expectedResult bool
		expectedData   string
	}{
		{
			name:           "new file",
			file:           "new-file.txt",
			expectedResult: true,
			expectedData:   "new content",
		},
		{
			name:           "existing file with overwrite",
			file:           "existing-overwrite.txt",
			overwrite:      true,
			existingData:   "old content",
			expectedResult: true,
			expectedData:   "new content",
		},
		{
			name:           "existing file without overwrite",
			file:           "existing-no-overwrite.txt",
			existingData:   "old content",
			expectedResult: false,
			expectedData:   "old content",
		},
		{
			name:           "nested directory",
			file:           filepath.Join("a", "b", "c.txt"),
			expectedResult: true,
			expectedData:   "new content",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.existingData != "" {
				env.WriteFileString(tc.file, tc.existingData)
			}

			result, err := WriteFileWithOverwrite(env.Path(tc.file), []byte("new content"), 0644, tc.overwrite)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedResult, result)
			assert.Equal(t, tc.expectedData, env.ReadFileString(tc.file))
		})
	}
}

func TestWriteJSONFile_Listing(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("json", "books.json")

	written, err := WriteJSONFile(catalog.New().List(), path, true)
	require.NoError(t, err)
	assert.True(t, written)

	var result struct {
		Status int            `json:"status"`
		Data   []catalog.Book `json:"data"`
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 200, result.Status)
	assert.Equal(t, catalog.DefaultSeed(), result.Data)
}

func TestWriteJSONFile_OverwriteFalse(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("books.json", `{"old":true}`)

	written, err := WriteJSONFile(catalog.New().List(), env.Path("books.json"), false)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, `{"old":true}`, env.ReadFileString("books.json"))
}

func TestWriteJSONFile_StatErrorReported(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("blocker", "not a directory")
	path := env.Path("blocker", "books.json")

	written, err := WriteJSONFile(catalog.New().List(), path, false)
	require.Error(t, err)
	assert.False(t, written)
	assert.Contains(t, err.Error(), "failed to check")

	_, err = WriteFileWithOverwrite(path, []byte("{}"), 0o644, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check")

	assert.False(t, FileExists(path))
}

func TestParseCandidate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  catalog.Candidate
	}{
		{
			name:  "json",
			input: `{"id":"4","title":"QA advance","author":"Ivan Orwell","year":2024,"genre":"Action"}`,
			want: catalog.Candidate{
				"id": "4", "title": "QA advance", "author": "Ivan Orwell", "year": 2024, "genre": "Action",
			},
		},
		{
			name:  "yaml",
			input: "id: \"4\"\ntitle: QA advance\nauthor: Ivan Orwell\n",
			want:  catalog.Candidate{"id": "4", "title": "QA advance", "author": "Ivan Orwell"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCandidate([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCandidate_OutOfRangeYearRejected(t *testing.T) {
	for _, year := range []string{"18446744073709551615", "1e+300", "-1e+300"} {
		t.Run(year, func(t *testing.T) {
			candidate, err := ParseCandidate([]byte(`{"id":"9","title":"t","author":"a","year":` + year + `,"genre":"g"}`))
			require.NoError(t, err)

			c := catalog.New()
			resp := c.Add(candidate)

			assert.Equal(t, catalog.StatusBadRequest, resp.StatusCode())
			assert.Equal(t, 3, c.Len())
			_, found := c.Get("9")
			assert.False(t, found)
		})
	}
}

func TestParseCandidate_Malformed(t *testing.T) {
	_, err := ParseCandidate([]byte(`{"id": "4"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse book data")
}

func TestReadCandidateFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("book.yaml", "id: \"9\"\ntitle: t\nauthor: a\nyear: 2001\ngenre: g\n")

	candidate, err := ReadCandidateFile(env.Path("book.yaml"))
	require.NoError(t, err)

	book, err := catalog.Validate(candidate)
	require.NoError(t, err)
	assert.Equal(t, catalog.Book{ID: "9", Title: "t", Author: "a", Year: 2001, Genre: "g"}, book)

	_, err = ReadCandidateFile(env.Path("missing.yaml"))
	require.Error(t, err)
}

func TestReadSeedFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("seed.json", `[
  {"id": "a", "title": "First", "author": "One", "year": 1990, "genre": "Drama"},
  {"id": "b", "title": "Second", "author": "Two", "year": 1991, "genre": "Comedy"}
]`)

	books, err := ReadSeedFile(env.Path("seed.json"))
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "a", books[0].ID)
	assert.Equal(t, 1991, books[1].Year)
}

func TestReadSeedFile_InvalidEntry(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("seed.yaml", `
- id: "a"
  title: First
  author: One
  year: 1990
  genre: Drama
- id: "b"
  title: Second
`)

	_, err := ReadSeedFile(env.Path("seed.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed entry 1")
	assert.Contains(t, err.Error(), "missing key author")
}

func TestReadSeedFile_NotAList(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("seed.yaml", "id: a\n")

	_, err := ReadSeedFile(env.Path("seed.yaml"))
	require.Error(t, err)
}
