package catalog

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/lepinkainen/bookshelf/internal/errors"
)

// Validate checks that c is a well-formed book record and returns it as a
// Book. A candidate is well-formed when it has exactly the keys id, title,
// author, year and genre, none of them nil, with string values for the text
// fields and an integral number for year.
//
// Any failure is reported as *errors.ValidationError.
func Validate(c Candidate) (Book, error) {
	if c == nil {
		return Book{}, errors.NewValidationError("candidate is nil")
	}

	for _, key := range requiredKeys {
		value, ok := c[key]
		if !ok {
			return Book{}, errors.NewValidationError("missing key " + key)
		}
		if value == nil {
			return Book{}, errors.NewValidationError("key " + key + " is nil")
		}
	}

	if extra := unknownKeys(c); len(extra) > 0 {
		return Book{}, errors.NewValidationError("unknown keys " + strings.Join(extra, ", "))
	}

	var book Book
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(integralYearHook),
		ErrorUnused: true,
		ErrorUnset:  true,
		Result:      &book,
	})
	if err != nil {
		return Book{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(c)); err != nil {
		return Book{}, errors.NewValidationError(err.Error())
	}

	return book, nil
}

// unknownKeys returns the sorted keys of c outside the required set.
func unknownKeys(c Candidate) []string {
	var extra []string
	for key := range c {
		if !slices.Contains(requiredKeys, key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

// integralYearHook rejects fractional or out of range numbers headed for an
// int field; mapstructure would otherwise truncate or wrap them silently.
func integralYearHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
			return nil, fmt.Errorf("year %v is not a whole number", f)
		}
		// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
		if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
			return nil, fmt.Errorf("year %v is out of range", f)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := reflect.ValueOf(data).Uint(); u > math.MaxInt {
			return nil, fmt.Errorf("year %d is out of range", u)
		}
	}

	return data, nil
}
