package cmdutil

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ResponseError is returned by commands whose catalog operation failed, so
// the process exits non-zero after the response has been printed.
type ResponseError struct {
	Status  int
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// WriteResponse prints resp in config.OutputFormat. A Failure is printed
// and then returned as *ResponseError.
func WriteResponse(w io.Writer, resp catalog.Response) error {
	var err error
	if config.OutputFormat == config.FormatText {
		err = writeText(w, resp)
	} else {
		err = writeJSON(w, resp)
	}
	if err != nil {
		return err
	}

	if failure, ok := resp.(catalog.Failure); ok {
		return &ResponseError{Status: failure.StatusCode(), Message: failure.ErrorMessage()}
	}
	return nil
}

func writeJSON(w io.Writer, resp catalog.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeText(w io.Writer, resp catalog.Response) error {
	switch r := resp.(type) {
	case catalog.Listing:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tGENRE")
		for _, b := range r.Books {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", b.ID, b.Title, b.Author, b.Year, b.Genre)
		}
		return tw.Flush()
	case catalog.Ack:
		_, err := fmt.Fprintf(w, "%d %s\n", r.Status, r.Message)
		return err
	case catalog.Failure:
		_, err := fmt.Fprintf(w, "%d %s\n", r.Status, r.ErrorMessage())
		return err
	default:
		return fmt.Errorf("unknown response type %T", resp)
	}
}
