package catalog

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Status codes used in responses. No others are produced.
const (
	StatusOK         = 200
	StatusCreated    = 201
	StatusBadRequest = 400
	StatusNotFound   = 404
)

// Success messages.
const (
	MsgAdded   = "Book added successfully."
	MsgDeleted = "Book deleted successfully."
	MsgUpdated = "Book updated successfully."
)

// Response is the result of a catalog operation. It is implemented only by
// Listing, Ack and Failure.
type Response interface {
	StatusCode() int
	isResponse()
}

// Listing is the successful result of List.
type Listing struct {
	Books []Book
}

// Ack is the successful result of a write.
type Ack struct {
	Status  int
	Message string
}

// Failure is the result of a rejected operation. Err is either a
// *errors.ValidationError or a *errors.NotFoundError.
type Failure struct {
	Status int
	Err    error
}

func (Listing) StatusCode() int   { return StatusOK }
func (a Ack) StatusCode() int     { return a.Status }
func (f Failure) StatusCode() int { return f.Status }

func (Listing) isResponse() {}
func (Ack) isResponse()     {}
func (Failure) isResponse() {}

// ErrorMessage returns the error text reported to the caller.
func (f Failure) ErrorMessage() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// MarshalJSON encodes the listing as {"status":200,"data":[...]}.
func (l Listing) MarshalJSON() ([]byte, error) {
	books := l.Books
	if books == nil {
		books = []Book{}
	}
	return json.Marshal(struct {
		Status int    `json:"status"`
		Data   []Book `json:"data"`
	}{StatusOK, books})
}

// MarshalJSON encodes the ack as {"status":...,"message":...}.
func (a Ack) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}{a.Status, a.Message})
}

// MarshalJSON encodes the failure as {"status":...,"error":...}.
func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status int    `json:"status"`
		Error  string `json:"error"`
	}{f.Status, f.ErrorMessage()})
}
