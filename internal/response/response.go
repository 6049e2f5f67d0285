// Package response defines the uniform envelope every service operation
// returns. The HTTP layer translates an envelope into a wire response; nothing
// here knows about status lines.
package response

import "math"

// Code is the machine-readable failure kind carried by a failed envelope.
type Code string

const (
	CodeBadRequest Code = "BAD_REQUEST"
	CodeNotFound   Code = "NOT_FOUND"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// Error describes why an operation failed.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Response holds either a payload or an error, never both.
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Err     *Error `json:"error,omitempty"`
}

// Succeeded reports whether the envelope carries a payload.
func (r Response[T]) Succeeded() bool {
	return r.Err == nil
}

// OK wraps a successful payload.
func OK[T any](data T) Response[T] {
	return Response[T]{Data: data}
}

// OKWithMessage wraps a successful payload along with a confirmation message.
func OKWithMessage[T any](data T, msg string) Response[T] {
	return Response[T]{Data: data, Message: msg}
}

// Fail builds a failed envelope. The payload is left at its zero value.
func Fail[T any](code Code, msg string) Response[T] {
	return Response[T]{Err: &Error{Code: code, Message: msg}}
}

func BadRequest[T any](msg string) Response[T] {
	return Fail[T](CodeBadRequest, msg)
}

func NotFound[T any](msg string) Response[T] {
	return Fail[T](CodeNotFound, msg)
}

// Internal carries err's message for diagnostics.
func Internal[T any](err error) Response[T] {
	return Fail[T](CodeInternal, err.Error())
}

// Paged is a list envelope with the page window it was cut from.
// TotalRecords counts every item matching the filter, not just this page.
type Paged[T any] struct {
	Data         []T    `json:"data"`
	TotalRecords int    `json:"total_records"`
	PageNumber   int    `json:"page_number"`
	PageSize     int    `json:"page_size"`
	TotalPages   int    `json:"total_pages"`
	Err          *Error `json:"error,omitempty"`
}

func (p Paged[T]) Succeeded() bool {
	return p.Err == nil
}

// OKPage wraps one page of items.
func OKPage[T any](items []T, total, pageNumber, pageSize int) Paged[T] {
	if items == nil {
		items = make([]T, 0)
	}
	pages := 0
	if pageSize > 0 {
		pages = int(math.Ceil(float64(total) / float64(pageSize)))
	}
	return Paged[T]{
		Data:         items,
		TotalRecords: total,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalPages:   pages,
	}
}

// FailPage builds a failed list envelope.
func FailPage[T any](code Code, msg string) Paged[T] {
	return Paged[T]{Err: &Error{Code: code, Message: msg}}
}
