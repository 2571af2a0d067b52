package httperror

import "errors"

type Error struct {
	Message string `json:"error" example:"You must specify a release ID"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return New(errors.New(s))
}
