package models

import "fmt"

// ErrorValidation is a request that failed a field rule.
type ErrorValidation struct {
	Field   string
	Message string
}

func (e ErrorValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrorNotFound is a referenced entity that does not exist.
type ErrorNotFound struct {
	Entity string
	ID     uint
}

func (e ErrorNotFound) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ErrorConflict is a write that would duplicate existing state.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Err error
}

func (e ErrorInternalServer) Error() string {
	return e.Err.Error()
}

func (e ErrorInternalServer) Unwrap() error {
	return e.Err
}
