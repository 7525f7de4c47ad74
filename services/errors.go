package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error categories. Controllers map them to HTTP status codes with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConstraint = errors.New("constraint violation")
)

// Error is a categorised service error whose message is safe to return to clients
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func notFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func invalid(format string, args ...interface{}) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func missingParent(entity string, id uint) error {
	return &Error{Kind: ErrConstraint, Message: fmt.Sprintf("%s con id %d no existe", entity, id)}
}

func blank(field string) error {
	return invalid("el campo %s no puede estar vacío", field)
}

// translate classifies a database error. Record-not-found maps to notFoundMsg;
// foreign key and unique violations become ErrConstraint.
func translate(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: ErrNotFound, Message: notFoundMsg, Cause: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: ErrConstraint, Message: "referencia a un registro inexistente", Cause: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: ErrConstraint, Message: "registro duplicado", Cause: err}
	default:
		return err
	}
}
