// Package validate runs struct-tag validation and turns the first failure
// into a client-facing bad request error.
package validate

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/vishaldubey2210/portfolio/pkg"
)

// Messages maps a failure to the message shown to the client. Keys are
// looked up as "Field.tag", then "tag", then "" as the catch-all.
type Messages map[string]string

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct validates v and returns a pkg.BadRequest error, or nil. A missing
// field is reported ahead of any other failure, whatever the field order.
func Struct(v any, msgs Messages) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return pkg.BadRequest(msgs.lookup("", ""))
	}

	fe := fieldErrs[0]
	for _, candidate := range fieldErrs {
		if candidate.Tag() == "required" {
			fe = candidate
			break
		}
	}
	return pkg.BadRequest(msgs.lookup(fe.Field(), fe.Tag()))
}

func (m Messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[tag]; ok {
		return msg
	}
	if msg, ok := m[""]; ok {
		return msg
	}
	return "Invalid request"
}
