package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/iftm/clients/internal/clients/domain"
)

// FieldError describes one rejected field by its JSON name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed validation. It matches
// ErrInvalidClient under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid client: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidClient }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type clientInput struct {
	Name      string    `json:"name" validate:"required,notblank,max=120"`
	CPF       string    `json:"cpf" validate:"required,notblank,max=14"`
	Income    float64   `json:"income" validate:"gte=0"`
	BirthDate time.Time `json:"birthDate" validate:"required"`
	Children  int       `json:"children" validate:"gte=0"`
}

type patchInput struct {
	Name     *string  `json:"name" validate:"omitnil,notblank,max=120"`
	CPF      *string  `json:"cpf" validate:"omitnil,notblank,max=14"`
	Income   *float64 `json:"income" validate:"omitnil,gte=0"`
	Children *int     `json:"children" validate:"omitnil,gte=0"`
}

func validateClient(c domain.Client) error {
	return validationError(validate.Struct(clientInput{
		Name:      c.Name,
		CPF:       c.CPF,
		Income:    c.Income,
		BirthDate: c.BirthDate,
		Children:  c.Children,
	}))
}

func validatePatch(p domain.ClientPatch) error {
	if err := validationError(validate.Struct(patchInput{
		Name:     p.Name,
		CPF:      p.CPF,
		Income:   p.Income,
		Children: p.Children,
	})); err != nil {
		return err
	}
	if p.BirthDate != nil && p.BirthDate.IsZero() {
		return &ValidationError{Fields: []FieldError{{Field: "birthDate", Message: "must not be empty"}}}
	}
	return nil
}

// validationError converts validator output into a *ValidationError. Errors
// that are not about field values are returned unchanged.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "notblank":
		return "must not be blank"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
