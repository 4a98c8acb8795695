package submit

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xhd2015/studentlib/models"
)

// TagName is the struct tag holding the form rules, shared with gin's binding
const TagName = "binding"

var validate = NewValidator()

// NewValidator returns a validator reading TagName rules and reporting
// fields by their json names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(TagName)
	RegisterJSONNames(v)
	return v
}

// RegisterJSONNames makes v report fields by their json names
func RegisterJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failing field of one form
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Field returns the message for field, or "" if it passed
func (e *ValidationError) Field(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Translate converts validator errors into a *ValidationError, other
// errors are returned as is
func Translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return &ValidationError{Fields: fields}
}

var oneOfParam = regexp.MustCompile(`'[^']*'|\S+`)

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		vals := oneOfParam.FindAllString(fe.Param(), -1)
		for i, val := range vals {
			vals[i] = strings.Trim(val, "'")
		}
		return "must be one of " + strings.Join(vals, ", ")
	}
	return "failed " + fe.Tag()
}

// Validate checks the binding rules of form
func Validate(form any) error {
	return Translate(validate.Struct(form))
}

func ValidateThread(p models.ThreadPayload) error {
	return Validate(p)
}

func ValidatePlan(p models.PlanPayload) error {
	return Validate(p)
}

func ValidateTask(p models.TaskPayload) error {
	return Validate(p)
}
