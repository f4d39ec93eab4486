package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldLabel turns a json field name into a label: "bill_rate" -> "Bill Rate".
func FieldLabel(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// ValidationMessage renders a request binding failure as one readable
// sentence about the first offending field.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		label := FieldLabel(e.Field())
		switch e.Tag() {
		case "required":
			return label + " is required"
		case "gte", "min":
			return fmt.Sprintf("%s must be at least %s", label, e.Param())
		case "lte", "max":
			return fmt.Sprintf("%s must be at most %s", label, e.Param())
		default:
			return label + " is invalid"
		}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return FieldLabel(typeErr.Field) + " has the wrong type"
	}
	var argErr InvalidArgumentError
	if errors.As(err, &argErr) {
		return argErr.Error()
	}
	return "invalid request body"
}
