package contract

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
	"github.com/kompox/patternapi/internal/naming"
)

// ValidationError reports a payload that does not fit the request shape of
// its pattern. It matches model.ErrInvalidRequest.
type ValidationError struct {
	Pattern pattern.Pattern
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request for %s: %v", e.Pattern, e.Err)
}

func (e *ValidationError) Unwrap() []error { return []error{model.ErrInvalidRequest, e.Err} }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	for tag, check := range map[string]func(string) error{
		"dns1123label":     naming.ValidateNamespaceName,
		"dns1123subdomain": naming.ValidateResourceName,
	} {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String()) == nil
		}); err != nil {
			panic(err)
		}
	}
	return v
}

// validateValue applies struct rules to v, which is a pointer to a request.
// Slices are checked element by element; scalars have no rules.
func validateValue(p pattern.Pattern, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	var err error
	switch rv.Kind() {
	case reflect.Struct:
		err = validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			ev := rv.Index(i)
			for ev.Kind() == reflect.Pointer && !ev.IsNil() {
				ev = ev.Elem()
			}
			if ev.Kind() != reflect.Struct {
				continue
			}
			if err = validate.Struct(ev.Interface()); err != nil {
				err = fmt.Errorf("[%d]: %w", i, err)
				break
			}
		}
	}
	if err != nil {
		return &ValidationError{Pattern: p, Err: err}
	}
	return nil
}
