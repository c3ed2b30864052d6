// Package validation holds the validator instance shared by theme options and
// theme documents, together with the custom rules they rely on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	propNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	versionPattern  = regexp.MustCompile(`^1(?:\.\d+){0,2}$`)
)

// Instance returns the shared validator, configured on first use.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return field.Name
			default:
				return name
			}
		})

		_ = v.RegisterValidation("prop_name", func(fl validator.FieldLevel) bool {
			return propNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("regexp", func(fl validator.FieldLevel) bool {
			expr := fl.Field().String()
			if expr == "" {
				return true // Allow empty if not required
			}
			_, err := regexp.Compile(expr)
			return err == nil
		})

		_ = v.RegisterValidation("doc_version", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure into a ValidationError.
func Struct(s any) error {
	return Convert(Instance().Struct(s))
}

// Convert normalises validator errors into ValidationErrors that name the
// failing field the way it is spelled in documents.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := FieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("", err.Error(), err)
}

// FieldName drops the root struct from a validator namespace.
func FieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
