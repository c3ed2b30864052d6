package config

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/themed/internal/validation"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// ValidateDocument performs structural and cross-field validation on an
// entire document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return apperrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validation.Struct(doc); err != nil {
		return err
	}

	declared := make(map[string]int, len(doc.Wrappers))

	for i, w := range doc.Wrappers {
		if _, exists := declared[w.Name]; exists {
			return apperrors.NewValidationError(fieldForWrapper(i, "name"), fmt.Sprintf("duplicate wrapper name %q", w.Name), nil)
		}

		if err := validateWrapper(w, i, declared); err != nil {
			return err
		}

		declared[w.Name] = i
	}

	return nil
}

func validateWrapper(w WrapperSpec, index int, declared map[string]int) error {
	switch {
	case w.Component == "" && w.Wraps == "":
		return apperrors.NewValidationError(fieldForWrapper(index, "component"), "either component or wraps is required", nil)
	case w.Component != "" && w.Wraps != "":
		return apperrors.NewValidationError(fieldForWrapper(index, "wraps"), "component and wraps are mutually exclusive", nil)
	}

	if w.Wraps != "" {
		if _, ok := declared[w.Wraps]; !ok {
			return apperrors.NewValidationError(fieldForWrapper(index, "wraps"), fmt.Sprintf("wraps unknown or later wrapper %q", w.Wraps), nil)
		}
	}

	if forms := w.Selector.Forms(); len(forms) > 1 {
		return apperrors.NewValidationError(
			fieldForWrapper(index, "selector"),
			fmt.Sprintf("selector sets more than one form: %s", strings.Join(forms, ", ")),
			nil,
		)
	}

	return nil
}

func fieldForWrapper(index int, field string) string {
	return fmt.Sprintf("wrappers[%d].%s", index, field)
}
