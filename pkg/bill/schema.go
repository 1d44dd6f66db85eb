package bill

import (
	"reflect"
	"strings"
	"time"

	"Gastos-API/domain"

	"github.com/go-playground/validator/v10"
)

// NewSchemaValidator builds the validator used on extraction results. Field
// names in violations follow the JSON keys the model is prompted with.
func NewSchemaValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateExtraction checks a parsed extraction result against the expense
// schema and returns one violation per failing field. An empty slice means
// the result is safe to persist. No side effects.
func ValidateExtraction(v *validator.Validate, result domain.ExtractionResult) []domain.FieldViolation {
	violations := make([]domain.FieldViolation, 0)

	if err := v.Struct(result); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				violations = append(violations, domain.FieldViolation{
					Field:  fieldPath(ve),
					Reason: violationReason(ve),
				})
			}
		} else {
			violations = append(violations, domain.FieldViolation{
				Field:  "",
				Reason: err.Error(),
			})
		}
	}

	if result.Date != nil && *result.Date != "" {
		if _, err := time.Parse(time.RFC3339, *result.Date); err != nil {
			violations = append(violations, domain.FieldViolation{
				Field:  "fecha",
				Reason: "must be an ISO-8601 timestamp or null",
			})
		}
	}

	return violations
}

// fieldPath drops the struct name from the validator namespace so nested
// violations read as "detalles[0].quantity" rather than
// "ExtractionResult.detalles[0].quantity".
func fieldPath(ve validator.FieldError) string {
	namespace := ve.Namespace()
	if idx := strings.Index(namespace, "."); idx != -1 {
		return namespace[idx+1:]
	}
	return ve.Field()
}

func violationReason(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + ve.Param()
	case "oneof":
		return "must be one of: " + ve.Param()
	default:
		return "failed on rule: " + ve.Tag()
	}
}
