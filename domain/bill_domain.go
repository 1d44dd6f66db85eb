package domain

import "errors"

var (
	MessageSuccessProcessBill = "bill processed successfully"

	MessageFailedProcessBill    = "failed to process bill"
	MessageFailedExtractionData = "extraction result failed validation"

	// ErrModelUnavailable covers transport failures and non-200 answers from
	// the generative model.
	ErrModelUnavailable = errors.New("extraction model unavailable")
	// ErrExtractionUnparsable means the model answered but the answer is not JSON.
	ErrExtractionUnparsable = errors.New("extraction response is not valid JSON")
	// ErrExtractionInvalid means the JSON parsed but failed the expense schema.
	ErrExtractionInvalid = errors.New("extraction result failed schema validation")
	ErrEmptyModelAnswer  = errors.New("extraction model returned no candidates")
)

// ExtractionValidationError carries the per-field violations of a rejected
// extraction result. It unwraps to ErrExtractionInvalid.
type ExtractionValidationError struct {
	Violations []FieldViolation
}

func (e *ExtractionValidationError) Error() string {
	return ErrExtractionInvalid.Error()
}

func (e *ExtractionValidationError) Unwrap() error {
	return ErrExtractionInvalid
}

type (
	ProcessTextRequest struct {
		Message string `json:"message" validate:"required"`
	}

	// ExtractionDetail is one line item as returned by the model.
	ExtractionDetail struct {
		Product   string  `json:"product" validate:"required"`
		Quantity  int     `json:"quantity" validate:"required,gt=0"`
		UnitPrice float64 `json:"unitPrice" validate:"required,gt=0"`
	}

	// ExtractionResult is the structured expense shape the model is prompted
	// to return. Field names follow the prompt (Spanish keys).
	ExtractionResult struct {
		Total       float64            `json:"total" validate:"required,gt=0"`
		Currency    string             `json:"moneda" validate:"required,oneof=CRC USD"`
		Vendor      *string            `json:"proveedor"`
		Description string             `json:"descripcion" validate:"required"`
		Type        string             `json:"tipo" validate:"required,oneof=simple invoice"`
		Category    *string            `json:"categoria" validate:"omitempty,oneof=FOOD TRANSPORT MEDICAL SERVICES SUBSCRIPTIONS INSTALLMENTS ENTERTAINMENT HOUSEHOLD EDUCATION OTHER"`
		Date        *string            `json:"fecha"`
		Details     []ExtractionDetail `json:"detalles" validate:"omitempty,dive"`
	}

	// FieldViolation is one schema failure, reported per field.
	FieldViolation struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	}

	ProcessBillResponse struct {
		ID          string             `json:"id"`
		Description string             `json:"descripcion"`
		Total       float64            `json:"total"`
		Currency    string             `json:"moneda"`
		Type        string             `json:"tipo"`
		Category    *string            `json:"categoria,omitempty"`
		Vendor      *string            `json:"proveedor,omitempty"`
		Details     []ExtractionDetail `json:"detalles"`
	}
)
