package bill

import (
	"testing"

	"Gastos-API/domain"
)

func strPtr(s string) *string { return &s }

func validSimpleResult() domain.ExtractionResult {
	return domain.ExtractionResult{
		Total:       5000,
		Currency:    "CRC",
		Vendor:      strPtr("Pulpería La Esquina"),
		Description: "Compra en pulpería",
		Type:        "simple",
		Category:    strPtr("FOOD"),
	}
}

func validInvoiceResult() domain.ExtractionResult {
	return domain.ExtractionResult{
		Total:       18900,
		Currency:    "CRC",
		Vendor:      strPtr("Supermercado XYZ"),
		Description: "Compra de víveres",
		Type:        "invoice",
		Category:    strPtr("FOOD"),
		Date:        strPtr("2025-06-21T00:00:00Z"),
		Details: []domain.ExtractionDetail{
			{Product: "Leche", Quantity: 2, UnitPrice: 900},
			{Product: "Pan", Quantity: 1, UnitPrice: 1200},
		},
	}
}

func TestValidateExtractionAccepts(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name   string
		result domain.ExtractionResult
	}{
		{"simple expense", validSimpleResult()},
		{"invoice with details", validInvoiceResult()},
		{
			"no vendor no category no date",
			domain.ExtractionResult{
				Total:       1200,
				Currency:    "USD",
				Description: "Taxi al aeropuerto",
				Type:        "simple",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if violations := ValidateExtraction(v, tt.result); len(violations) != 0 {
				t.Errorf("expected no violations, got %v", violations)
			}
		})
	}
}

func TestValidateExtractionRejects(t *testing.T) {
	v := NewSchemaValidator()

	missingTotal := validSimpleResult()
	missingTotal.Total = 0

	badCurrency := validSimpleResult()
	badCurrency.Currency = "EUR"

	badType := validSimpleResult()
	badType.Type = "receipt"

	badCategory := validSimpleResult()
	badCategory.Category = strPtr("GROCERIES")

	badDate := validSimpleResult()
	badDate.Date = strPtr("21/06/2025")

	badDetail := validInvoiceResult()
	badDetail.Details[0].Quantity = 0

	tests := []struct {
		name   string
		result domain.ExtractionResult
		field  string
	}{
		{"missing total", missingTotal, "total"},
		{"unknown currency", badCurrency, "moneda"},
		{"unknown type", badType, "tipo"},
		{"unknown category", badCategory, "categoria"},
		{"non ISO date", badDate, "fecha"},
		{"zero quantity detail", badDetail, "detalles[0].quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateExtraction(v, tt.result)
			if len(violations) == 0 {
				t.Fatal("expected violations, got none")
			}
			found := false
			for _, violation := range violations {
				if violation.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a violation on %q, got %v", tt.field, violations)
			}
		})
	}
}

func TestValidateExtractionReportsEveryField(t *testing.T) {
	v := NewSchemaValidator()

	result := domain.ExtractionResult{
		Currency: "EUR",
		Type:     "simple",
	}

	violations := ValidateExtraction(v, result)
	if len(violations) < 3 {
		t.Fatalf("expected violations for total, moneda and descripcion, got %v", violations)
	}
}
