package domain

import (
	"errors"
	"time"
)

const (
	CurrencyCRC = "CRC"
	CurrencyUSD = "USD"

	ExpenseTypeSimple  = "simple"
	ExpenseTypeInvoice = "invoice"

	SourceKindMessage = "message"
	SourceKindImage   = "image"

	CategoryOther = "OTHER"
)

// ExpenseCategories is the closed set of accepted expense categories.
var ExpenseCategories = []string{
	"FOOD",
	"TRANSPORT",
	"MEDICAL",
	"SERVICES",
	"SUBSCRIPTIONS",
	"INSTALLMENTS",
	"ENTERTAINMENT",
	"HOUSEHOLD",
	"EDUCATION",
	CategoryOther,
}

var (
	MessageSuccessCreateExpense = "expense registered successfully"
	MessageSuccessUpdateExpense = "expense updated successfully"
	MessageSuccessDeleteExpense = "expense deleted successfully"
	MessageSuccessGetExpenses   = "expenses retrieved successfully"
	MessageSuccessGetSummary    = "monthly summary retrieved successfully"
	MessageSuccessExport        = "export data retrieved successfully"

	MessageFailedCreateExpense = "failed to register expense"
	MessageFailedUpdateExpense = "failed to update expense"
	MessageFailedDeleteExpense = "failed to delete expense"
	MessageFailedGetExpenses   = "failed to retrieve expenses"
	MessageFailedGetSummary    = "failed to retrieve monthly summary"
	MessageFailedExport        = "failed to export data"

	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidCategory = errors.New("invalid expense category")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidDate     = errors.New("invalid date")
)

type (
	SourcePayload struct {
		Kind        string `json:"kind" validate:"required,oneof=message image"`
		Description string `json:"description" validate:"omitempty"`
		ReceivedAt  string `json:"received_at" validate:"required"`
		FileURL     string `json:"file_url" validate:"omitempty,url"`
	}

	ExpensePayload struct {
		Vendor      string  `json:"vendor" validate:"omitempty"`
		Description string  `json:"description" validate:"required"`
		Date        string  `json:"date" validate:"required"`
		Total       float64 `json:"total" validate:"required,gt=0"`
		Currency    string  `json:"currency" validate:"required,oneof=CRC USD"`
		ExpenseType string  `json:"expense_type" validate:"required,oneof=simple invoice"`
		Category    *string `json:"category" validate:"omitempty,oneof=FOOD TRANSPORT MEDICAL SERVICES SUBSCRIPTIONS INSTALLMENTS ENTERTAINMENT HOUSEHOLD EDUCATION OTHER"`
	}

	CreateExpenseRequest struct {
		Source  SourcePayload  `json:"source" validate:"required"`
		Expense ExpensePayload `json:"expense" validate:"required"`
	}

	UpdateExpenseRequest struct {
		Vendor      string  `json:"vendor" validate:"omitempty"`
		Description string  `json:"description" validate:"omitempty"`
		Total       float64 `json:"total" validate:"omitempty,gt=0"`
		Currency    string  `json:"currency" validate:"omitempty,oneof=CRC USD"`
		Category    *string `json:"category" validate:"omitempty,oneof=FOOD TRANSPORT MEDICAL SERVICES SUBSCRIPTIONS INSTALLMENTS ENTERTAINMENT HOUSEHOLD EDUCATION OTHER"`
		SourceDesc  string  `json:"source_description" validate:"omitempty"`
	}

	SourceResponse struct {
		ID          string    `json:"id"`
		Kind        string    `json:"kind"`
		Description string    `json:"description,omitempty"`
		ReceivedAt  time.Time `json:"received_at"`
		FileURL     string    `json:"file_url,omitempty"`
	}

	InvoiceDetailResponse struct {
		ID        string  `json:"id"`
		ExpenseID string  `json:"expense_id"`
		Product   string  `json:"product"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	}

	ExpenseResponse struct {
		ID             string                  `json:"id"`
		Vendor         string                  `json:"vendor,omitempty"`
		Description    string                  `json:"description"`
		Date           time.Time               `json:"date"`
		Total          float64                 `json:"total"`
		Currency       string                  `json:"currency"`
		ExpenseType    string                  `json:"expense_type"`
		Category       *string                 `json:"category,omitempty"`
		Source         SourceResponse          `json:"source"`
		InvoiceDetails []InvoiceDetailResponse `json:"invoice_details"`
		CreatedAt      time.Time               `json:"created_at"`
	}

	ExportResponse struct {
		Expenses       []ExpenseResponse       `json:"expenses"`
		InvoiceDetails []InvoiceDetailResponse `json:"invoiceDetails"`
		Sources        []SourceResponse        `json:"sources"`
	}

	MonthlySummaryResponse struct {
		Month         string             `json:"month"`
		Currency      string             `json:"currency"`
		Spent         float64            `json:"spent"`
		MonthlyBudget float64            `json:"monthly_budget"`
		Remaining     float64            `json:"remaining"`
		ByCategory    map[string]float64 `json:"by_category"`
	}
)
