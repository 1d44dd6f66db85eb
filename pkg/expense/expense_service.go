package expense

import (
	"context"
	"errors"
	"time"

	"Gastos-API/domain"
	"Gastos-API/entities"
	"Gastos-API/pkg/setting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ExpenseService interface {
		CreateExpense(ctx context.Context, req domain.CreateExpenseRequest, userID string) (domain.ExpenseResponse, error)
		GetExpenses(ctx context.Context, userID string) ([]domain.ExpenseResponse, error)
		GetExpenseByID(ctx context.Context, id string, userID string) (domain.ExpenseResponse, error)
		UpdateExpense(ctx context.Context, id string, req domain.UpdateExpenseRequest, userID string) (domain.ExpenseResponse, error)
		DeleteExpense(ctx context.Context, id string, userID string) error
		Export(ctx context.Context, userID string) (domain.ExportResponse, error)
		MonthlySummary(ctx context.Context, userID string, now time.Time) (domain.MonthlySummaryResponse, error)
	}

	expenseService struct {
		expenseRepository ExpenseRepository
		settingRepository setting.SettingRepository
	}
)

func NewExpenseService(expenseRepository ExpenseRepository, settingRepository setting.SettingRepository) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		settingRepository: settingRepository,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, req domain.CreateExpenseRequest, userID string) (domain.ExpenseResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExpenseResponse{}, domain.ErrParseUUID
	}

	receivedAt, err := parseDate(req.Source.ReceivedAt)
	if err != nil {
		return domain.ExpenseResponse{}, domain.ErrInvalidDate
	}

	date, err := parseDate(req.Expense.Date)
	if err != nil {
		return domain.ExpenseResponse{}, domain.ErrInvalidDate
	}

	source := &entities.Source{
		ID:          uuid.New(),
		Kind:        req.Source.Kind,
		Description: req.Source.Description,
		ReceivedAt:  receivedAt,
		FileURL:     req.Source.FileURL,
	}

	expense := &entities.Expense{
		ID:          uuid.New(),
		UserID:      userUUID,
		Vendor:      req.Expense.Vendor,
		Description: req.Expense.Description,
		Date:        date,
		Total:       req.Expense.Total,
		Currency:    req.Expense.Currency,
		ExpenseType: req.Expense.ExpenseType,
		Category:    req.Expense.Category,
	}

	if err := s.expenseRepository.CreateExpenseWithSource(ctx, source, expense, nil); err != nil {
		return domain.ExpenseResponse{}, err
	}

	expense.Source = source
	return toExpenseResponse(expense), nil
}

func (s *expenseService) GetExpenses(ctx context.Context, userID string) ([]domain.ExpenseResponse, error) {
	expenses, err := s.expenseRepository.GetExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		response = append(response, toExpenseResponse(e))
	}

	return response, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string, userID string) (domain.ExpenseResponse, error) {
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ExpenseResponse{}, domain.ErrExpenseNotFound
		}
		return domain.ExpenseResponse{}, err
	}

	return toExpenseResponse(expense), nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id string, req domain.UpdateExpenseRequest, userID string) (domain.ExpenseResponse, error) {
	// Lookup is scoped by user; a record owned by someone else reads as absent.
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ExpenseResponse{}, domain.ErrExpenseNotFound
		}
		return domain.ExpenseResponse{}, err
	}

	if req.Vendor != "" {
		expense.Vendor = req.Vendor
	}
	if req.Description != "" {
		expense.Description = req.Description
	}
	if req.Total > 0 {
		expense.Total = req.Total
	}
	if req.Currency != "" {
		expense.Currency = req.Currency
	}
	if req.Category != nil {
		expense.Category = req.Category
	}

	var source *entities.Source
	if req.SourceDesc != "" && expense.Source != nil {
		expense.Source.Description = req.SourceDesc
		source = expense.Source
	}

	if err := s.expenseRepository.UpdateExpense(ctx, expense, source); err != nil {
		return domain.ExpenseResponse{}, err
	}

	refreshed, err := s.expenseRepository.GetExpenseByID(ctx, id, userID)
	if err != nil {
		return domain.ExpenseResponse{}, err
	}

	return toExpenseResponse(refreshed), nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string, userID string) error {
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpenseNotFound
		}
		return err
	}

	return s.expenseRepository.DeleteExpense(ctx, expense)
}

func (s *expenseService) Export(ctx context.Context, userID string) (domain.ExportResponse, error) {
	expenses, err := s.expenseRepository.GetExpenses(ctx, userID)
	if err != nil {
		return domain.ExportResponse{}, err
	}

	// Slices stay non-nil so an empty export still serializes as [].
	response := domain.ExportResponse{
		Expenses:       make([]domain.ExpenseResponse, 0, len(expenses)),
		InvoiceDetails: make([]domain.InvoiceDetailResponse, 0),
		Sources:        make([]domain.SourceResponse, 0, len(expenses)),
	}

	for _, e := range expenses {
		res := toExpenseResponse(e)
		response.Expenses = append(response.Expenses, res)
		response.InvoiceDetails = append(response.InvoiceDetails, res.InvoiceDetails...)
		response.Sources = append(response.Sources, res.Source)
	}

	return response, nil
}

func (s *expenseService) MonthlySummary(ctx context.Context, userID string, now time.Time) (domain.MonthlySummaryResponse, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)

	expenses, err := s.expenseRepository.GetExpensesByDateRange(ctx, userID, start, end)
	if err != nil {
		return domain.MonthlySummaryResponse{}, err
	}

	currency := domain.CurrencyCRC
	var budget float64
	var rate *float64

	userSetting, err := s.settingRepository.GetSettingByUserID(ctx, userID)
	if err == nil {
		currency = userSetting.PreferredCurrency
		budget = userSetting.MonthlyBudget
		rate = userSetting.ExchangeRate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MonthlySummaryResponse{}, err
	}

	var spent float64
	byCategory := make(map[string]float64)

	for _, e := range expenses {
		total := convertTotal(e.Total, e.Currency, currency, rate)
		spent += total

		category := domain.CategoryOther
		if e.Category != nil {
			category = *e.Category
		}
		byCategory[category] += total
	}

	return domain.MonthlySummaryResponse{
		Month:         start.Format("2006-01"),
		Currency:      currency,
		Spent:         spent,
		MonthlyBudget: budget,
		Remaining:     budget - spent,
		ByCategory:    byCategory,
	}, nil
}

// convertTotal converts between CRC and USD using the user's configured rate
// (colones per dollar). Without a rate, totals are summed at face value.
func convertTotal(total float64, from, to string, rate *float64) float64 {
	if from == to || rate == nil || *rate <= 0 {
		return total
	}
	if from == domain.CurrencyUSD && to == domain.CurrencyCRC {
		return total * *rate
	}
	if from == domain.CurrencyCRC && to == domain.CurrencyUSD {
		return total / *rate
	}
	return total
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func toExpenseResponse(e *entities.Expense) domain.ExpenseResponse {
	response := domain.ExpenseResponse{
		ID:             e.ID.String(),
		Vendor:         e.Vendor,
		Description:    e.Description,
		Date:           e.Date,
		Total:          e.Total,
		Currency:       e.Currency,
		ExpenseType:    e.ExpenseType,
		Category:       e.Category,
		InvoiceDetails: make([]domain.InvoiceDetailResponse, 0, len(e.InvoiceDetails)),
		CreatedAt:      e.CreatedAt,
	}

	if e.Source != nil {
		response.Source = domain.SourceResponse{
			ID:          e.Source.ID.String(),
			Kind:        e.Source.Kind,
			Description: e.Source.Description,
			ReceivedAt:  e.Source.ReceivedAt,
			FileURL:     e.Source.FileURL,
		}
	}

	for _, d := range e.InvoiceDetails {
		response.InvoiceDetails = append(response.InvoiceDetails, domain.InvoiceDetailResponse{
			ID:        d.ID.String(),
			ExpenseID: d.ExpenseID.String(),
			Product:   d.Product,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
		})
	}

	return response
}
