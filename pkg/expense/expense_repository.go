package expense

import (
	"context"
	"time"

	"Gastos-API/entities"

	"gorm.io/gorm"
)

type (
	ExpenseRepository interface {
		// CreateExpenseWithSource persists the source, the expense and its
		// detail rows as a single unit; none of them survive a failure.
		CreateExpenseWithSource(ctx context.Context, source *entities.Source, expense *entities.Expense, details []*entities.InvoiceDetail) error
		GetExpenses(ctx context.Context, userID string) ([]*entities.Expense, error)
		GetExpenseByID(ctx context.Context, id string, userID string) (*entities.Expense, error)
		GetExpensesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Expense, error)
		UpdateExpense(ctx context.Context, expense *entities.Expense, source *entities.Source) error
		// DeleteExpense removes detail rows, the expense and its source in
		// that order so referential constraints hold at every step.
		DeleteExpense(ctx context.Context, expense *entities.Expense) error
	}

	expenseRepository struct {
		db *gorm.DB
	}
)

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) CreateExpenseWithSource(ctx context.Context, source *entities.Source, expense *entities.Expense, details []*entities.InvoiceDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(source).Error; err != nil {
			return err
		}

		expense.SourceID = source.ID
		if err := tx.Create(expense).Error; err != nil {
			return err
		}

		for _, detail := range details {
			detail.ExpenseID = expense.ID
			if err := tx.Create(detail).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *expenseRepository) GetExpenses(ctx context.Context, userID string) ([]*entities.Expense, error) {
	var expenses []*entities.Expense

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Source").
		Preload("InvoiceDetails").
		Order("date desc").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) GetExpenseByID(ctx context.Context, id string, userID string) (*entities.Expense, error) {
	var expense entities.Expense

	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Source").
		Preload("InvoiceDetails").
		First(&expense).Error; err != nil {
		return nil, err
	}

	return &expense, nil
}

func (r *expenseRepository) GetExpensesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Expense, error) {
	var expenses []*entities.Expense

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date desc").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense *entities.Expense, source *entities.Source) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if source != nil {
			if err := tx.Save(source).Error; err != nil {
				return err
			}
		}
		return tx.Save(expense).Error
	})
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, expense *entities.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expense_id = ?", expense.ID).
			Delete(&entities.InvoiceDetail{}).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", expense.ID).
			Delete(&entities.Expense{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", expense.SourceID).
			Delete(&entities.Source{}).Error
	})
}
