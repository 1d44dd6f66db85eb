package handlers

import (
	"errors"
	"time"

	"Gastos-API/domain"
	"Gastos-API/internal/api/presenters"
	"Gastos-API/pkg/expense"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	ExpenseHandler interface {
		CreateExpense(c *fiber.Ctx) error
		GetExpenses(c *fiber.Ctx) error
		GetExpenseByID(c *fiber.Ctx) error
		UpdateExpense(c *fiber.Ctx) error
		DeleteExpense(c *fiber.Ctx) error
		Export(c *fiber.Ctx) error
		MonthlySummary(c *fiber.Ctx) error
	}

	expenseHandler struct {
		expenseService expense.ExpenseService
		validator      *validator.Validate
		log            *zap.Logger
	}
)

func NewExpenseHandler(expenseService expense.ExpenseService, validator *validator.Validate, log *zap.Logger) ExpenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
		validator:      validator,
		log:            log,
	}
}

func (h *expenseHandler) CreateExpense(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateExpenseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateExpense, err)
	}

	res, err := h.expenseService.CreateExpense(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateExpense, err)
		}
		h.log.Error("create expense failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateExpense, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateExpense)
}

func (h *expenseHandler) GetExpenses(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.expenseService.GetExpenses(c.Context(), userID)
	if err != nil {
		h.log.Error("list expenses failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetExpenses, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpenses)
}

func (h *expenseHandler) GetExpenseByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	expenseID := c.Params("id")

	res, err := h.expenseService.GetExpenseByID(c.Context(), expenseID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetExpenses, err)
		}
		h.log.Error("get expense failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetExpenses, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpenses)
}

func (h *expenseHandler) UpdateExpense(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	expenseID := c.Params("id")
	req := new(domain.UpdateExpenseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpense, err)
	}

	res, err := h.expenseService.UpdateExpense(c.Context(), expenseID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateExpense, err)
		}
		h.log.Error("update expense failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateExpense, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateExpense)
}

func (h *expenseHandler) DeleteExpense(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	expenseID := c.Params("id")

	if err := h.expenseService.DeleteExpense(c.Context(), expenseID, userID); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteExpense, err)
		}
		h.log.Error("delete expense failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteExpense, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExpense)
}

func (h *expenseHandler) Export(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.expenseService.Export(c.Context(), userID)
	if err != nil {
		h.log.Error("export failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExport, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExport)
}

func (h *expenseHandler) MonthlySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.expenseService.MonthlySummary(c.Context(), userID, time.Now())
	if err != nil {
		h.log.Error("monthly summary failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSummary, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
