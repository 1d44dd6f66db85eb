package handlers

import (
	"errors"

	"Gastos-API/domain"
	"Gastos-API/internal/api/presenters"
	"Gastos-API/pkg/bill"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	BillHandler interface {
		ProcessText(c *fiber.Ctx) error
		ProcessPhoto(c *fiber.Ctx) error
	}

	billHandler struct {
		billService bill.BillService
		validator   *validator.Validate
		log         *zap.Logger
	}
)

func NewBillHandler(billService bill.BillService, validator *validator.Validate, log *zap.Logger) BillHandler {
	return &billHandler{
		billService: billService,
		validator:   validator,
		log:         log,
	}
}

func (h *billHandler) ProcessText(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ProcessTextRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessBill, err)
	}

	res, err := h.billService.ProcessText(c.Context(), *req, userID)
	if err != nil {
		return h.billErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessProcessBill)
}

func (h *billHandler) ProcessPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.billService.ProcessPhoto(c.Context(), file, userID)
	if err != nil {
		return h.billErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessProcessBill)
}

// billErrorResponse maps pipeline failures onto the API contract: schema
// violations are the caller's problem, everything else is a server fault
// reported without internals.
func (h *billHandler) billErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *domain.ExtractionValidationError
	if errors.As(err, &validationErr) {
		return presenters.ErrorDetailResponse(c, fiber.StatusBadRequest, domain.MessageFailedExtractionData, validationErr.Violations)
	}

	h.log.Error("process bill failed", zap.Error(err))
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessBill, errors.New(domain.MessageFailedProcessRequest))
}
