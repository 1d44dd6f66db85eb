package handlers

import (
	"errors"

	"Gastos-API/domain"
	"Gastos-API/internal/api/presenters"
	"Gastos-API/pkg/setting"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	SettingHandler interface {
		GetSetting(c *fiber.Ctx) error
		SaveSetting(c *fiber.Ctx) error
	}

	settingHandler struct {
		settingService setting.SettingService
		validator      *validator.Validate
		log            *zap.Logger
	}
)

func NewSettingHandler(settingService setting.SettingService, validator *validator.Validate, log *zap.Logger) SettingHandler {
	return &settingHandler{
		settingService: settingService,
		validator:      validator,
		log:            log,
	}
}

func (h *settingHandler) GetSetting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.settingService.GetSetting(c.Context(), userID)
	if err != nil {
		h.log.Error("get settings failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSetting, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSetting)
}

func (h *settingHandler) SaveSetting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateSettingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSetting, err)
	}

	res, err := h.settingService.SaveSetting(c.Context(), *req, userID)
	if err != nil {
		h.log.Error("save settings failed", zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveSetting, errors.New(domain.MessageFailedProcessRequest))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveSetting)
}
