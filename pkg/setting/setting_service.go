package setting

import (
	"context"
	"errors"

	"Gastos-API/domain"
	"Gastos-API/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SettingService interface {
		GetSetting(ctx context.Context, userID string) (*domain.SettingResponse, error)
		SaveSetting(ctx context.Context, req domain.UpdateSettingRequest, userID string) (domain.SettingResponse, error)
	}

	settingService struct {
		settingRepository SettingRepository
	}
)

func NewSettingService(settingRepository SettingRepository) SettingService {
	return &settingService{settingRepository: settingRepository}
}

// GetSetting returns nil without error when the user has never saved settings.
func (s *settingService) GetSetting(ctx context.Context, userID string) (*domain.SettingResponse, error) {
	setting, err := s.settingRepository.GetSettingByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response := toSettingResponse(setting)
	return &response, nil
}

// SaveSetting upserts the single Setting row keyed by user: the first save
// creates it with defaults, later saves only touch the provided fields.
func (s *settingService) SaveSetting(ctx context.Context, req domain.UpdateSettingRequest, userID string) (domain.SettingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SettingResponse{}, domain.ErrParseUUID
	}

	setting, err := s.settingRepository.GetSettingByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SettingResponse{}, err
		}

		setting = &entities.Setting{
			ID:                uuid.New(),
			UserID:            userUUID,
			PreferredCurrency: domain.CurrencyCRC,
		}
		if req.PreferredCurrency != nil {
			setting.PreferredCurrency = *req.PreferredCurrency
		}
		if req.ExchangeRate != nil {
			setting.ExchangeRate = req.ExchangeRate
		}
		if req.MonthlyBudget != nil {
			setting.MonthlyBudget = *req.MonthlyBudget
		}

		if err := s.settingRepository.CreateSetting(ctx, setting); err != nil {
			return domain.SettingResponse{}, err
		}
		return toSettingResponse(setting), nil
	}

	if req.PreferredCurrency != nil {
		setting.PreferredCurrency = *req.PreferredCurrency
	}
	if req.ExchangeRate != nil {
		setting.ExchangeRate = req.ExchangeRate
	}
	if req.MonthlyBudget != nil {
		setting.MonthlyBudget = *req.MonthlyBudget
	}

	if err := s.settingRepository.UpdateSetting(ctx, setting); err != nil {
		return domain.SettingResponse{}, err
	}

	return toSettingResponse(setting), nil
}

func toSettingResponse(setting *entities.Setting) domain.SettingResponse {
	return domain.SettingResponse{
		ID:                setting.ID.String(),
		PreferredCurrency: setting.PreferredCurrency,
		ExchangeRate:      setting.ExchangeRate,
		MonthlyBudget:     setting.MonthlyBudget,
	}
}
