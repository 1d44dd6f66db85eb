package setting

import (
	"context"

	"Gastos-API/entities"

	"gorm.io/gorm"
)

type (
	SettingRepository interface {
		GetSettingByUserID(ctx context.Context, userID string) (*entities.Setting, error)
		CreateSetting(ctx context.Context, setting *entities.Setting) error
		UpdateSetting(ctx context.Context, setting *entities.Setting) error
	}

	settingRepository struct {
		db *gorm.DB
	}
)

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetSettingByUserID(ctx context.Context, userID string) (*entities.Setting, error) {
	var setting entities.Setting
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) CreateSetting(ctx context.Context, setting *entities.Setting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *settingRepository) UpdateSetting(ctx context.Context, setting *entities.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
