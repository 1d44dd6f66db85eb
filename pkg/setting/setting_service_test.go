package setting

import (
	"context"
	"testing"

	"Gastos-API/domain"
	"Gastos-API/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memorySettingRepository struct {
	settings map[string]*entities.Setting
	creates  int
	updates  int
}

func newMemorySettingRepository() *memorySettingRepository {
	return &memorySettingRepository{settings: make(map[string]*entities.Setting)}
}

func (r *memorySettingRepository) GetSettingByUserID(ctx context.Context, userID string) (*entities.Setting, error) {
	s, ok := r.settings[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memorySettingRepository) CreateSetting(ctx context.Context, setting *entities.Setting) error {
	r.creates++
	r.settings[setting.UserID.String()] = setting
	return nil
}

func (r *memorySettingRepository) UpdateSetting(ctx context.Context, setting *entities.Setting) error {
	r.updates++
	r.settings[setting.UserID.String()] = setting
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestGetSettingAbsent(t *testing.T) {
	service := NewSettingService(newMemorySettingRepository())

	res, err := service.GetSetting(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Errorf("expected nil for a user without settings, got %+v", res)
	}
}

func TestSaveSettingCreatesWithDefaults(t *testing.T) {
	repo := newMemorySettingRepository()
	service := NewSettingService(repo)
	userID := uuid.New().String()

	res, err := service.SaveSetting(context.Background(), domain.UpdateSettingRequest{
		MonthlyBudget: floatPtr(250000),
	}, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.creates != 1 || repo.updates != 0 {
		t.Errorf("creates/updates = %d/%d, want 1/0", repo.creates, repo.updates)
	}
	if res.PreferredCurrency != domain.CurrencyCRC {
		t.Errorf("currency = %q, want CRC default", res.PreferredCurrency)
	}
	if res.MonthlyBudget != 250000 {
		t.Errorf("budget = %v, want 250000", res.MonthlyBudget)
	}
	if res.ExchangeRate != nil {
		t.Errorf("exchange rate = %v, want nil", res.ExchangeRate)
	}
}

func TestSaveSettingUpdatesOnlyProvidedFields(t *testing.T) {
	repo := newMemorySettingRepository()
	service := NewSettingService(repo)
	userID := uuid.New().String()

	if _, err := service.SaveSetting(context.Background(), domain.UpdateSettingRequest{
		PreferredCurrency: strPtr(domain.CurrencyUSD),
		ExchangeRate:      floatPtr(520),
		MonthlyBudget:     floatPtr(500),
	}, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := service.SaveSetting(context.Background(), domain.UpdateSettingRequest{
		MonthlyBudget: floatPtr(600),
	}, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.creates != 1 || repo.updates != 1 {
		t.Errorf("creates/updates = %d/%d, want 1/1", repo.creates, repo.updates)
	}
	if res.PreferredCurrency != domain.CurrencyUSD {
		t.Errorf("currency = %q, want USD preserved", res.PreferredCurrency)
	}
	if res.ExchangeRate == nil || *res.ExchangeRate != 520 {
		t.Errorf("exchange rate = %v, want 520 preserved", res.ExchangeRate)
	}
	if res.MonthlyBudget != 600 {
		t.Errorf("budget = %v, want 600", res.MonthlyBudget)
	}
}

func TestSaveSettingKeepsSingleRow(t *testing.T) {
	repo := newMemorySettingRepository()
	service := NewSettingService(repo)
	userID := uuid.New().String()

	first, err := service.SaveSetting(context.Background(), domain.UpdateSettingRequest{}, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.SaveSetting(context.Background(), domain.UpdateSettingRequest{}, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("setting row changed identity: %s vs %s", first.ID, second.ID)
	}
	if len(repo.settings) != 1 {
		t.Errorf("rows = %d, want 1", len(repo.settings))
	}
}

func TestSaveSettingRejectsBadUserID(t *testing.T) {
	service := NewSettingService(newMemorySettingRepository())

	if _, err := service.SaveSetting(context.Background(), domain.UpdateSettingRequest{}, "not-a-uuid"); err == nil {
		t.Fatal("expected error for malformed user id")
	}
}
