package domain

var (
	MessageSuccessGetSetting  = "settings retrieved successfully"
	MessageSuccessSaveSetting = "settings saved successfully"

	MessageFailedGetSetting  = "failed to retrieve settings"
	MessageFailedSaveSetting = "failed to save settings"
)

type (
	UpdateSettingRequest struct {
		PreferredCurrency *string  `json:"preferred_currency" validate:"omitempty,oneof=CRC USD"`
		ExchangeRate      *float64 `json:"exchange_rate" validate:"omitempty,gt=0"`
		MonthlyBudget     *float64 `json:"monthly_budget" validate:"omitempty,gte=0"`
	}

	SettingResponse struct {
		ID                string   `json:"id"`
		PreferredCurrency string   `json:"preferred_currency"`
		ExchangeRate      *float64 `json:"exchange_rate,omitempty"`
		MonthlyBudget     float64  `json:"monthly_budget"`
	}
)
