package dto

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type UpdateSettingsResponse struct {
	Count int `json:"count"`
}
