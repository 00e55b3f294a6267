package models

type ModelArgs struct {
	BaseURL     string   `json:"base_url"`
	APIKey      string   `json:"api_key"`
	Model       string   `json:"model"`
	SubModel    string   `json:"sub_model"`
	Temperature *float32 `json:"temperature"`
}
