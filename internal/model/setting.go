package model

type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:100"`
	Value     string `json:"value" gorm:"type:text"`
	Desc      string `json:"desc"`
	Category  string `json:"category"`
	Sensitive bool   `json:"sensitive" gorm:"default:false"`
}
