package models

import (
	"time"
)

type Item struct {
	ID          int       `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string    `gorm:"size:120;not null"         json:"name"`
	Description string    `json:"description"`
	Quantity    int       `gorm:"default:0"                 json:"quantity"`
	Price       float64   `gorm:"not null"                  json:"price"`
	CreatedAt   time.Time `gorm:"autoCreateTime"            json:"created_at"`
}
