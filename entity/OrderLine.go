package entity

import (
	"gorm.io/gorm"
)

// OrderLine is immutable once written; duplicate food ids across lines
// of one order are allowed and stay separate rows.
type OrderLine struct {
	gorm.Model
	Quantity int `json:"quantity"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"-"`
}
