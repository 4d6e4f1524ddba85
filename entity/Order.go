package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model

	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"-"`

	Lines    []OrderLine `json:"-"`
	Payments []Payment   `json:"-"`
}
