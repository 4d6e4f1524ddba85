package entity

import (
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PaymentMethodID uint          `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `json:"-"`

	PaymentStatusID uint          `json:"paymentStatusId"`
	PaymentStatus   PaymentStatus `json:"-"`
}
