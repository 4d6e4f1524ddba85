package entity

import (
	"gorm.io/gorm"
)

type PaymentStatus struct {
	gorm.Model
	StatusName string `gorm:"size:100;uniqueIndex;not null" json:"statusName"`

	Payments []Payment `json:"-"`
}
