package entity

import (
	"gorm.io/gorm"
)

// Customer rows are keyed by email: a repeat order with a known email
// overwrites name/contact instead of inserting a second row.
type Customer struct {
	gorm.Model
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`

	Orders []Order `json:"-"`
}
