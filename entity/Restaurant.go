package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`

	Foods []Food `json:"-"`
}
