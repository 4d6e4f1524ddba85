package configs

import (
	"foodorder/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	Migrate(db)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Restaurant{}, &entity.Food{},
		&entity.Customer{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderLine{},
		&entity.PaymentMethod{}, &entity.PaymentStatus{}, &entity.Payment{},
	)
}
