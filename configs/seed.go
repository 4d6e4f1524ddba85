package configs

import (
	"log"

	"foodorder/entity"

	"gorm.io/gorm"
)

// SeedLookups fills the status/method lookup tables. Row order matters only
// in that "Pending" is seeded first, matching the initial state of new
// orders and payments.
func SeedLookups(db *gorm.DB) error {
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Pending"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Preparing"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})

	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Credit Card"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Cash on Delivery"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "PromptPay"})

	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Pending"})
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Paid"})
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Failed"})

	log.Println("lookup tables seeded")
	return nil
}

// SeedCatalog loads a small demo catalog so a fresh database has something
// to list. Skipped as soon as any restaurant exists.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []struct {
		entity.Restaurant
		foods []entity.Food
	}{
		{
			Restaurant: entity.Restaurant{Name: "Mama's Kitchen", Rating: 4.5, Address: "12 Market Lane"},
			foods: []entity.Food{
				{Name: "Pad Thai", Description: "Stir-fried rice noodles with shrimp", Price: 8.50},
				{Name: "Green Curry", Description: "Chicken green curry with rice", Price: 9.00},
			},
		},
		{
			Restaurant: entity.Restaurant{Name: "Burger Barn", Rating: 4.1, Address: "3 High Street"},
			foods: []entity.Food{
				{Name: "Classic Burger", Description: "Beef patty, cheddar, pickles", Price: 7.25},
				{Name: "Fries", Description: "Skin-on fries", Price: 3.00},
			},
		},
		{
			Restaurant: entity.Restaurant{Name: "Sushi Go", Rating: 4.8, Address: "88 River Road"},
			foods: []entity.Food{
				{Name: "Salmon Set", Description: "Eight pieces of salmon nigiri", Price: 12.00},
			},
		},
	}

	for _, r := range restaurants {
		rest := r.Restaurant
		if err := db.Create(&rest).Error; err != nil {
			return err
		}
		for _, f := range r.foods {
			f.RestaurantID = rest.ID
			if err := db.Create(&f).Error; err != nil {
				return err
			}
		}
	}

	log.Println("demo catalog seeded")
	return nil
}
