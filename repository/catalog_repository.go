package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// GET /api/restaurants
type RestaurantRow struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
}

func (r *CatalogRepository) ListRestaurants() ([]RestaurantRow, error) {
	var out []RestaurantRow
	err := r.DB.Model(&entity.Restaurant{}).
		Select("id, name, rating, address").
		Order("id").
		Scan(&out).Error
	return out, err
}

// GET /api/food?action=all → food joined with the owning restaurant
type FoodRow struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	RestaurantName string  `json:"restaurantName"`
	Rating         float64 `json:"rating"`
}

func (r *CatalogRepository) ListFoods() ([]FoodRow, error) {
	var out []FoodRow
	err := r.DB.Table("foods AS f").
		Select("f.id, f.name, f.description, f.price, r.name AS restaurant_name, r.rating").
		Joins("JOIN restaurants r ON r.id = f.restaurant_id").
		Where("f.deleted_at IS NULL").
		Order("f.id").
		Scan(&out).Error
	return out, err
}

// GET /api/food?action=restaurant&id=N → no restaurant columns, they are
// implied by the filter
type RestaurantFoodRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (r *CatalogRepository) ListFoodsByRestaurant(restaurantID uint) ([]RestaurantFoodRow, error) {
	var out []RestaurantFoodRow
	err := r.DB.Model(&entity.Food{}).
		Select("id, name, description, price").
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Scan(&out).Error
	return out, err
}

// GET /api/food?action=item&id=N
type FoodDetailRow struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	RestaurantName string  `json:"restaurantName"`
}

func (r *CatalogRepository) GetFood(foodID uint) (*FoodDetailRow, error) {
	var row FoodDetailRow
	err := r.DB.Table("foods AS f").
		Select("f.id, f.name, f.description, f.price, r.name AS restaurant_name").
		Joins("JOIN restaurants r ON r.id = f.restaurant_id").
		Where("f.id = ? AND f.deleted_at IS NULL", foodID).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
