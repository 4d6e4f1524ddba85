package services

import (
	"errors"

	"foodorder/repository"

	"gorm.io/gorm"
)

// ErrFoodNotFound separates a lookup miss from an infrastructure failure so
// the controller can answer 404 instead of 500.
var ErrFoodNotFound = errors.New("food item not found")

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListRestaurants() ([]repository.RestaurantRow, error) {
	return s.Repo.ListRestaurants()
}

func (s *CatalogService) ListFoods() ([]repository.FoodRow, error) {
	return s.Repo.ListFoods()
}

func (s *CatalogService) ListFoodsByRestaurant(restaurantID uint) ([]repository.RestaurantFoodRow, error) {
	return s.Repo.ListFoodsByRestaurant(restaurantID)
}

func (s *CatalogService) GetFood(foodID uint) (*repository.FoodDetailRow, error) {
	row, err := s.Repo.GetFood(foodID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
