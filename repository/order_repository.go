package repository

import (
	"errors"
	"strings"

	"foodorder/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Customers ----------------

// GetCustomerByEmail returns nil (no error) when the email is unknown,
// so the caller can branch between update and insert.
func (r *OrderRepository) GetCustomerByEmail(tx *gorm.DB, email string) (*entity.Customer, error) {
	var c entity.Customer
	err := tx.Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *OrderRepository) CreateCustomer(tx *gorm.DB, c *entity.Customer) error {
	return tx.Create(c).Error
}

// UpdateCustomer overwrites name/contact on a repeat order with the same email.
func (r *OrderRepository) UpdateCustomer(tx *gorm.DB, customerID uint, name, contact string) error {
	return tx.Model(&entity.Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{"name": name, "contact": contact}).Error
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, ol *entity.OrderLine) error {
	return tx.Create(ol).Error
}

// GetFoodBasics resolves the columns the order flow needs; a miss means the
// submitted food id does not exist and the transaction must fail.
func (r *OrderRepository) GetFoodBasics(tx *gorm.DB, foodID uint) (entity.Food, error) {
	var f entity.Food
	err := tx.Select("id, price, restaurant_id").First(&f, foodID).Error
	return f, err
}

// OrderTotal computes Σ price×quantity at current catalog prices. Run after
// commit; the stored lines are the source of truth for quantities.
func (r *OrderRepository) OrderTotal(orderID uint) (float64, error) {
	var row struct{ Total float64 }
	err := r.DB.Table("order_lines AS ol").
		Select("COALESCE(SUM(f.price * ol.quantity), 0) AS total").
		Joins("JOIN foods f ON f.id = ol.food_id").
		Where("ol.order_id = ?", orderID).
		Scan(&row).Error
	return row.Total, err
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

// GetPaymentMethodIDFromKey maps a client key ("card", "cod", …) to a seeded
// method row. Unknown keys resolve to 0 without error; the caller skips the
// payment row in that case.
func (r *OrderRepository) GetPaymentMethodIDFromKey(tx *gorm.DB, key string) (uint, error) {
	if key == "" {
		return 0, nil
	}
	k := strings.ToLower(strings.TrimSpace(key))
	var methodName string
	switch k {
	case "card", "credit_card", "credit-card", "credit card":
		methodName = "Credit Card"
	case "cash", "cod", "cash_on_delivery", "cash-on-delivery", "cash on delivery":
		methodName = "Cash on Delivery"
	case "promptpay":
		methodName = "PromptPay"
	default:
		methodName = key
	}
	var row struct{ ID uint }
	if err := tx.Model(&entity.PaymentMethod{}).
		Select("id").Where("method_name = ?", methodName).
		Limit(1).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetOrderStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *OrderRepository) GetPaymentStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.PaymentStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

// ---------------- Order lines ----------------

func (r *OrderRepository) GetOrderLines(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Model(&entity.OrderLine{}).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&lines).Error
	return lines, err
}
