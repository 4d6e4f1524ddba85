package services

import (
	"errors"
	"math"

	"foodorder/entity"
	"foodorder/repository"

	"gorm.io/gorm"
)

// ErrMissingData marks a request rejected before any transaction is opened.
var ErrMissingData = errors.New("missing required data")

type StatusIDs struct {
	OrderPending   uint
	PaymentPending uint
}

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Status StatusIDs
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	s := &OrderService{DB: db, Repo: repo}

	if id, err := repo.GetOrderStatusIDByName("Pending"); err == nil {
		s.Status.OrderPending = id
	}
	if id, err := repo.GetPaymentStatusIDByName("Pending"); err == nil {
		s.Status.PaymentPending = id
	}

	return s
}

// ----- DTOs from Controller -----

type CustomerIn struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

type OrderItemIn struct {
	FoodID   uint `json:"foodId"`
	Quantity int  `json:"quantity"`
}

type PaymentIn struct {
	Method string `json:"method"`
}

type PlaceOrderReq struct {
	Customer *CustomerIn   `json:"customer"`
	Items    []OrderItemIn `json:"items"`
	Payment  *PaymentIn    `json:"payment"`
}

type PlaceOrderRes struct {
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"order_total"`
}

// PlaceOrder runs the whole submission as one transaction: upsert the
// customer by email, create the order with its lines in input order, attach
// a pending payment when the method resolves, then re-query the total from
// current catalog prices after commit.
func (s *OrderService) PlaceOrder(req *PlaceOrderReq) (*PlaceOrderRes, error) {
	if req == nil || req.Customer == nil || len(req.Items) == 0 {
		return nil, ErrMissingData
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, ErrMissingData
		}
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 1) customer upsert keyed by email
		cust, err := s.Repo.GetCustomerByEmail(tx, req.Customer.Email)
		if err != nil {
			return err
		}
		if cust != nil {
			if err := s.Repo.UpdateCustomer(tx, cust.ID, req.Customer.Name, req.Customer.Contact); err != nil {
				return err
			}
		} else {
			cust = &entity.Customer{
				Name:    req.Customer.Name,
				Contact: req.Customer.Contact,
				Email:   req.Customer.Email,
			}
			if err := s.Repo.CreateCustomer(tx, cust); err != nil {
				return err
			}
		}

		// 2) order row, initial status Pending
		order := entity.Order{
			CustomerID:    cust.ID,
			OrderStatusID: s.Status.OrderPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// 3) one line per input item, input order preserved; duplicate food
		// ids stay separate rows
		for _, it := range req.Items {
			if _, err := s.Repo.GetFoodBasics(tx, it.FoodID); err != nil {
				return err
			}
			ol := entity.OrderLine{
				OrderID:  order.ID,
				FoodID:   it.FoodID,
				Quantity: it.Quantity,
			}
			if err := s.Repo.CreateOrderLine(tx, &ol); err != nil {
				return err
			}
		}

		// 4) optional payment; an unknown method resolves to 0 and is skipped
		if req.Payment != nil && req.Payment.Method != "" {
			pmID, err := s.Repo.GetPaymentMethodIDFromKey(tx, req.Payment.Method)
			if err != nil {
				return err
			}
			if pmID != 0 {
				p := entity.Payment{
					OrderID:         order.ID,
					PaymentMethodID: pmID,
					PaymentStatusID: s.Status.PaymentPending,
				}
				if err := s.Repo.CreatePayment(tx, &p); err != nil {
					return err
				}
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6) total from current catalog prices, outside the transaction
	total, err := s.Repo.OrderTotal(orderID)
	if err != nil {
		return nil, err
	}

	return &PlaceOrderRes{OrderID: orderID, Total: roundCurrency(total)}, nil
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
