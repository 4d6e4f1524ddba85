package client

import (
	"encoding/json"
	"math"
)

const cartStorageKey = "foodDeliveryCart"

// CartLine is one selected item with a snapshot of its display name and
// unit price at the time it was added.
type CartLine struct {
	FoodID   uint    `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered list of lines; insertion order is display order.
// Every mutation writes through to storage immediately.
type Cart struct {
	storage Storage
	lines   []CartLine
}

func NewCart(storage Storage) *Cart {
	return &Cart{storage: storage}
}

// Load replaces the in-memory lines with whatever storage holds. A missing
// or unreadable entry leaves the cart empty rather than failing.
func (c *Cart) Load() {
	c.lines = nil
	raw, ok := c.storage.Get(cartStorageKey)
	if !ok {
		return
	}
	var lines []CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return
	}
	c.lines = lines
}

// Add merges into an existing line with the same food id, otherwise appends
// a new line with quantity 1.
func (c *Cart) Add(foodID uint, name string, price float64) error {
	for i := range c.lines {
		if c.lines[i].FoodID == foodID {
			c.lines[i].Quantity++
			return c.persist()
		}
	}
	c.lines = append(c.lines, CartLine{FoodID: foodID, Name: name, Price: price, Quantity: 1})
	return c.persist()
}

// Remove drops the line at index; out-of-range is a no-op.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.lines) {
		return nil
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return c.persist()
}

// Clear empties the cart and erases the persisted state.
func (c *Cart) Clear() error {
	c.lines = nil
	return c.storage.Delete(cartStorageKey)
}

// Total is Σ price×quantity rounded to currency precision.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return math.Round(total*100) / 100
}

// Lines returns a copy; callers mutate the cart only through its methods.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) persist() error {
	data, err := json.Marshal(c.lines)
	if err != nil {
		return err
	}
	return c.storage.Set(cartStorageKey, string(data))
}
