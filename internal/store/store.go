package store

import (
	"context"
	"errors"
	"time"
)

// Reservation types. Orders placed for delivery are stored as Delivery
// reservations with zero guests, matching the single reservations table.
const (
	TypeDineIn   = "dine-in"
	TypeDelivery = "Delivery"
)

// ErrNotFound is returned when a reservation id does not exist.
var ErrNotFound = errors.New("store: reservation not found")

// Reservation is one row in the reservations table. A delivery order is a
// Reservation with Type Delivery and Guests 0.
type Reservation struct {
	ID           int64     `json:"reservation_number"`
	Date         string    `json:"reservation_date"`
	Time         string    `json:"reservation_time,omitempty"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone_number"`
	Email        string    `json:"email_address"`
	Guests       int       `json:"guests"`
	Type         string    `json:"reservation_type"`
	Address      string    `json:"address,omitempty"`
	DeliveryTime string    `json:"delivery_time,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsOrder reports whether the record is a delivery order rather than a
// dine-in booking.
func (r Reservation) IsOrder() bool {
	return r.Type == TypeDelivery && r.Guests == 0
}

// Store persists reservations and delivery orders.
type Store interface {
	Insert(ctx context.Context, r Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*Reservation, error)
	FindByPhone(ctx context.Context, phone string) ([]Reservation, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteByPhone(ctx context.Context, phone string) (int64, error)
	ListAll(ctx context.Context) ([]Reservation, error)
	ListOrders(ctx context.Context) ([]Reservation, error)
	Close()
}
