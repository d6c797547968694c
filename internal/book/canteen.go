package book

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks an order through the kitchen.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

// MenuItem is a dish offered for sale.
type MenuItem struct {
	Name       string   `json:"name" validate:"required,max=60"`
	PriceCents int64    `json:"price_cents" validate:"gte=0"`
	Tags       []string `json:"tags,omitempty" validate:"dive,alphanum,max=30"`
}

func (m MenuItem) Key() string { return Fold(m.Name) }

func (MenuItem) Kind() Kind { return KindMenu }

func (m MenuItem) String() string {
	s := fmt.Sprintf("%s %s", m.Name, FormatMoney(m.PriceCents))
	if len(m.Tags) > 0 {
		s += "; Tags: " + strings.Join(m.Tags, ", ")
	}
	return s
}

// Order is a customer's request for one or more menu items.
type Order struct {
	ID         string      `json:"id" validate:"required,uuid"`
	Customer   string      `json:"customer" validate:"required,max=100"`
	Phone      string      `json:"phone" validate:"required,numeric,min=3,max=20"`
	Dishes     []string    `json:"dishes" validate:"required,min=1"`
	TotalCents int64       `json:"total_cents" validate:"gte=0"`
	Status     OrderStatus `json:"status" validate:"required,oneof=pending completed"`
	PlacedAt   time.Time   `json:"placed_at"`
}

// ErrTotalOverflow is returned when an order's dishes cost more than an
// amount of cents can hold.
var ErrTotalOverflow = fmt.Errorf("book: order total too large: %w", ErrInvalid)

// NewOrder allocates an order id and prices the dishes.
func NewOrder(customer, phone string, dishes []MenuItem, at time.Time) (Order, error) {
	names := make([]string, 0, len(dishes))
	var total int64
	for _, d := range dishes {
		if d.PriceCents < 0 || total > math.MaxInt64-d.PriceCents {
			return Order{}, ErrTotalOverflow
		}
		names = append(names, d.Name)
		total += d.PriceCents
	}
	return Order{
		ID:         uuid.NewString(),
		Customer:   customer,
		Phone:      phone,
		Dishes:     names,
		TotalCents: total,
		Status:     OrderPending,
		PlacedAt:   at.UTC(),
	}, nil
}

func (o Order) Key() string { return o.ID }

func (Order) Kind() Kind { return KindOrder }

func (o Order) String() string {
	return fmt.Sprintf("%s (%s) %s; Total: %s; Status: %s",
		o.Customer, o.Phone, strings.Join(o.Dishes, ", "), FormatMoney(o.TotalCents), o.Status)
}

// Member is a loyalty-programme customer.
type Member struct {
	Name   string `json:"name" validate:"required,max=100"`
	Phone  string `json:"phone" validate:"required,numeric,min=3,max=20"`
	Email  string `json:"email" validate:"required,email,max=254"`
	Points int    `json:"points" validate:"gte=0"`
}

func (m Member) Key() string { return joinKey(Fold(m.Name), m.Phone) }

func (Member) Kind() Kind { return KindMember }

func (m Member) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Points: %d", m.Name, m.Phone, m.Email, m.Points)
}

// PointsFor returns the loyalty points earned by spending cents: one point
// per whole currency unit.
func PointsFor(cents int64) int {
	if cents <= 0 {
		return 0
	}
	return int(cents / 100)
}

// Employee is a staff member.
type Employee struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,numeric,min=3,max=20"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Position string `json:"position" validate:"required,max=60"`
}

func (e Employee) Key() string { return joinKey(Fold(e.Name), e.Phone) }

func (Employee) Kind() Kind { return KindEmployee }

func (e Employee) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Position: %s", e.Name, e.Phone, e.Email, e.Position)
}
