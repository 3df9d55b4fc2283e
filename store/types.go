package store

import (
	"time"
)

// Cents is a money amount in the lowest currency unit. Keeping prices
// integral avoids floating-point errors; a converter accepts decimal
// strings like "19.99".
type Cents int64

// Status is the lifecycle state of an order.
type Status int8

const (
	StatusPending Status = iota
	StatusPaid
	StatusShipped
	StatusCancelled
)

// Channel is a flag set recording where an order came from. A single
// order can arrive through several channels at once, e.g. started on
// web and completed over the phone.
type Channel uint8

const (
	ChannelWeb     Channel = 1 << iota // online storefront
	ChannelMobile                      // mobile app
	ChannelPhone                       // call center
	ChannelPartner                     // partner integrations
)

// Address is a physical shipping or billing address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Address  *Address `json:"address,omitempty"`
	IsActive bool     `json:"is_active"`
}

// Product represents an individual item available for sale.
type Product struct {
	ID          int64             `json:"id"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       Cents             `json:"price_cents"`
	Inventory   int               `json:"inventory_count"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// OrderItem is a product line within an order. It snapshots the price at
// the time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Cents  `json:"unit_price"`
}

// Order represents a transaction made by a customer.
type Order struct {
	ID        int64         `json:"id"`
	Customer  *Customer     `json:"customer,omitempty"`
	Status    Status        `json:"status"`
	Channels  Channel       `json:"channels"`
	Total     Cents         `json:"total_cents"`
	Items     []OrderItem   `json:"items"`
	ShipTo    *Address      `json:"ship_to,omitempty"`
	Window    [2]time.Time  `json:"delivery_window"` // [earliest, latest]
	Lead      time.Duration `json:"lead"`
	OrderedAt time.Time     `json:"ordered_at"`
}
