package http

import "time"

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	WarehouseID   string  `json:"warehouseId"`
	RecipientName string  `json:"recipientName"`
	TotalWeightKg float64 `json:"totalWeightKg"`
}

// OrderCreatedResponse returns the identifier of a newly registered order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// QuoteRequest is the body of POST /api/v1/orders/{orderId}/quotes.
type QuoteRequest struct {
	DistanceKm float64 `json:"distanceKm"`
}

// QuoteResponse represents one quote in a ranked listing.
type QuoteResponse struct {
	ID            string    `json:"id"`
	VendorID      string    `json:"vendorId"`
	Price         float64   `json:"price"`
	EstimatedDays int       `json:"estimatedDays"`
	ValidUntil    time.Time `json:"validUntil"`
}

// BindRequest is the body of POST /api/v1/orders/{orderId}/quotes/bind.
type BindRequest struct {
	QuoteID string `json:"quoteId"`
}

// BindResultResponse returns the shipping price fixed by a bind.
type BindResultResponse struct {
	Price float64 `json:"price"`
}

// AdvanceRequest is the body of POST /api/v1/orders/{orderId}/advance.
type AdvanceRequest struct {
	Status string `json:"status"`
}

// DeliveryEventRequest is the body of POST /api/v1/orders/{orderId}/events.
type DeliveryEventRequest struct {
	ShippingPrice float64    `json:"shippingPrice"`
	PaymentMode   string     `json:"paymentMode"`
	Status        string     `json:"status"`
	DeliveryDate  *time.Time `json:"deliveryDate,omitempty"`
	TrackingID    string     `json:"trackingId"`
}

// StatsResponse is the body of GET /api/v1/stats.
type StatsResponse struct {
	ActiveOrders           int64   `json:"activeOrders"`
	TrailingRevenue        float64 `json:"trailingRevenue"`
	AvgDeliveryLatencyDays float64 `json:"avgDeliveryLatencyDays"`
}
