package model

import "time"

// OrderItem is one purchased line inside an order.
//
// Fields:
//  ProductID      – purchased product.
//  Name           – denormalized product name.
//  UnitPriceCents – unit price at purchase time.
//  Quantity       – number of units.
type OrderItem struct {
    ProductID      uint64 `json:"product_id"`
    Name           string `json:"name"`
    UnitPriceCents uint32 `json:"unit_price_cents"`
    Quantity       int    `json:"quantity"`
}

// Order is a completed checkout as reported by the backend.
//
// Fields:
//  ID         – order identifier.
//  Items      – purchased lines.
//  TotalCents – grand total in cents.
//  Status     – PLACED, PAID, SHIPPED or CANCELLED.
//  CreatedAt  – placement timestamp (UTC).
type Order struct {
    ID         uint64      `json:"id"`
    Items      []OrderItem `json:"items"`
    TotalCents uint32      `json:"total_cents"`
    Status     string      `json:"status"`
    CreatedAt  time.Time   `json:"created_at"`
}
