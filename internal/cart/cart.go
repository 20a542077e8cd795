// Package cart keeps each browser session's shopping cart server-side.
// The cart is presentation state: the backend recomputes authoritative
// prices at checkout, so the totals computed here only drive what the
// cart page displays.
package cart

import (
    "github.com/velora/salon-web/internal/model"
)

// Item is one line in the cart. Unit price and name are denormalized
// from the product catalog at add time for display.
type Item struct {
    ProductID      uint64 `json:"product_id"`
    Name           string `json:"name"`
    UnitPriceCents uint32 `json:"unit_price_cents"`
    Quantity       int    `json:"quantity"`
}

// Cart is the session's current cart contents.
type Cart struct {
    Items []Item `json:"items"`
}

// maxLineQuantity caps one cart line. Nobody buys a hundred serums in
// one order; anything past this is either a typo or someone probing
// for arithmetic overflow in the totals.
const maxLineQuantity = 100

// Add merges a line into the cart: an existing line for the same
// product gains quantity, otherwise a new line is appended. Quantities
// are clamped to [1, maxLineQuantity] per line.
func (c *Cart) Add(p model.Product, quantity int) {
    if quantity < 1 {
        quantity = 1
    }
    if quantity > maxLineQuantity {
        quantity = maxLineQuantity
    }
    for i := range c.Items {
        if c.Items[i].ProductID == p.ID {
            q := c.Items[i].Quantity + quantity
            if q > maxLineQuantity {
                q = maxLineQuantity
            }
            c.Items[i].Quantity = q
            return
        }
    }
    c.Items = append(c.Items, Item{
        ProductID:      p.ID,
        Name:           p.Name,
        UnitPriceCents: p.PriceCents,
        Quantity:       quantity,
    })
}

// Remove drops the line for the given product. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID uint64) {
    for i := range c.Items {
        if c.Items[i].ProductID == productID {
            c.Items = append(c.Items[:i], c.Items[i+1:]...)
            return
        }
    }
}

// SubtotalCents sums every line's unit price times quantity. Summed in
// uint64 so no combination of 32-bit prices and clamped quantities can
// wrap the display total.
func (c *Cart) SubtotalCents() uint64 {
    var total uint64
    for _, it := range c.Items {
        total += uint64(it.UnitPriceCents) * uint64(it.Quantity)
    }
    return total
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
    return len(c.Items) == 0
}
