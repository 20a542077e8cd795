package model

// Service describes a bookable salon treatment as returned by the
// backend catalog endpoints. Prices are kept in cents; the frontend
// never does currency math on floats.
//
// Fields:
//  ID          – catalog identifier.
//  Name        – display name (e.g. "Balayage").
//  Description – marketing copy shown on the detail page.
//  Category    – grouping tag (e.g. HAIR, NAILS, SPA).
//  DurationMin – appointment length in minutes.
//  PriceCents  – price in cents.
type Service struct {
    ID          uint64 `json:"id"`
    Name        string `json:"name"`
    Description string `json:"description"`
    Category    string `json:"category"`
    DurationMin int    `json:"duration_min"`
    PriceCents  uint32 `json:"price_cents"`
}

// Product is a retail item sold through the shop pages.
//
// Fields:
//  ID          – catalog identifier.
//  Name        – display name.
//  Description – product copy.
//  PriceCents  – unit price in cents.
//  InStock     – whether the backend reports available inventory.
type Product struct {
    ID          uint64 `json:"id"`
    Name        string `json:"name"`
    Description string `json:"description"`
    PriceCents  uint32 `json:"price_cents"`
    InStock     bool   `json:"in_stock"`
}
