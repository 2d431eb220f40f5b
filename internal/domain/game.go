package domain

// Game is one title in the rental catalog. StockTotal is the number of
// physical copies owned; it bounds how many rentals of this game may be
// active at the same time. The catalog is read-only for this service,
// rows are seeded through migrations.
type Game struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	Image            string `json:"image"`
	StockTotal       int32  `json:"stock_total"`
	PricePerDayCents int32  `json:"price_per_day_cents"`
}
