package domain

// Rental tracks one copy of a game lent to a customer.
//
// All dates are yyyy-mm-dd calendar dates; the request layer normalizes
// incoming timestamps before the core ever sees them. A nil ReturnDate
// means the rental is still active and occupies one unit of the game's
// stock. OriginalPriceCents is snapshotted from the game's price at
// creation time; later price changes never touch it. DelayFeeCents is
// set exactly once, together with ReturnDate.
type Rental struct {
	ID                 int32   `json:"id"`
	CustomerID         int32   `json:"customer_id"`
	GameID             int32   `json:"game_id"`
	RentDate           string  `json:"rent_date"`
	DaysRented         int32   `json:"days_rented"`
	ReturnDate         *string `json:"return_date"`
	OriginalPriceCents int32   `json:"original_price_cents"`
	DelayFeeCents      *int32  `json:"delay_fee_cents"`
}

// Returned reports whether the rental has left the Active state.
func (r *Rental) Returned() bool {
	return r.ReturnDate != nil
}

// RentalWithNames is the display join of a rental with the customer and
// game it references.
type RentalWithNames struct {
	Rental
	CustomerName string `json:"customer_name"`
	GameName     string `json:"game_name"`
}
