package jobs

import (
	"context"
	"time"

	"boardcamp-backend/internal/logger"
)

// ReportOverdueRentals logs every active rental held past its agreed
// period. Read-only: rentals stay Active until the customer actually
// returns them, at which point the delay fee is assessed.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		overdue, err := jr.rentals.ListOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue rentals report", "count", len(overdue), "date", today)
		for _, rt := range overdue {
			logger.Debug("Overdue rental",
				"rental_id", rt.ID,
				"customer", rt.CustomerName,
				"game", rt.GameName,
				"rent_date", rt.RentDate,
				"days_rented", rt.DaysRented)
		}
	})
}
