package entity

import (
	"time"

	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// BusinessSettings holds the per-owner inputs for break-even analysis.
// There is at most one row per user.
type BusinessSettings struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	FixedCosts          money.Amount // Fixed costs per period (rent, salaries).
	TargetProfit        money.Amount // Desired profit per period.
	AverageSellingPrice money.Amount // Average price of one unit sold.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultBusinessSettings returns the all-zero settings reported for owners who never saved any.
func DefaultBusinessSettings(userID uuid.UUID) *BusinessSettings {
	return &BusinessSettings{
		UserID:              userID,
		FixedCosts:          money.Zero,
		TargetProfit:        money.Zero,
		AverageSellingPrice: money.Zero,
	}
}
