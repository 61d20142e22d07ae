package finance

import (
	"testing"
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRatios(t *testing.T) {
	at := day(2024, time.June, 1)
	s := Summarize([]*entity.Transaction{
		income("600000", at),
		income("400000", at),
		expense("700000", at),
	})

	in := BepInput{
		FixedCosts:          money.FromInt(3000000),
		VariableCostPerUnit: money.FromInt(10000),
		SellingPricePerUnit: money.FromInt(25000),
	}
	bep, err := AnalyzeBreakEven(in)
	require.NoError(t, err)
	require.Equal(t, int64(200), bep.BreakEvenUnits)

	r := ComputeRatios(s, in, bep, money.FromInt(1500000))

	assert.Equal(t, "30", r.ProfitMargin.String())
	assert.Equal(t, "70", r.CostRatio.String())
	assert.Equal(t, "42.86", r.ROI.String())
	assert.Equal(t, "333333.33", r.AverageTransactionValue.String())
	assert.Equal(t, "20", r.BreakEvenProgress.String())
	assert.Equal(t, "4000000.00", r.RevenueToBreakEven.String())
	assert.Equal(t, int64(160), r.UnitsToBreakEven)
	assert.Equal(t, int64(300), r.TargetProfitUnits)
	assert.True(t, r.Healthy)
}

func TestComputeRatiosZeroDenominators(t *testing.T) {
	bep, err := AnalyzeBreakEven(BepInput{})
	require.NoError(t, err)

	r := ComputeRatios(Summarize(nil), BepInput{}, bep, money.Zero)

	assert.True(t, r.ProfitMargin.IsZero())
	assert.True(t, r.CostRatio.IsZero())
	assert.True(t, r.ROI.IsZero())
	assert.True(t, r.AverageTransactionValue.IsZero())
	assert.True(t, r.BreakEvenProgress.IsZero())
	assert.True(t, r.RevenueToBreakEven.IsZero())
	assert.Zero(t, r.UnitsToBreakEven)
	assert.Zero(t, r.TargetProfitUnits)
	assert.False(t, r.Healthy)
}

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, "50", GrowthRate(money.FromInt(150), money.FromInt(100)).String())
	assert.Equal(t, "-25", GrowthRate(money.FromInt(75), money.FromInt(100)).String())
	assert.Equal(t, "100", GrowthRate(money.FromInt(5), money.Zero).String())
	assert.True(t, GrowthRate(money.Zero, money.Zero).IsZero())

	// Against a prior loss the sign follows the direction of change.
	assert.Equal(t, "150", GrowthRate(money.FromInt(50), money.FromInt(-100)).String())
	assert.Equal(t, "-50", GrowthRate(money.FromInt(-150), money.FromInt(-100)).String())
	assert.Equal(t, "100", GrowthRate(money.Zero, money.FromInt(-100)).String())
}
