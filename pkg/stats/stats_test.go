package stats_test

import (
	"testing"
	"time"

	"github.com/nremp/dashboard/internal/types"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/sanitize"
	"github.com/nremp/dashboard/pkg/stats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(category string, amount string, issued time.Time, status models.PaymentStatus) models.Note {
	return models.Note{
		NoteData: models.NoteData{
			Client:    "ACME",
			Category:  category,
			Amount:    decimal.RequireFromString(amount),
			IssueDate: issued,
			Status:    status,
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTrendWithoutNotes(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	trend := stats.Trend(nil, now)
	require.Len(t, trend, stats.TrendMonths)

	want := []string{"2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}
	for i, point := range trend {
		assert.Equal(t, want[i], point.Month.String())
		assert.True(t, point.Total.IsZero(), "month %s is not zero", point.Month)
	}
}

func TestTrendBuckets(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	notes := []models.Note{
		note("Fuel", "100", date(2024, 3, 1), models.StatusPaid),
		note("Fuel", "50.5", date(2024, 3, 31), models.StatusUnpaid),
		note("Fuel", "20", date(2024, 1, 10), models.StatusPaid),
		note("Fuel", "999", date(2023, 9, 30), models.StatusPaid), // outside the window
		note("Fuel", "999", date(2024, 4, 1), models.StatusPaid),  // in the future
	}

	trend := stats.Trend(notes, now)
	require.Len(t, trend, 6)

	totals := make(map[string]string)
	for _, point := range trend {
		totals[point.Month.String()] = point.Total.String()
	}

	assert.Equal(t, map[string]string{
		"2023-10": "0",
		"2023-11": "0",
		"2023-12": "0",
		"2024-01": "20",
		"2024-02": "0",
		"2024-03": "150.5",
	}, totals)
}

func TestTrendKeysAreStable(t *testing.T) {
	now := time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)

	trend := stats.Trend(nil, now)
	assert.Equal(t, types.NewMonth(2024, time.February), trend[4].Month)
	assert.Equal(t, types.NewMonth(2023, time.October), trend[0].Month)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	notes := []models.Note{
		note("A", "100", date(2024, 3, 1), models.StatusPaid),
		note("A", "20", date(2024, 3, 3), models.StatusUnpaid),
		note("B", "500", date(2024, 2, 28), models.StatusPaid),
		note("B", "5", date(2023, 3, 2), models.StatusUnpaid),
	}

	f := stats.Summarize(notes, now)
	assert.Equal(t, "120", f.MonthTotal.String())
	assert.Equal(t, "30", f.DailyAverage.String())
	assert.Equal(t, "600", f.Paid.String())
	assert.Equal(t, "25", f.Unpaid.String())
}

func TestDailyAverageUsesDayOfMonth(t *testing.T) {
	tests := []struct {
		day   int
		total string
	}{
		{1, "90"},
		{3, "90"},
		{7, "90"},
		{31, "90"},
	}

	for _, tt := range tests {
		now := date(2024, 1, tt.day)
		notes := []models.Note{note("A", tt.total, date(2024, 1, 1), models.StatusPaid)}

		f := stats.Summarize(notes, now)
		want := decimal.RequireFromString(tt.total).Div(decimal.NewFromInt(int64(tt.day)))
		assert.True(t, want.Equal(f.DailyAverage), "day %d: want %s, got %s", tt.day, want, f.DailyAverage)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	f := stats.Summarize(nil, time.Now())
	assert.True(t, f.MonthTotal.IsZero())
	assert.True(t, f.DailyAverage.IsZero())
	assert.True(t, f.Paid.IsZero())
	assert.True(t, f.Unpaid.IsZero())
}

func TestSummarizeCurrentMonthInLocation(t *testing.T) {
	// 2024-03-01 01:00 in UTC+3 is still February in UTC
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2024, 3, 1, 1, 0, 0, 0, loc)

	notes := []models.Note{
		note("A", "10", date(2024, 3, 1), models.StatusPaid),
		note("A", "99", date(2024, 2, 29), models.StatusPaid),
	}

	f := stats.Summarize(notes, now)
	assert.Equal(t, "10", f.MonthTotal.String())
}

func TestCategories(t *testing.T) {
	now := time.Now()
	notes := []models.Note{
		note("A", "100", now, models.StatusPaid),
		note("B", "50", now, models.StatusPaid),
		note("A", "25", now, models.StatusPaid),
	}

	categories := stats.Categories(notes)
	require.Len(t, categories, 2)
	assert.Equal(t, "A", categories[0].Name)
	assert.Equal(t, "125", categories[0].Total.String())
	assert.Equal(t, "B", categories[1].Name)
	assert.Equal(t, "50", categories[1].Total.String())
}

func TestCategoriesStableForEqualTotals(t *testing.T) {
	now := time.Now()
	notes := []models.Note{
		note("C", "10", now, models.StatusPaid),
		note("A", "10", now, models.StatusPaid),
		note("B", "30", now, models.StatusPaid),
		note("", "10", now, models.StatusPaid),
	}

	categories := stats.Categories(notes)

	var names []string
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"B", "C", "A", models.Uncategorized}, names)
}

func TestCompute(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	var notes []models.Note
	for i := range 7 {
		n := note("Fuel", "10", date(2024, 3, 1), models.StatusPaid)
		n.ID = string(rune('a' + i))
		notes = append(notes, n)
	}

	d := stats.Compute(notes, now)
	assert.Equal(t, "70", d.MonthTotal.String())
	assert.Equal(t, "7", d.DailyAverage.String())
	assert.Len(t, d.Trend, 6)
	assert.Len(t, d.Categories, 1)

	require.Len(t, d.Recent, stats.RecentNotes)
	assert.Equal(t, "a", d.Recent[0].ID)
	assert.Equal(t, "e", d.Recent[4].ID)
}

func TestCostByPlateNormalizedJoin(t *testing.T) {
	raw := sanitize.RawJSON([]byte(`{"client":"ACME","amount":150,"vehiclePlate":"abc1234 "}`))
	n, ok := sanitize.Note("n1", raw)
	require.True(t, ok)

	vehicle := sanitize.Vehicle(models.Vehicle{ID: 1, Plate: " abc1234", Status: models.VehicleActive})

	summary := stats.Fleet([]models.Note{n}, []models.Vehicle{vehicle})
	require.Len(t, summary.Vehicles, 1)
	assert.Equal(t, "ABC1234", summary.Vehicles[0].Plate)
	assert.Equal(t, "150", summary.Vehicles[0].Cost.String())
}

func TestFleet(t *testing.T) {
	now := time.Now()

	withPlate := func(plate, amount string) models.Note {
		n := note("Fuel", amount, now, models.StatusPaid)
		n.VehiclePlate = plate
		return n
	}

	notes := []models.Note{
		withPlate("BRA2E19", "100"),
		withPlate("BRA2E19", "50"),
		withPlate("XYZ1234", "25"),
		withPlate("ZZZ0000", "5"), // not part of the fleet
		note("Office", "1000", now, models.StatusPaid),
	}

	vehicles := []models.Vehicle{
		{ID: 1, Plate: "BRA2E19", Status: models.VehicleActive},
		{ID: 2, Plate: "XYZ1234", Status: models.VehicleInMaintenance},
		{ID: 3, Plate: "ABC9876", Status: models.VehicleActive},
		{ID: 4, Plate: "DEF5678", Status: models.VehicleInactive},
	}

	summary := stats.Fleet(notes, vehicles)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Active)
	assert.Equal(t, map[models.VehicleStatus]int{
		models.VehicleActive:        2,
		models.VehicleInMaintenance: 1,
		models.VehicleInactive:      1,
	}, summary.StatusCounts)

	assert.Equal(t, "180", summary.TotalCost.String())
	assert.Equal(t, []string{"BRA2E19", "XYZ1234", "ZZZ0000"}, stats.Plates(summary.CostByPlate))

	costs := make(map[string]string)
	for _, v := range summary.Vehicles {
		costs[v.Plate] = v.Cost.String()
	}
	assert.Equal(t, map[string]string{
		"BRA2E19": "150",
		"XYZ1234": "25",
		"ABC9876": "0",
		"DEF5678": "0",
	}, costs)
}

func TestFleetEmpty(t *testing.T) {
	summary := stats.Fleet(nil, nil)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.StatusCounts)
	assert.True(t, summary.TotalCost.IsZero())
	assert.NotNil(t, summary.Vehicles)
}
