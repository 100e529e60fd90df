// Package stats derives the dashboard statistics from normalized notes and
// vehicles.
//
// All functions are pure. "now" is passed in by the caller and only its
// calendar month and day are used.
package stats

import (
	"time"

	"github.com/nremp/dashboard/internal/types"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TrendMonths is the number of points of the monthly trend.
const TrendMonths = 6

// RecentNotes is the number of notes in the recent notes list.
const RecentNotes = 5

// Financial is the financial summary.
type Financial struct {
	MonthTotal   decimal.Decimal `json:"monthTotal" example:"1520.75"` // Sum of notes issued in the current month
	DailyAverage decimal.Decimal `json:"dailyAverage" example:"50.69"` // Month total divided by the current day of month
	Paid         decimal.Decimal `json:"paid" example:"9800"`          // Lifetime total of paid notes
	Unpaid       decimal.Decimal `json:"unpaid" example:"1200.5"`      // Lifetime total of unpaid notes
}

// CategoryTotal is the accumulated amount of one category.
type CategoryTotal struct {
	Name  string          `json:"name" example:"Fuel"`
	Total decimal.Decimal `json:"total" example:"125"`
}

// MonthTotal is one point of the monthly trend.
type MonthTotal struct {
	Month types.Month     `json:"month" example:"2024-03"`
	Total decimal.Decimal `json:"total" example:"1520.75"`
}

// Dashboard contains all derived statistics of the dashboard view.
type Dashboard struct {
	Financial
	Categories []CategoryTotal `json:"categories"`
	Trend      []MonthTotal    `json:"trend"`
	Recent     []models.Note   `json:"recent"`
}

// Compute derives the dashboard statistics. notes are expected newest
// first.
func Compute(notes []models.Note, now time.Time) Dashboard {
	recent := notes
	if len(recent) > RecentNotes {
		recent = recent[:RecentNotes]
	}

	return Dashboard{
		Financial:  Summarize(notes, now),
		Categories: Categories(notes),
		Trend:      Trend(notes, now),
		Recent:     slices.Clone(recent),
	}
}

// Summarize computes the financial summary.
func Summarize(notes []models.Note, now time.Time) Financial {
	current := types.MonthOf(now)

	var f Financial
	for _, n := range notes {
		if current.Contains(n.IssueDate) {
			f.MonthTotal = f.MonthTotal.Add(n.Amount)
		}

		if n.IsPaid() {
			f.Paid = f.Paid.Add(n.Amount)
		} else {
			f.Unpaid = f.Unpaid.Add(n.Amount)
		}
	}

	if f.MonthTotal.IsPositive() {
		f.DailyAverage = f.MonthTotal.Div(decimal.NewFromInt(int64(now.Day())))
	}

	return f
}

// Categories returns the total per category, descending by total. Equal
// totals keep the order in which the categories first appear.
func Categories(notes []models.Note) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, n := range notes {
		name := n.Category
		if name == "" {
			name = models.Uncategorized
		}

		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(n.Amount)
	}

	categories := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		categories = append(categories, CategoryTotal{Name: name, Total: totals[name]})
	}

	slices.SortStableFunc(categories, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return categories
}

// Trend returns the totals of the trailing TrendMonths calendar months
// ending with the month of now, oldest first. Months without notes are
// included with a zero total.
func Trend(notes []models.Note, now time.Time) []MonthTotal {
	months := types.Trailing(now, TrendMonths)

	totals := make(map[types.Month]decimal.Decimal, len(months))
	for _, m := range months {
		totals[m] = decimal.Zero
	}

	for _, n := range notes {
		key := types.MonthOf(n.IssueDate)
		if total, ok := totals[key]; ok {
			totals[key] = total.Add(n.Amount)
		}
	}

	trend := make([]MonthTotal, 0, len(months))
	for _, m := range months {
		trend = append(trend, MonthTotal{Month: m, Total: totals[m]})
	}
	return trend
}

// CostByPlate accumulates the amounts of all notes associated with a
// vehicle. Plates are matched in their normalized form.
func CostByPlate(notes []models.Note) map[string]decimal.Decimal {
	costs := make(map[string]decimal.Decimal)
	for _, n := range notes {
		if n.VehiclePlate == "" {
			continue
		}
		costs[n.VehiclePlate] = costs[n.VehiclePlate].Add(n.Amount)
	}
	return costs
}

// Plates returns the plates of a cost map in sorted order.
func Plates(costs map[string]decimal.Decimal) []string {
	plates := maps.Keys(costs)
	slices.Sort(plates)
	return plates
}
