package sanitize_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/sanitize"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, v any) sanitize.Raw {
	b, err := json.Marshal(v)
	require.Nil(t, err)
	return sanitize.RawJSON(b)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1.234,56", "1234.56", true},
		{"1.000.000,01", "1000000.01", true},
		{"12,5", "12.5", true},
		{" 42 ", "42", true},
		{"abc", "0", false},
		{"", "0", false},
		{"1,2,3", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := sanitize.ParseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(d), "got %s", d)
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Number", json.Number("99.9"), "99.9"},
		{"Float", 12.25, "12.25"},
		{"Locale string", "1.234,56", "1234.56"},
		{"Garbage", "R$ abc", "0"},
		{"Negative number", json.Number("-5"), "0"},
		{"Negative string", "-5,00", "0"},
		{"Missing", nil, "0"},
		{"Bool", true, "0"},
		{"Object", map[string]any{"v": 1}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sanitize.CoerceAmount(tt.in)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(d), "got %s", d)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"05/03/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"5/3/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"31/12/1999", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-05T10:30:00Z", time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-05T01:00:00-03:00", time.Date(2024, 3, 5, 4, 0, 0, 0, time.UTC), true},
		{"Mar 5, 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"31/02/2024", time.Time{}, false},
		{"13/13/2024", time.Time{}, false},
		{"yesterday", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := sanitize.ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(d), "got %s", d)
		})
	}
}

func TestCoerceDateFallsBackToEpoch(t *testing.T) {
	assert.Equal(t, sanitize.Epoch, sanitize.CoerceDate("not a date"))
	assert.Equal(t, sanitize.Epoch, sanitize.CoerceDate(nil))
	assert.Equal(t, sanitize.Epoch, sanitize.CoerceDate(json.Number("1700000000")))
	assert.Equal(t, time.Unix(0, 0).UTC(), sanitize.Epoch)
}

func TestNote(t *testing.T) {
	note, ok := sanitize.Note("n1", raw(t, map[string]any{
		"number":       " 0042 ",
		"client":       "  Posto Central ",
		"category":     "Fuel",
		"amount":       "1.234,56",
		"issueDate":    "05/03/2024",
		"status":       "Paid",
		"material":     "Diesel",
		"vehiclePlate": "abc1234 ",
		"createdAt":    1709600000000,
	}))

	require.True(t, ok)
	assert.Equal(t, "n1", note.ID)
	assert.Equal(t, "0042", note.Number)
	assert.Equal(t, "Posto Central", note.Client)
	assert.Equal(t, "Fuel", note.Category)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(note.Amount))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), note.IssueDate)
	assert.Equal(t, models.StatusPaid, note.Status)
	assert.Equal(t, "Diesel", note.Material)
	assert.Equal(t, "ABC1234", note.VehiclePlate)
	assert.Equal(t, int64(1709600000000), note.CreatedAt)
}

func TestNoteDefaults(t *testing.T) {
	note, ok := sanitize.Note("n2", raw(t, map[string]any{
		"client":    "   ",
		"amount":    "garbage",
		"createdAt": "yesterday",
	}))

	require.True(t, ok)
	assert.Equal(t, models.UnknownClient, note.Client)
	assert.Equal(t, models.Uncategorized, note.Category)
	assert.True(t, note.Amount.IsZero())
	assert.Equal(t, sanitize.Epoch, note.IssueDate)
	assert.Equal(t, models.StatusUnpaid, note.Status)
	assert.Equal(t, "", note.VehiclePlate)
	assert.Equal(t, int64(0), note.CreatedAt)
}

func TestNoteMissingClient(t *testing.T) {
	for _, doc := range []map[string]any{
		{},
		{"client": nil},
		{"client": ""},
		{"client": false},
		{"amount": 10},
	} {
		note, ok := sanitize.Note("id", raw(t, doc))
		require.True(t, ok)
		assert.Equal(t, "Unknown Client", note.Client, "document %v", doc)
	}
}

func TestNoteRejectsNonRecords(t *testing.T) {
	for _, doc := range []string{`null`, `42`, `"text"`, `true`, `[1,2]`, ``, `{broken`} {
		_, ok := sanitize.Note("id", sanitize.RawJSON([]byte(doc)))
		assert.False(t, ok, "document %q must be rejected", doc)
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, models.StatusPaid, sanitize.Status("Paid"))

	for _, v := range []any{"", nil, "pago", "Pago", "PAID", "paid", " Paid", true, json.Number("1")} {
		assert.Equal(t, models.StatusUnpaid, sanitize.Status(v), "status %v", v)
	}
}

func TestPlate(t *testing.T) {
	assert.Equal(t, "ABC1234", sanitize.Plate("abc1234 "))
	assert.Equal(t, "BRA2E19", sanitize.Plate("\tbra2e19"))
}

func TestVehicle(t *testing.T) {
	v := sanitize.Vehicle(models.Vehicle{ID: 1, Plate: " xyz1234", Brand: " Volvo ", Model: "FH "})
	assert.Equal(t, "XYZ1234", v.Plate)
	assert.Equal(t, "Volvo", v.Brand)
	assert.Equal(t, "FH", v.Model)
}

func TestUser(t *testing.T) {
	u, ok := sanitize.User("key", raw(t, map[string]any{"uid": "u1", "email": "a@example.com", "role": "editor"}))
	require.True(t, ok)
	assert.Equal(t, models.UserAccount{UID: "u1", Email: "a@example.com", Role: models.RoleEditor}, u)

	u, ok = sanitize.User("key", raw(t, map[string]any{"role": "superuser"}))
	require.True(t, ok)
	assert.Equal(t, "key", u.UID)
	assert.Equal(t, models.RoleViewer, u.Role)

	_, ok = sanitize.User("key", sanitize.RawJSON([]byte(`"admin"`)))
	assert.False(t, ok)
}
