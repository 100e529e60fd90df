package sanitize

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/nremp/dashboard/pkg/models"
)

// Note normalizes a stored note document. It reports false if raw is not a
// structured record, in which case the document must be dropped.
func Note(id string, raw Raw) (models.Note, bool) {
	fields, ok := raw.record()
	if !ok {
		return models.Note{}, false
	}

	return models.Note{
		ID: id,
		NoteData: models.NoteData{
			Number:       text(fields["number"]),
			Client:       textOr(fields["client"], models.UnknownClient),
			Category:     textOr(fields["category"], models.Uncategorized),
			Amount:       CoerceAmount(fields["amount"]),
			IssueDate:    CoerceDate(fields["issueDate"]),
			Status:       Status(fields["status"]),
			Material:     text(fields["material"]),
			VehiclePlate: Plate(text(fields["vehiclePlate"])),
		},
		CreatedAt: createdAt(fields["createdAt"]),
	}, true
}

// Status returns StatusPaid only if v is exactly the "Paid" marker.
func Status(v any) models.PaymentStatus {
	if s, ok := v.(string); ok && s == string(models.StatusPaid) {
		return models.StatusPaid
	}
	return models.StatusUnpaid
}

// Plate normalizes a vehicle plate for matching.
func Plate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Vehicle normalizes a vehicle reported by the fleet inventory.
func Vehicle(v models.Vehicle) models.Vehicle {
	v.Plate = Plate(v.Plate)
	v.Brand = strings.TrimSpace(v.Brand)
	v.Model = strings.TrimSpace(v.Model)
	return v
}

func createdAt(v any) int64 {
	n, ok := v.(json.Number)
	if !ok {
		return 0
	}

	if i, err := n.Int64(); err == nil {
		return i
	}

	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}
