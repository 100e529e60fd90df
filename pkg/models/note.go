package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment state of a Note.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "Paid"
	StatusUnpaid PaymentStatus = "Unpaid"
)

// Default values for text fields that must never be empty.
const (
	UnknownClient    = "Unknown Client"
	Uncategorized    = "Uncategorized"
	ImportedCategory = "Imported"
)

// NoteData contains the fields of a Note that can be written by users.
type NoteData struct {
	Number       string          `json:"number,omitempty" example:"000123"`        // Document number
	Client       string          `json:"client" example:"Posto Central"`           // Client or supplier name
	Category     string          `json:"category" example:"Fuel"`                  // Category used for the breakdown
	Amount       decimal.Decimal `json:"amount" example:"1234.56"`                 // Non-negative amount
	IssueDate    time.Time       `json:"issueDate" example:"2024-03-05T00:00:00Z"` // Calendar date of issue, midnight UTC
	Status       PaymentStatus   `json:"status" example:"Paid"`                    // Paid or Unpaid
	Material     string          `json:"material,omitempty" example:"Diesel S10"`  // Material or service description
	VehiclePlate string          `json:"vehiclePlate,omitempty" example:"BRA2E19"` // Normalized plate of the associated vehicle
}

// Note is a normalized financial record (invoice or expense).
type Note struct {
	ID string `json:"id" example:"0190d3a4-5f6e-7c2b-9a1d-3e4f5a6b7c8d"`
	NoteData
	CreatedAt int64 `json:"createdAt" example:"1709600000000"` // Server assigned creation time in milliseconds, used for ordering
}

// IsPaid reports whether the note has been paid.
func (n NoteData) IsPaid() bool {
	return n.Status == StatusPaid
}

// Document returns the representation of the note data in the document store.
//
// The amount is written as a JSON number and the issue date as an
// RFC 3339 timestamp in UTC.
func (n NoteData) Document() map[string]any {
	doc := map[string]any{
		"client":    n.Client,
		"category":  n.Category,
		"amount":    json.Number(n.Amount.String()),
		"issueDate": n.IssueDate.UTC().Format(time.RFC3339),
		"status":    string(n.Status),
	}

	if n.Number != "" {
		doc["number"] = n.Number
	}
	if n.Material != "" {
		doc["material"] = n.Material
	}
	if n.VehiclePlate != "" {
		doc["vehiclePlate"] = n.VehiclePlate
	}

	return doc
}

// NotePatch is a partial update of a Note. Nil fields are left untouched,
// empty optional strings remove the field.
type NotePatch struct {
	Number       *string          `json:"number,omitempty"`
	Client       *string          `json:"client,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	IssueDate    *time.Time       `json:"issueDate,omitempty"`
	Status       *PaymentStatus   `json:"status,omitempty"`
	Material     *string          `json:"material,omitempty"`
	VehiclePlate *string          `json:"vehiclePlate,omitempty"`
}

// Fields returns the document fields the patch changes. A nil value
// removes the field from the stored document.
func (p NotePatch) Fields() map[string]any {
	fields := make(map[string]any)

	optional := func(name string, value *string) {
		if value == nil {
			return
		}
		if v := strings.TrimSpace(*value); v != "" {
			fields[name] = v
		} else {
			fields[name] = nil
		}
	}

	optional("number", p.Number)
	optional("material", p.Material)

	if p.VehiclePlate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*p.VehiclePlate))
		optional("vehiclePlate", &plate)
	}
	if p.Client != nil {
		fields["client"] = strings.TrimSpace(*p.Client)
	}
	if p.Category != nil {
		fields["category"] = strings.TrimSpace(*p.Category)
	}
	if p.Amount != nil {
		fields["amount"] = json.Number(p.Amount.String())
	}
	if p.IssueDate != nil {
		fields["issueDate"] = p.IssueDate.UTC().Format(time.RFC3339)
	}
	if p.Status != nil {
		fields["status"] = string(*p.Status)
	}

	return fields
}

// Empty reports whether the patch changes nothing.
func (p NotePatch) Empty() bool {
	return len(p.Fields()) == 0
}
