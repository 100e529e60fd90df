package notes

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/sanitize"
	"github.com/shopspring/decimal"
)

// Validation codes.
const (
	CodeRequired      = "required"
	CodeInvalidAmount = "invalid_amount"
	CodeInvalidDate   = "invalid_date"
	CodeInvalidStatus = "invalid_status"
)

// Violations maps a field name to the code of its validation failure.
type Violations map[string]string

// Empty reports whether there are no violations.
func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "invalid note: " + strings.Join(parts, ", ")
}

// Input is a note as entered manually. Amount and date are text as typed.
type Input struct {
	Number       string `json:"number" example:"000123"`
	Client       string `json:"client" validate:"required" example:"Posto Central"`
	Category     string `json:"category" example:"Fuel"`
	Amount       string `json:"amount" validate:"required,amount" example:"1234.56"`          // Plain ("1234.56") or localized ("1.234,56") decimal
	IssueDate    string `json:"issueDate" validate:"required,date" example:"2024-03-05"`      // ISO 8601 date or DD/MM/YYYY
	Status       string `json:"status" validate:"omitempty,oneof=Paid Unpaid" example:"Paid"` // Unpaid if empty
	Material     string `json:"material" example:"Diesel S10"`
	VehiclePlate string `json:"vehiclePlate" example:"BRA2E19"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})

	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, ok := parseAmount(fl.Field().String())
		return ok
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, ok := sanitize.ParseDate(fl.Field().String())
		return ok
	})

	return v
}

// parseAmount accepts plain decimals and the localized format with "."
// grouping and "," decimal separator. Negative amounts are invalid.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		var ok bool
		if d, ok = sanitize.ParseAmount(s); !ok {
			return decimal.Zero, false
		}
	}

	if d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// Validate checks the input and returns nil or Violations.
func (in Input) Validate() error {
	in.Client = strings.TrimSpace(in.Client)
	in.Amount = strings.TrimSpace(in.Amount)
	in.IssueDate = strings.TrimSpace(in.IssueDate)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make(Violations)
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			violations[e.Field()] = CodeRequired
		case "amount":
			violations[e.Field()] = CodeInvalidAmount
		case "date":
			violations[e.Field()] = CodeInvalidDate
		case "oneof":
			violations[e.Field()] = CodeInvalidStatus
		default:
			violations[e.Field()] = e.Tag()
		}
	}
	return violations
}

// Data returns the normalized note data. The input must be valid.
func (in Input) Data() models.NoteData {
	amount, _ := parseAmount(in.Amount)
	date, _ := sanitize.ParseDate(strings.TrimSpace(in.IssueDate))

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.Uncategorized
	}

	return models.NoteData{
		Number:       strings.TrimSpace(in.Number),
		Client:       strings.TrimSpace(in.Client),
		Category:     category,
		Amount:       amount,
		IssueDate:    date,
		Status:       sanitize.Status(strings.TrimSpace(in.Status)),
		Material:     strings.TrimSpace(in.Material),
		VehiclePlate: sanitize.Plate(in.VehiclePlate),
	}
}

// Patch returns a patch that sets every field of the note to the input.
// Empty optional fields are removed from the stored note.
func (in Input) Patch() models.NotePatch {
	data := in.Data()

	return models.NotePatch{
		Number:       &data.Number,
		Client:       &data.Client,
		Category:     &data.Category,
		Amount:       &data.Amount,
		IssueDate:    &data.IssueDate,
		Status:       &data.Status,
		Material:     &data.Material,
		VehiclePlate: &data.VehiclePlate,
	}
}

// validatePatch checks the fields a patch sets.
func validatePatch(p models.NotePatch) error {
	violations := make(Violations)

	if p.Client != nil && strings.TrimSpace(*p.Client) == "" {
		violations["client"] = CodeRequired
	}
	if p.Amount != nil && p.Amount.IsNegative() {
		violations["amount"] = CodeInvalidAmount
	}
	if p.IssueDate != nil && p.IssueDate.IsZero() {
		violations["issueDate"] = CodeInvalidDate
	}
	if p.Status != nil && *p.Status != models.StatusPaid && *p.Status != models.StatusUnpaid {
		violations["status"] = CodeInvalidStatus
	}

	if violations.Empty() {
		return nil
	}
	return violations
}
