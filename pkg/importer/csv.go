package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/sanitize"
)

// ErrNoValidRows is returned when an import contains no row that can be
// turned into a note.
var ErrNoValidRows = errors.New("the CSV file contains no valid rows")

// ErrNoFile is returned when an import request carries no CSV file.
var ErrNoFile = errors.New("you must send a file to this endpoint")

// Reasons a row is skipped.
const (
	ReasonMissingClient = "missing_client"
	ReasonMissingDate   = "missing_date"
	ReasonMissingAmount = "missing_amount"
)

// Column aliases, in order of preference.
var (
	columnAmount   = []string{"Valor", "Valor Total", "Amount"}
	columnDate     = []string{"Data", "data", "Data Emissao", "dataEmissao", "Date"}
	columnClient   = []string{"Cliente", "Fornecedor", "Client"}
	columnNumber   = []string{"N Nota", "nnota", "nNota", "Number"}
	columnPlate    = []string{"Placa", "placa", "Plate"}
	columnStatus   = []string{"Status"}
	columnCategory = []string{"Categoria", "Category"}
	columnMaterial = []string{"Material/Serviço", "Material"}
)

// SkippedRow is a row that was not imported.
type SkippedRow struct {
	Line   int    `json:"line" example:"4"`                // Line of the row in the CSV file
	Reason string `json:"reason" example:"missing_client"` // Why the row was skipped
}

// Result is the outcome of parsing an import file.
type Result struct {
	Notes   []models.NoteData `json:"notes"`   // Valid notes, in file order
	Skipped []SkippedRow      `json:"skipped"` // Rows that are not imported
}

// row gives access to the fields of a record by column alias.
type row struct {
	columns map[string]int
	record  []string
}

// get returns the first non-empty value of the aliases.
func (r row) get(aliases []string) string {
	for _, alias := range aliases {
		i, ok := r.columns[alias]
		if !ok || i >= len(r.record) {
			continue
		}
		if v := strings.TrimSpace(r.record[i]); v != "" {
			return v
		}
	}
	return ""
}

// ParseCSV parses a CSV file with a header line into notes.
//
// Every field is validated like a stored document. Rows without a client,
// a parseable date or a positive amount are skipped. If no row is valid,
// ErrNoValidRows is returned together with the skipped rows.
func ParseCSV(f io.Reader) (Result, error) {
	reader := csv.NewReader(f)

	// Rows may have fewer or more fields than the header
	reader.FieldsPerRecord = -1

	result := Result{
		Notes:   []models.NoteData{},
		Skipped: []SkippedRow{},
	}

	header, err := reader.Read()
	if err == io.EOF {
		return result, ErrNoValidRows
	}
	if err != nil {
		return result, csvReadError(fmt.Errorf("could not read header: %w", err))
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, csvReadError(fmt.Errorf("could not read line in CSV: %w", err))
		}

		line, _ := reader.FieldPos(0)
		note, reason := parseRow(row{columns: columns, record: record})
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: reason})
			continue
		}

		result.Notes = append(result.Notes, note)
	}

	if len(result.Notes) == 0 {
		return result, ErrNoValidRows
	}
	return result, nil
}

// parseRow validates a row. It returns the reason if the row must be
// skipped.
func parseRow(r row) (models.NoteData, string) {
	client := r.get(columnClient)
	if client == "" {
		return models.NoteData{}, ReasonMissingClient
	}

	date, ok := sanitize.ParseDate(r.get(columnDate))
	if !ok {
		return models.NoteData{}, ReasonMissingDate
	}

	amount := sanitize.CoerceAmount(r.get(columnAmount))
	if amount.IsZero() {
		return models.NoteData{}, ReasonMissingAmount
	}

	category := r.get(columnCategory)
	if category == "" {
		category = models.ImportedCategory
	}

	return models.NoteData{
		Number:       r.get(columnNumber),
		Client:       client,
		Category:     category,
		Amount:       amount,
		IssueDate:    date,
		Status:       sanitize.Status(r.get(columnStatus)),
		Material:     r.get(columnMaterial),
		VehiclePlate: sanitize.Plate(r.get(columnPlate)),
	}, ""
}

// csvReadError returns an error with the line of the input the error
// occurred in.
func csvReadError(err error) error {
	line := 1

	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		line = parseErr.StartLine
	}

	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
