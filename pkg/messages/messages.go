// Package messages turns errors and outcomes into friendly, localized
// texts. Brazilian Portuguese is the default language, English is
// available as well.
package messages

import (
	"errors"
	"fmt"

	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/importer"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/notes"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/nremp/dashboard/pkg/users"
	"github.com/nremp/dashboard/pkg/workspace"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Key identifies a message.
type Key string

const (
	InvalidCredential   Key = "error.invalid_credential"
	InvalidEmail        Key = "error.invalid_email"
	EmailInUse          Key = "error.email_in_use"
	WeakPassword        Key = "error.weak_password"
	SessionExpired      Key = "error.session_expired"
	Unauthenticated     Key = "error.unauthenticated"
	Forbidden           Key = "error.forbidden"
	SelfRoleChange      Key = "error.self_role_change"
	SelfRemoval         Key = "error.self_removal"
	CredentialsRequired Key = "error.credentials_required"
	NotFound            Key = "error.not_found"
	InvalidNote         Key = "error.invalid_note"
	InvalidRole         Key = "error.invalid_role"
	NoFile              Key = "error.no_file"
	ImportNoValidRows   Key = "error.import_no_valid_rows"
	Generic             Key = "error.generic"

	FieldRequired      Key = "field.required"
	FieldInvalidAmount Key = "field.invalid_amount"
	FieldInvalidDate   Key = "field.invalid_date"
	FieldInvalidStatus Key = "field.invalid_status"

	NoteCreated     Key = "success.note_created"
	NoteUpdated     Key = "success.note_updated"
	NoteDeleted     Key = "success.note_deleted"
	NotesImported   Key = "success.notes_imported"
	RowsSkipped     Key = "success.rows_skipped"
	UserCreated     Key = "success.user_created"
	UserRoleChanged Key = "success.user_role_changed"
	UserRemoved     Key = "success.user_removed"
)

// Default is the language used when nothing else matches.
var Default = language.BrazilianPortuguese

var supported = []language.Tag{language.BrazilianPortuguese, language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the supported languages, the default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match returns the supported language best matching an Accept-Language
// header value.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return supported[index]
}

// Parse returns the supported language for a tag like "en" or "pt-BR".
func Parse(s string) (language.Tag, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return Default, false
	}

	base, _ := tag.Base()
	for _, t := range supported {
		if b, _ := t.Base(); b == base {
			_, index, _ := matcher.Match(tag)
			return supported[index], true
		}
	}
	return Default, false
}

func printer(tag language.Tag) *message.Printer {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		index = 0
	}
	return message.NewPrinter(supported[index], message.Catalog(builder))
}

// Text returns the localized message for key.
func Text(tag language.Tag, key Key, args ...any) string {
	return printer(tag).Sprintf(string(key), args...)
}

// Success is Text for the outcome of a successful operation.
func Success(tag language.Tag, key Key, args ...any) string {
	return Text(tag, key, args...)
}

// KeyOf returns the message key for err. Errors without a friendly message
// map to Generic.
func KeyOf(err error) Key {
	switch auth.CodeOf(err) {
	case auth.CodeInvalidCredential, auth.CodeUserNotFound, auth.CodeWrongPassword:
		return InvalidCredential
	case auth.CodeInvalidEmail:
		return InvalidEmail
	case auth.CodeEmailInUse:
		return EmailInUse
	case auth.CodeWeakPassword:
		return WeakPassword
	case auth.CodeInvalidToken, auth.CodeTokenExpired:
		return SessionExpired
	}

	var violations notes.Violations
	switch {
	case errors.As(err, &violations):
		return InvalidNote
	case errors.Is(err, users.ErrSelfRoleChange):
		return SelfRoleChange
	case errors.Is(err, users.ErrSelfRemoval):
		return SelfRemoval
	case errors.Is(err, users.ErrCredentialsRequired):
		return CredentialsRequired
	case errors.Is(err, users.ErrForbidden), errors.Is(err, notes.ErrForbidden), errors.Is(err, workspace.ErrForbidden):
		return Forbidden
	case errors.Is(err, workspace.ErrUnauthenticated):
		return Unauthenticated
	case errors.Is(err, users.ErrNotFound), errors.Is(err, notes.ErrNotFound), errors.Is(err, store.ErrNotFound):
		return NotFound
	case errors.Is(err, models.ErrUnknownRole):
		return InvalidRole
	case errors.Is(err, importer.ErrNoValidRows):
		return ImportNoValidRows
	case errors.Is(err, importer.ErrNoFile):
		return NoFile
	}

	return Generic
}

// Error returns the friendly message for err.
func Error(tag language.Tag, err error) string {
	key := KeyOf(err)
	if key == WeakPassword {
		return Text(tag, key, auth.MinPasswordLength)
	}
	return Text(tag, key)
}

// Field returns the message for a validation code of a note field.
func Field(tag language.Tag, code string) string {
	switch code {
	case notes.CodeRequired:
		return Text(tag, FieldRequired)
	case notes.CodeInvalidAmount:
		return Text(tag, FieldInvalidAmount)
	case notes.CodeInvalidDate:
		return Text(tag, FieldInvalidDate)
	case notes.CodeInvalidStatus:
		return Text(tag, FieldInvalidStatus)
	default:
		return Text(tag, Generic)
	}
}

// Currency formats an amount in Brazilian reais for the language.
func Currency(tag language.Tag, amount decimal.Decimal) string {
	p := printer(tag)
	value, _ := amount.Round(2).Float64()

	return fmt.Sprintf("%s %s",
		p.Sprint(currency.Symbol(currency.BRL)),
		p.Sprint(number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2))),
	)
}
