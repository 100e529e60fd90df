package messages_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/importer"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/notes"
	"github.com/nremp/dashboard/pkg/users"
	"github.com/nremp/dashboard/pkg/workspace"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.BrazilianPortuguese},
		{"pt-BR,pt;q=0.9", language.BrazilianPortuguese},
		{"en-US,en;q=0.8", language.English},
		{"fr-FR", language.BrazilianPortuguese},
		{"de;q=0.9,en;q=0.5", language.English},
		{"%%garbage", language.BrazilianPortuguese},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, messages.Match(tt.header), tt.header)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"en", language.English, true},
		{"en-GB", language.English, true},
		{"pt-BR", language.BrazilianPortuguese, true},
		{"pt", language.BrazilianPortuguese, true},
		{"tlh", language.BrazilianPortuguese, false},
		{"de", language.BrazilianPortuguese, false},
		{"not a tag!", language.BrazilianPortuguese, false},
	}

	for _, tt := range tests {
		tag, ok := messages.Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, tag, tt.in)
		}
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		err  error
		want messages.Key
	}{
		{&auth.Error{Code: auth.CodeInvalidCredential}, messages.InvalidCredential},
		{&auth.Error{Code: auth.CodeWrongPassword}, messages.InvalidCredential},
		{&auth.Error{Code: auth.CodeUserNotFound}, messages.InvalidCredential},
		{&auth.Error{Code: auth.CodeInvalidEmail}, messages.InvalidEmail},
		{&auth.Error{Code: auth.CodeEmailInUse}, messages.EmailInUse},
		{&auth.Error{Code: auth.CodeWeakPassword}, messages.WeakPassword},
		{&auth.Error{Code: auth.CodeTokenExpired}, messages.SessionExpired},
		{fmt.Errorf("changing role: %w", users.ErrSelfRoleChange), messages.SelfRoleChange},
		{users.ErrSelfRemoval, messages.SelfRemoval},
		{users.ErrForbidden, messages.Forbidden},
		{notes.ErrForbidden, messages.Forbidden},
		{workspace.ErrForbidden, messages.Forbidden},
		{workspace.ErrUnauthenticated, messages.Unauthenticated},
		{notes.ErrNotFound, messages.NotFound},
		{notes.Violations{"client": notes.CodeRequired}, messages.InvalidNote},
		{importer.ErrNoValidRows, messages.ImportNoValidRows},
		{fmt.Errorf("%w: root", models.ErrUnknownRole), messages.InvalidRole},
		{errors.New("disk full"), messages.Generic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, messages.KeyOf(tt.err), tt.err.Error())
	}
}

func TestError(t *testing.T) {
	err := &auth.Error{Code: auth.CodeWeakPassword}

	assert.Equal(t, "A senha deve ter pelo menos 6 caracteres.", messages.Error(language.BrazilianPortuguese, err))
	assert.Equal(t, "The password must have at least 6 characters.", messages.Error(language.English, err))
	assert.Equal(t, "Você não pode remover sua própria conta.", messages.Error(messages.Default, users.ErrSelfRemoval))
}

func TestUnsupportedLanguageFallsBack(t *testing.T) {
	assert.Equal(t, "Ocorreu um erro. Tente novamente.", messages.Error(language.Japanese, errors.New("boom")))
}

func TestSuccessPlural(t *testing.T) {
	assert.Equal(t, "1 note imported.", messages.Success(language.English, messages.NotesImported, 1))
	assert.Equal(t, "3 notes imported.", messages.Success(language.English, messages.NotesImported, 3))
	assert.Equal(t, "2 notas importadas.", messages.Success(language.BrazilianPortuguese, messages.NotesImported, 2))
	assert.Equal(t, "1 linha ignorada.", messages.Success(language.BrazilianPortuguese, messages.RowsSkipped, 1))
}

func TestField(t *testing.T) {
	assert.Equal(t, "Invalid amount.", messages.Field(language.English, notes.CodeInvalidAmount))
	assert.Equal(t, "Data inválida.", messages.Field(language.BrazilianPortuguese, notes.CodeInvalidDate))
}

func TestCurrency(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")

	assert.Equal(t, "R$ 1.234,50", messages.Currency(language.BrazilianPortuguese, amount))
	assert.Equal(t, "R$ 1,234.50", messages.Currency(language.English, amount))
	assert.Equal(t, "R$ 0,00", messages.Currency(language.BrazilianPortuguese, decimal.Zero))
}
