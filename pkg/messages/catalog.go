package messages

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

var builder = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))

	set := func(tag language.Tag, entries map[Key]string) {
		for key, msg := range entries {
			_ = b.SetString(tag, string(key), msg)
		}
	}

	set(language.BrazilianPortuguese, map[Key]string{
		InvalidCredential:   "E-mail ou senha incorretos.",
		InvalidEmail:        "O e-mail informado não é válido.",
		EmailInUse:          "Este e-mail já está em uso.",
		WeakPassword:        "A senha deve ter pelo menos %d caracteres.",
		SessionExpired:      "Sua sessão expirou. Entre novamente.",
		Unauthenticated:     "Entre para continuar.",
		Forbidden:           "Você não tem permissão para acessar esta área.",
		SelfRoleChange:      "Você não pode alterar seu próprio perfil.",
		SelfRemoval:         "Você não pode remover sua própria conta.",
		CredentialsRequired: "Informe e-mail e senha.",
		NotFound:            "O registro não foi encontrado.",
		InvalidNote:         "Verifique os campos destacados.",
		InvalidRole:         "Perfil desconhecido.",
		NoFile:              "Envie um arquivo CSV.",
		ImportNoValidRows:   "Nenhuma linha válida encontrada no arquivo.",
		Generic:             "Ocorreu um erro. Tente novamente.",

		FieldRequired:      "Campo obrigatório.",
		FieldInvalidAmount: "Valor inválido.",
		FieldInvalidDate:   "Data inválida.",
		FieldInvalidStatus: "Status inválido.",

		NoteCreated:     "Nota adicionada.",
		NoteUpdated:     "Nota atualizada.",
		NoteDeleted:     "Nota excluída.",
		UserCreated:     "Usuário criado.",
		UserRoleChanged: "Perfil atualizado.",
		UserRemoved:     "Usuário removido.",
	})

	set(language.English, map[Key]string{
		InvalidCredential:   "Incorrect email or password.",
		InvalidEmail:        "The email address is not valid.",
		EmailInUse:          "This email address is already in use.",
		WeakPassword:        "The password must have at least %d characters.",
		SessionExpired:      "Your session expired. Please sign in again.",
		Unauthenticated:     "Please sign in to continue.",
		Forbidden:           "You do not have access to this area.",
		SelfRoleChange:      "You cannot change your own role.",
		SelfRemoval:         "You cannot remove your own account.",
		CredentialsRequired: "Enter an email address and a password.",
		NotFound:            "The record was not found.",
		InvalidNote:         "Please check the highlighted fields.",
		InvalidRole:         "Unknown role.",
		NoFile:              "Please upload a CSV file.",
		ImportNoValidRows:   "No valid rows were found in the file.",
		Generic:             "Something went wrong. Please try again.",

		FieldRequired:      "This field is required.",
		FieldInvalidAmount: "Invalid amount.",
		FieldInvalidDate:   "Invalid date.",
		FieldInvalidStatus: "Invalid status.",

		NoteCreated:     "Note added.",
		NoteUpdated:     "Note updated.",
		NoteDeleted:     "Note deleted.",
		UserCreated:     "User created.",
		UserRoleChanged: "Role updated.",
		UserRemoved:     "User removed.",
	})

	_ = b.Set(language.BrazilianPortuguese, string(NotesImported), plural.Selectf(1, "%d",
		"=1", "1 nota importada.",
		"other", "%d notas importadas.",
	))
	_ = b.Set(language.English, string(NotesImported), plural.Selectf(1, "%d",
		"=1", "1 note imported.",
		"other", "%d notes imported.",
	))
	_ = b.Set(language.BrazilianPortuguese, string(RowsSkipped), plural.Selectf(1, "%d",
		"=1", "1 linha ignorada.",
		"other", "%d linhas ignoradas.",
	))
	_ = b.Set(language.English, string(RowsSkipped), plural.Selectf(1, "%d",
		"=1", "1 row skipped.",
		"other", "%d rows skipped.",
	))

	return b
}
