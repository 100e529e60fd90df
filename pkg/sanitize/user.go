package sanitize

import "github.com/nremp/dashboard/pkg/models"

// User normalizes a stored user account document. The uid defaults to the
// document key and unknown roles are downgraded to viewer.
func User(key string, raw Raw) (models.UserAccount, bool) {
	fields, ok := raw.record()
	if !ok {
		return models.UserAccount{}, false
	}

	role, ok := models.ParseRole(text(fields["role"]))
	if !ok {
		role = models.RoleViewer
	}

	return models.UserAccount{
		UID:   textOr(fields["uid"], key),
		Email: text(fields["email"]),
		Role:  role,
	}, true
}
