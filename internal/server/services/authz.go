package services

import "github.com/mhartwell/equinesocial/internal/server/models"

// Mutating operations check record ownership before any write. Reads are
// not gated.

func canMutateUser(principalID int64, user *models.User) bool {
	return principalID == user.ID
}

func canMutateHorse(principalID int64, horse *models.Horse) bool {
	return principalID == horse.OwnerID
}

// dropEmpty filters a form-derived patch down to the fields that were
// actually submitted with a value.
func dropEmpty(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
