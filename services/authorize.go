package services

import (
	"errors"

	"channelhub/models"
	"channelhub/repositories"

	"gorm.io/gorm"
)

// resolveUser maps an asserted username to an active user record. The
// username comes from the verified token; a missing or deactivated record is
// an authorization failure, not a lookup failure.
func resolveUser(userRepo repositories.UserRepository, username string) (*models.User, error) {
	if username == "" {
		return nil, models.ErrorUnauthorized{Message: "who are you?"}
	}
	user, err := userRepo.GetActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "who are you?"}
		}
		return nil, err
	}
	return user, nil
}

// requireAdmin gates every mutating moderation transition. An unknown caller
// and an authenticated non-admin get the same answer: admin-gated endpoints
// never reveal whether the identity resolved.
func requireAdmin(userRepo repositories.UserRepository, username string) (*models.User, error) {
	user, err := userRepo.GetActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "unauthorized"}
		}
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "unauthorized"}
	}
	return user, nil
}
