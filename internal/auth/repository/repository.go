package repository

import authdomain "notevault-backend/internal/auth/domain"

// UserRepository defines the interface for user data access. Lookups return
// (nil, nil) when no record matches.
type UserRepository interface {
	// Create persists a new user, assigning its id and timestamps
	Create(user *authdomain.User) error

	// FindByID finds a user by id
	FindByID(id string) (*authdomain.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*authdomain.User, error)

	// FindByUsernameOrEmail finds a user matching either identifier
	FindByUsernameOrEmail(username, email string) (*authdomain.User, error)

	// FindByResetToken finds the user holding the reset token, provided the
	// token has not expired at the given epoch-millisecond instant
	FindByResetToken(resetToken string, nowMillis int64) (*authdomain.User, error)

	// Update persists changes to an existing user
	Update(user *authdomain.User) error

	// Delete removes the user record and reports how many rows were affected
	Delete(id string) (int64, error)
}
