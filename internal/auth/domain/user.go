package domain

import "time"

// User is the identity and credential record. Secret fields carry json:"-"
// so the entity itself is the sanitized projection returned to clients.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	FullName string `json:"fullName" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never plaintext

	// RefreshToken is the single currently-valid refresh token; empty means
	// no active session. Each login overwrites it, which invalidates any
	// other outstanding session (single active session per user).
	RefreshToken string `json:"-" gorm:"default:''"`

	// ResetPasswordToken is non-empty iff ResetPasswordTokenExpiry is
	// non-zero. Expiry is an epoch-millisecond deadline.
	ResetPasswordToken       string `json:"-" gorm:"default:''"`
	ResetPasswordTokenExpiry int64  `json:"-" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
