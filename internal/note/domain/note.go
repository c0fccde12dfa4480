package domain

import "time"

// Note is a personal note owned by a single user
type Note struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Owner     string    `json:"owner" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
