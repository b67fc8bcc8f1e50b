package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id               uuid.UUID
	Email            string
	Name             string
	PasswordHash     string
	Locale           string
	Region           string
	ComfortOnDefault bool
	VibesPref        []string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
