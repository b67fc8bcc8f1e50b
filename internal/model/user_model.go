package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Email            string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name             string      `gorm:"type:varchar(255)"`
	PasswordHash     string      `gorm:"type:varchar(255);not null"`
	Locale           string      `gorm:"type:varchar(10);default:'vi'"`
	Region           string      `gorm:"type:varchar(10);default:'VN'"`
	ComfortOnDefault bool        `gorm:"default:true"`
	VibesPref        StringArray `gorm:"type:text[]"`
	CreatedAt        time.Time   `gorm:"autoCreateTime"`
	UpdatedAt        time.Time   `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
