package model

import (
	"time"

	"github.com/google/uuid"
)

type UserHistory struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	MovieId   int64     `gorm:"not null;index"`
	WatchedAt time.Time `gorm:"not null;index"`
}

func (UserHistory) TableName() string {
	return "user_history"
}
