package entity

import (
	"time"

	"github.com/google/uuid"
)

type HistoryEntry struct {
	Id        int64
	UserId    uuid.UUID
	MovieId   int64
	WatchedAt time.Time
}
