package mapper

import (
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/model"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToEntity(h *model.UserHistory) *entity.HistoryEntry {
	if h == nil {
		return nil
	}
	return &entity.HistoryEntry{
		Id:        h.Id,
		UserId:    h.UserId,
		MovieId:   h.MovieId,
		WatchedAt: h.WatchedAt,
	}
}

func (m *HistoryMapper) ToModel(h *entity.HistoryEntry) *model.UserHistory {
	if h == nil {
		return nil
	}
	return &model.UserHistory{
		Id:        h.Id,
		UserId:    h.UserId,
		MovieId:   h.MovieId,
		WatchedAt: h.WatchedAt,
	}
}

func (m *HistoryMapper) ToEntities(entries []*model.UserHistory) []*entity.HistoryEntry {
	entities := make([]*entity.HistoryEntry, len(entries))
	for i, h := range entries {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
