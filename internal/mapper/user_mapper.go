package mapper

import (
	"time"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:               u.Id,
		Email:            u.Email,
		Name:             u.Name,
		PasswordHash:     u.PasswordHash,
		Locale:           u.Locale,
		Region:           u.Region,
		ComfortOnDefault: u.ComfortOnDefault,
		VibesPref:        u.VibesPref,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:               u.Id,
		Email:            u.Email,
		Name:             u.Name,
		PasswordHash:     u.PasswordHash,
		Locale:           u.Locale,
		Region:           u.Region,
		ComfortOnDefault: u.ComfortOnDefault,
		VibesPref:        model.StringArray(u.VibesPref),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}
