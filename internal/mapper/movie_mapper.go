package mapper

import (
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/model"
)

type MovieMapper struct{}

func NewMovieMapper() *MovieMapper {
	return &MovieMapper{}
}

func (m *MovieMapper) ToEntity(mv *model.Movie) *entity.Movie {
	if mv == nil {
		return nil
	}

	return &entity.Movie{
		Id:          mv.Id,
		Title:       mv.Title,
		Genre:       mv.Genre,
		Country:     mv.Country,
		Year:        mv.Year,
		Overview:    mv.MovieOverview,
		YoutubeLink: mv.YoutubeLink,
		PosterURL:   mv.PosterUrl,
		Rating:      mv.Rating,
		Mood:        mv.Mood,
		CreatedAt:   mv.CreatedAt,
	}
}

func (m *MovieMapper) ToModel(mv *entity.Movie) *model.Movie {
	if mv == nil {
		return nil
	}

	return &model.Movie{
		Id:            mv.Id,
		Title:         mv.Title,
		Genre:         model.StringArray(mv.Genre),
		Country:       mv.Country,
		Year:          mv.Year,
		MovieOverview: mv.Overview,
		YoutubeLink:   mv.YoutubeLink,
		PosterUrl:     mv.PosterURL,
		Rating:        mv.Rating,
		Mood:          model.StringArray(mv.Mood),
		CreatedAt:     mv.CreatedAt,
	}
}

func (m *MovieMapper) ToEntities(movies []*model.Movie) []*entity.Movie {
	entities := make([]*entity.Movie, len(movies))
	for i, mv := range movies {
		entities[i] = m.ToEntity(mv)
	}
	return entities
}
