package model

import "time"

type Movie struct {
	Id            int64       `gorm:"primaryKey;autoIncrement"`
	Title         string      `gorm:"type:varchar(255);not null;index"`
	Genre         StringArray `gorm:"type:text[]"`
	Country       string      `gorm:"type:varchar(100)"`
	Year          int         `gorm:"index"`
	MovieOverview string      `gorm:"type:text"`
	YoutubeLink   string      `gorm:"type:text"`
	PosterUrl     string      `gorm:"type:text"`
	Rating        float64     `gorm:"index"`
	Mood          StringArray `gorm:"type:text[];index:,type:gin"`
	CreatedAt     time.Time   `gorm:"autoCreateTime"`
}

func (Movie) TableName() string {
	return "movies"
}
