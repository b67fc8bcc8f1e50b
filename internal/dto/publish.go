package dto

// EmbedMovieMessage travels over the embedding topic; the consumer
// resolves the movie, builds a document, and upserts its embedding.
type EmbedMovieMessage struct {
	MovieId int64 `json:"movie_id"`
}
