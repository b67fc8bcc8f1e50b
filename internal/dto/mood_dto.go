package dto

// Requests for the mood analysis endpoints.

type AnalyzeEmotionalJourneyRequest struct {
	MoodText string `json:"moodText" validate:"required"`
}

type PartyMemberRequest struct {
	Name     string `json:"name" validate:"required"`
	Mood     string `json:"mood" validate:"required"`
	MoodText string `json:"moodText"`
}

type AnalyzePartyMoodRequest struct {
	Members []PartyMemberRequest `json:"members" validate:"required,min=2,max=4,dive"`
}

type AnalyzeCharacterMatchRequest struct {
	MoodText string `json:"moodText" validate:"required"`
}

// Responses. Movie snapshots reuse MovieResponse minus catalog-only
// fields where the original trimmed them.

type JourneyMovie struct {
	Id        int64    `json:"id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genre     []string `json:"genre"`
	PosterURL string   `json:"poster_url"`
	Overview  string   `json:"movie_overview"`
	Rating    float64  `json:"rating"`
	Mood      []string `json:"mood"`
}

type JourneyResponse struct {
	Release *JourneyMovie `json:"release"`
	Reflect *JourneyMovie `json:"reflect"`
	Rebuild *JourneyMovie `json:"rebuild"`
}

type MovieAnalysis struct {
	MatchScore float64 `json:"match_score"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

type PartyRecommendation struct {
	JourneyMovie
	Analysis *MovieAnalysis `json:"analysis"`
}

type PartyMoodResponse struct {
	Recommendations []PartyRecommendation `json:"recommendations"`
}

type CharacterAnalysis struct {
	MatchScore      float64 `json:"match_score"`
	CharacterName   string  `json:"character_name"`
	CharacterTraits string  `json:"character_traits"`
	Reason          string  `json:"reason"`
	Confidence      float64 `json:"confidence"`
}

type CharacterMovie struct {
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	PosterURL string   `json:"poster_url"`
	Rating    float64  `json:"rating"`
	Mood      []string `json:"mood"`
}

type CharacterMatchResponse struct {
	MovieId int64             `json:"movieId"`
	AiScore CharacterAnalysis `json:"aiScore"`
	Movie   *CharacterMovie   `json:"movie"`
}
