package mood

import (
	"errors"
	"testing"
)

func TestBestCharacterMatch(t *testing.T) {
	scored := []Scored{
		{Movie: Movie{ID: 1}, Relevance: &Relevance{MatchScore: 72}},
		{Movie: Movie{ID: 2}, Relevance: nil},
		{Movie: Movie{ID: 3}, Relevance: &Relevance{MatchScore: 91, CharacterName: "Mei"}},
		{Movie: Movie{ID: 4}, Relevance: &Relevance{MatchScore: 15}},
	}

	best, err := BestCharacterMatch(scored)
	if err != nil {
		t.Fatalf("BestCharacterMatch() error = %v", err)
	}
	if best.Movie.ID != 3 {
		t.Errorf("best movie = %d, want 3", best.Movie.ID)
	}
	if best.Relevance.CharacterName != "Mei" {
		t.Errorf("character = %q, want Mei", best.Relevance.CharacterName)
	}
}

func TestBestCharacterMatchTieKeepsFirst(t *testing.T) {
	scored := []Scored{
		{Movie: Movie{ID: 1}, Relevance: &Relevance{MatchScore: 91}},
		{Movie: Movie{ID: 2}, Relevance: &Relevance{MatchScore: 91}},
	}

	best, err := BestCharacterMatch(scored)
	if err != nil {
		t.Fatalf("BestCharacterMatch() error = %v", err)
	}
	if best.Movie.ID != 1 {
		t.Errorf("best movie = %d, want first-seen 1", best.Movie.ID)
	}
}

func TestBestCharacterMatchNoUsableScores(t *testing.T) {
	tests := []struct {
		name   string
		scored []Scored
	}{
		{"empty input", nil},
		{"all scoring calls failed", []Scored{
			{Movie: Movie{ID: 1}},
			{Movie: Movie{ID: 2}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BestCharacterMatch(tt.scored)
			if !errors.Is(err, ErrNoMatchFound) {
				t.Errorf("BestCharacterMatch() error = %v, want ErrNoMatchFound", err)
			}
		})
	}
}
