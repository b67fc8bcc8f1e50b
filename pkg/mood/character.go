package mood

// BestCharacterMatch selects the candidate with the highest MatchScore
// among those that actually received a score. Ties keep the first-seen
// candidate (strictly-greater comparison during reduction). ErrNoMatchFound
// when no candidate has a usable score.
func BestCharacterMatch(scored []Scored) (*Scored, error) {
	var best *Scored
	for i := range scored {
		if scored[i].Relevance == nil {
			continue
		}
		if best == nil || scored[i].Relevance.MatchScore > best.Relevance.MatchScore {
			best = &scored[i]
		}
	}
	if best == nil {
		return nil, ErrNoMatchFound
	}
	return best, nil
}
