package mood

// Journey maps the ordered top-3 matches onto fixed narrative roles.
// Missing roles stay nil; a movie is never duplicated across roles.
type Journey struct {
	Release *Movie `json:"release"`
	Reflect *Movie `json:"reflect"`
	Rebuild *Movie `json:"rebuild"`
}

// AssembleJourney assigns matches positionally: index 0 release, 1
// reflect, 2 rebuild.
func AssembleJourney(movies []Movie) Journey {
	var j Journey
	if len(movies) > 0 {
		j.Release = &movies[0]
	}
	if len(movies) > 1 {
		j.Reflect = &movies[1]
	}
	if len(movies) > 2 {
		j.Rebuild = &movies[2]
	}
	return j
}
