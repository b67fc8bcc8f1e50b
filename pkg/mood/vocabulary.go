package mood

// Tag is one word from the fixed mood vocabulary shared by the classifier
// prompts and the catalog's mood column.
type Tag string

// Vocabulary is the closed set of mood tags. The classifier prompts embed
// this exact list; catalog rows are assumed to stay inside it.
var Vocabulary = []Tag{
	"happy", "funny", "sad", "dark",
	"lonely", "warm", "healing", "romantic",
	"excited", "tense", "thrilling", "scary",
	"mysterious", "nostalgic", "cozy", "chaotic",
}

var vocabularySet = func() map[Tag]struct{} {
	set := make(map[Tag]struct{}, len(Vocabulary))
	for _, t := range Vocabulary {
		set[t] = struct{}{}
	}
	return set
}()

// ValidTag reports whether t belongs to the fixed vocabulary.
func ValidTag(t Tag) bool {
	_, ok := vocabularySet[t]
	return ok
}

// FilterValid returns only the tags inside the vocabulary, order preserved.
func FilterValid(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if ValidTag(t) {
			out = append(out, t)
		}
	}
	return out
}

// Tags converts plain strings to tags without validating them.
func Tags(values []string) []Tag {
	out := make([]Tag, len(values))
	for i, v := range values {
		out[i] = Tag(v)
	}
	return out
}

// Strings converts tags back to plain strings, e.g. for SQL parameters.
func Strings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
