package mood

import (
	"fmt"
	"strings"
)

// Mode selects which classification prompt is used.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeParty  Mode = "party"
)

// Party size bounds enforced before any network call.
const (
	MinPartyMembers = 2
	MaxPartyMembers = 4
)

const systemPromptSingle = `You are a mood analyzer for movies.

Your task:
- Read the user's input (their current feeling, what they want to watch).
- Analyze and choose mood tags ONLY from the list below.

Available mood tags:
["happy", "funny", "sad", "dark", "lonely", "warm", "healing", "romantic", "excited", "tense", "thrilling", "scary", "mysterious", "nostalgic", "cozy", "chaotic"]

Output STRICT JSON:
{
  "mood_tags": [...],
  "top_3": [...],
  "confidence": 0.0-1.0
}

Rules:
- mood_tags: 3-6 tags from the list that fit the user's mood.
- top_3: the 3 most important moods. If not confident, choose fewer than 3.
- Do NOT invent new mood words outside the list.
- Answer with pure JSON only.`

const systemPromptParty = `You are a mood analyzer for movies.

This time, the input comes from *multiple people* (a group of 2-4 members).
Each member will describe:
- Their current feeling
- The type of movie they want to watch

Your task:
- Read ALL members' inputs.
- Identify each person's individual moods.
- Compute the *intersection*, *overlap*, or *collective blend* of group emotions.
- Then generate mood_tags and top_3 that best represent the group's shared emotional direction.

Available mood tags:
["happy", "funny", "sad", "dark", "lonely", "warm", "healing", "romantic", "excited", "tense", "thrilling", "scary", "mysterious", "nostalgic", "cozy", "chaotic"]

Output STRICT JSON:
{
  "mood_tags": [...],
  "top_3": [...],
  "confidence": 0.0-1.0
}

Rules:
- mood_tags: 3-6 tags from the list that fit the *group's combined mood*.
- top_3: the 3 most important moods. If not confident, choose fewer than 3.
- Do NOT invent new mood words outside the list.
- Answer with pure JSON only.

Additional group rules for Party Mode:
- If multiple members share a common mood, prioritize that mood.
- If their emotions differ, generate a blended set that best fits all members.
- Avoid extremes unless at least half the group expresses that feeling.
- Confidence should reflect how aligned the group is emotionally:
  - High overlap -> 0.8-1.0
  - Medium overlap -> 0.5-0.79
  - Very different moods -> 0.3-0.49`

const systemPromptScoreMovie = `You are a movie-mood matching engine

Your task:
- Read the following:
    + The user's mood input (what they currently feel and what they want to watch).
    + The movie information
- Evaluate how well the movie matches what the user is looking for.
- Produce a relevance score.

Output STRICT JSON:
{
  "match_score": 0.0,
  "reason": "",
  "confidence": 0.0
}

Rules:
- match_score: float between 0 and 100 (higher is better).
- reason: brief explanation of why you gave that score (not too long).
- confidence: float between 0 and 1 indicating how confident you are in your score.
- Return pure JSON only, no extra text.`

const systemPromptScoreCharacter = `You are a character-extraction and matching engine

Your task:
- Read the following:
    + The user's input (their personality traits, current situation, preferences, or what they are looking for in a character).
    + The movie information (title, genre, overview/description, year, etc.).
- From the movie information, identify the main character(s) and describe their personality, traits, and behavior.
- Evaluate how well the main character(s) fits the user's input and context.
- Produce a relevance score and include the main character's name and traits if possible.

Output STRICT JSON:
{
  "character_name": "",
  "character_traits": "",
  "match_score": 0.0,
  "reason": "",
  "confidence": 0.0
}

Rules:
- character_name: the name of the main character(s) (if available).
- character_traits: a brief description of the character's personality and behavior.
- match_score: float between 0 and 100 (higher is better).
- reason: brief explanation of why you gave that score (not too long).
- confidence: float between 0 and 1 indicating how confident you are in your score.
- Return pure JSON only, no extra text.`

// BuildClassifyPrompt renders the (system, user) message pair for one
// classification call. The user text never enters the system message.
func BuildClassifyPrompt(mode Mode, text string) (system string, user string) {
	if mode == ModeParty {
		return systemPromptParty, text
	}
	return systemPromptSingle, text
}

// PartyMember is one participant in a party-mode request. Mood holds a
// preset feeling (button mode); MoodText is optional free text.
type PartyMember struct {
	Name     string
	Mood     string
	MoodText string
}

// RenderPartyText renders one line per member, preserving member order:
//
//	- {name} đang cảm thấy {mood} và chia sẻ rằng: "{moodText}"
//
// The trailing clause is omitted when the member gave no free text.
func RenderPartyText(members []PartyMember) string {
	lines := make([]string, len(members))
	for i, m := range members {
		main := fmt.Sprintf("%s đang cảm thấy %s", m.Name, m.Mood)
		extra := ""
		if m.MoodText != "" {
			extra = fmt.Sprintf(" và chia sẻ rằng: %q", m.MoodText)
		}
		lines[i] = "- " + main + extra
	}
	return strings.Join(lines, "\n")
}
