package matching

import (
	"sort"
	"strings"
)

const (
	// CollaboratorLimit caps alumni-to-alumni matches.
	CollaboratorLimit = 5
	// ProjectCandidateLimit caps project-to-alumni matches.
	ProjectCandidateLimit = 10
)

type Candidate struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Activities string `json:"activities"`
	Skills     string `json:"skills"`
	Text       string `json:"relevant_detail"`
}

func CandidateOf(p CompositeProfile) Candidate {
	return Candidate{
		ID:         p.SubjectID,
		Name:       p.DisplayName,
		Activities: p.Activities,
		Skills:     p.SkillsText,
		Text:       p.FullText,
	}
}

// Summary is the detail blob, or the skill list when the blob is empty.
func (c Candidate) Summary() string {
	if c.Text != "" {
		return c.Text
	}
	return c.Skills
}

type Match struct {
	Candidate
	Score int `json:"match_score"`
}

// Keywords returns the distinct whitespace-separated tokens of text, lower-cased and sorted.
func Keywords(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Score counts keywords contained anywhere in text. Containment, not token
// equality: "it" matches inside "digital".
func Score(keywords []string, text string) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// Exclude drops the candidate with the given id.
func Exclude(candidates []Candidate, id int64) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Rank scores every candidate, drops zero scores, orders by score descending
// then id ascending, and keeps at most limit entries (limit <= 0 keeps all).
func Rank(keywords []string, candidates []Candidate, limit int) []Match {
	var out []Match
	for _, c := range candidates {
		if s := Score(keywords, c.Text); s > 0 {
			out = append(out, Match{Candidate: c, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
