// Package matching builds composite alumni profiles and scores keyword overlap
// between them. Everything here is pure: callers fetch rows, this package only
// combines them.
package matching

import (
	"strings"

	"github.com/yoockh/alumni-advisor/internal/models"
)

type DetailEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DetailMap keeps insertion order. Setting an existing key replaces its value
// in place, so a later activity wins without moving the entry.
type DetailMap []DetailEntry

func (m *DetailMap) Set(key, value string) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, DetailEntry{Key: key, Value: value})
}

func (m DetailMap) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// CompositeProfile is one alumnus' skills and activity details merged for matching.
type CompositeProfile struct {
	SubjectID   int64                 `json:"subject_id"`
	DisplayName string                `json:"display_name"`
	Nickname    string                `json:"nickname"`
	Activities  string                `json:"activities"`
	Kinds       []models.ActivityKind `json:"activity_kinds"`
	Skills      []string              `json:"skills"`
	SkillsText  string                `json:"skills_text"`
	Details     DetailMap             `json:"detail_map"`
	FullText    string                `json:"full_text_blob"`
}

// BuildProfile merges the alumnus' skills with the detail row of every declared
// activity, in declared order. Activities without a row are skipped.
func BuildProfile(a models.Alumni, details map[models.ActivityKind]models.ActivityDetail) CompositeProfile {
	skills := a.Skills()
	p := CompositeProfile{
		SubjectID:   a.ID,
		DisplayName: strings.TrimSpace(a.FullName),
		Nickname:    strings.TrimSpace(a.NicknameOrEmpty()),
		Activities:  strings.TrimSpace(a.Activities),
		Kinds:       a.Kinds(),
		Skills:      skills,
		SkillsText:  strings.Join(skills, ", "),
	}

	parts := append([]string(nil), skills...)
	for _, k := range p.Kinds {
		d, ok := details[k]
		if !ok || d == nil {
			continue
		}
		for _, f := range d.Fields() {
			v := strings.TrimSpace(f.Value)
			if v == "" {
				continue
			}
			p.Details.Set(f.Key, v)
			parts = append(parts, v)
		}
	}
	p.FullText = normalize(strings.Join(parts, " "))
	return p
}

// Address is how prompts refer to the alumnus: nickname, else full name.
func (p CompositeProfile) Address() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.DisplayName
}

func (p CompositeProfile) HasActivity(k models.ActivityKind) bool {
	for _, got := range p.Kinds {
		if got == k {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
