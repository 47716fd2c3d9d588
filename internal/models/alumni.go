package models

import "strings"

type Alumni struct {
	ID             int64   `gorm:"column:id;primaryKey" json:"id"`
	FullName       string  `gorm:"column:full_name;type:text" json:"full_name"`
	Nickname       *string `gorm:"column:nickname;type:text" json:"nickname"`
	Activities     string  `gorm:"column:activities;type:text" json:"activities"` // comma separated activity tags
	CombinedSkills *string `gorm:"column:combined_skills;type:text" json:"combined_skills"`
}

func (Alumni) TableName() string { return "alumni" }

func (a Alumni) NicknameOrEmpty() string { return deref(a.Nickname) }

// Skills splits combined_skills on commas, trimming and dropping empty entries.
func (a Alumni) Skills() []string {
	return SplitList(deref(a.CombinedSkills))
}

// Kinds returns the recognised activity tags in declared order.
func (a Alumni) Kinds() []ActivityKind {
	return ParseActivities(a.Activities)
}

func (a Alumni) HasActivity(k ActivityKind) bool {
	for _, got := range a.Kinds() {
		if got == k {
			return true
		}
	}
	return false
}

// SplitList splits a comma separated list, trimming and dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
