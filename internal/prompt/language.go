// Package prompt renders matching results into the instruction text sent to the LLM.
package prompt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Language string

const (
	Indonesian Language = "id"
	English    Language = "en"
)

// ParseLanguage is case-insensitive; anything but "en" is Indonesian.
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(English)) {
		return English
	}
	return Indonesian
}

// SystemPreamble is the system instruction that accompanies every prompt.
func SystemPreamble(lang Language) string {
	if lang == English {
		return "You are a smart assistant providing alumni career and collaboration suggestions in fluent English."
	}
	return "Kamu adalah asisten cerdas yang memberikan saran karir dan kolaborasi alumni dalam bahasa Indonesia yang profesional."
}

var detailLabelsID = map[string]string{
	"skill":              "Keahlian kerja",
	"description":        "Deskripsi keahlian",
	"certification":      "Sertifikasi",
	"support_needed":     "Dukungan",
	"interest_area":      "Bidang minat",
	"specific_area":      "Bidang spesifik",
	"class_experience":   "Pengalaman kelas",
	"needs_group":        "Kebutuhan grup",
	"business_name":      "Nama usaha",
	"business_field":     "Bidang usaha",
	"collaboration_need": "Kebutuhan kolaborasi",
	"hr_need":            "Kebutuhan SDM",
	"practical_skill":    "Skill praktikal",
}

func detailLabel(lang Language, key string) string {
	if lang == Indonesian {
		if l, ok := detailLabelsID[key]; ok {
			return l
		}
	}
	return capitalize(strings.ReplaceAll(key, "_", " "))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
