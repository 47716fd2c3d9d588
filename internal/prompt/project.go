package prompt

import (
	"fmt"
	"strings"

	"github.com/yoockh/alumni-advisor/internal/matching"
)

type projectText struct {
	idea      string
	intro     string
	line      string // name, activity, skills, summary, score
	none      string
	table     string // row cap
	tableHead string
	closing   string
	noneAsk   string
}

var projectID = projectText{
	idea:      "Ide Proyek:",
	intro:     "Berikut adalah alumni yang paling relevan dengan ide proyek ini:",
	line:      "- Nama: %s (Aktivitas: %s). Keahlian: %s. Detail Relevan: %s. Skor kecocokan: %d",
	none:      "Tidak ada alumni yang cocok ditemukan untuk ide proyek ini.",
	table:     "Silakan berikan rekomendasi dalam bentuk tabel dengan maksimal %d baris, satu baris per alumni di atas:",
	tableHead: "| Nama Alumni | Peran yang Direkomendasikan | Justifikasi |",
	closing:   "Gunakan hanya alumni dari daftar di atas. Tulis justifikasi singkat berdasarkan keahlian dan detail relevan mereka, dengan bahasa yang jelas dan profesional.",
	noneAsk:   "Jelaskan profil alumni (keahlian, aktivitas, dan peran) yang dibutuhkan untuk mewujudkan ide proyek ini, dengan bahasa yang jelas dan profesional.",
}

var projectEN = projectText{
	idea:      "Project Idea:",
	intro:     "Here are the alumni most relevant to this project idea:",
	line:      "- Name: %s (Activity: %s). Skills: %s. Relevant Details: %s. Match score: %d",
	none:      "No matching alumni found for this project idea.",
	table:     "Please provide recommendations as a table with at most %d rows, one row per alumnus above:",
	tableHead: "| Alumni Name | Recommended Role | Justification |",
	closing:   "Only use alumni from the list above. Keep each justification short and grounded in their skills and relevant details, using clear and professional language.",
	noneAsk:   "Describe the alumni profiles (skills, activities, and roles) this project idea would need, using clear and professional language.",
}

type ProjectInput struct {
	Idea       string
	Candidates []matching.Match
}

// ComposeProject renders the project-to-alumni prompt. The table it asks for
// is capped at the number of supplied candidates.
func ComposeProject(in ProjectInput, lang Language) string {
	tx := projectID
	if lang == English {
		tx = projectEN
	}

	var sb strings.Builder
	sb.WriteString(tx.idea + "\n")
	sb.WriteString(strings.TrimSpace(in.Idea) + "\n\n")

	if len(in.Candidates) == 0 {
		sb.WriteString(tx.none + "\n\n")
		sb.WriteString(tx.noneAsk)
		return sb.String()
	}

	sb.WriteString(tx.intro + "\n")
	for _, m := range in.Candidates {
		fmt.Fprintf(&sb, tx.line+"\n", m.Name, capitalize(m.Activities), m.Skills, m.Summary(), m.Score)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, tx.table+"\n", len(in.Candidates))
	sb.WriteString(tx.tableHead + "\n\n")
	sb.WriteString(tx.closing)
	return sb.String()
}
