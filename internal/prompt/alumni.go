package prompt

import (
	"fmt"
	"strings"

	"github.com/yoockh/alumni-advisor/internal/matching"
	"github.com/yoockh/alumni-advisor/internal/models"
)

type alumniText struct {
	header, fullName, nickname, activity, skills string
	details, supportNeeded                       string

	opportunitiesIntro string
	business           string // name, support, collaboration, hr
	worker             string // skill, description, support
	homemaker          string // interest, specific area, group need
	fit                string // nickname
	unknownBusiness    string
	na                 string
	noOpportunities    string // nickname

	collabIntro string
	collabLine  string // name, activity, summary
	noCollab    string

	footer string // nickname
}

var alumniID = alumniText{
	header:        "Profil Alumni:",
	fullName:      "Nama Lengkap",
	nickname:      "Nama Panggilan",
	activity:      "Aktivitas saat ini",
	skills:        "Keahlian",
	details:       "Detail Aktivitas:",
	supportNeeded: "Dukungan yang dibutuhkan",

	opportunitiesIntro: "Berikut adalah peluang nyata dari alumni lain yang membutuhkan dukungan atau kolaborasi:",
	business:           "- Bisnis '%s' membutuhkan dukungan: %s, kolaborasi: %s, butuh SDM: %s. ",
	worker:             "- Alumni pekerja dengan keahlian: %s, deskripsi: %s, membutuhkan dukungan: %s. ",
	homemaker:          "- Alumni IRT dengan bidang minat: %s, bidang spesifik: %s, kebutuhan grup: %s. ",
	fit:                "Gambarkan bagaimana profil %s sangat cocok untuk kebutuhan ini.",
	unknownBusiness:    "Tidak Diketahui",
	na:                 "N/A",
	noOpportunities:    "- Belum ada peluang dari alumni lain yang cocok dengan keahlian %s.",

	collabIntro: "Berikut adalah profil alumni lain yang paling cocok untuk kolaborasi (nama, aktivitas, keahlian, dan detail relevan):",
	collabLine:  "- Nama: %s (Aktivitas: %s). Keahlian/Detail Relevan: %s",
	noCollab:    "Tidak ada alumni lain yang paling cocok ditemukan untuk kolaborasi.",

	footer: "Silakan berikan:\n" +
		"1. Ringkasan profil %[1]s.\n" +
		"2. Analisis peluang kolaborasi yang sesuai keahlian %[1]s. " +
		"Untuk setiap peluang (baik dari alumni bisnis, pekerja, atau IRT), jelaskan bagaimana profil %[1]s cocok dengan kebutuhan tersebut. " +
		"Kemudian, identifikasi dan sebutkan nama-nama alumni dari daftar 'profil alumni lain yang paling cocok untuk kolaborasi' yang paling relevan untuk setiap peluang tersebut, serta jelaskan bagaimana mereka dapat terlibat.\n" +
		"3. Rekomendasi nyata dan profesional untuk kolaborasi atau pengembangan karir berdasarkan data alumni lainnya.\n" +
		"4. Tampilkan minimal 5 contoh **judul atau nama proyek** kolaborasi yang konkrit dan realistis berdasarkan data peluang dari alumni lain dan alumni yang telah Anda ringkas profilnya (sebutkan nama mereka jika relevan), yang bisa dikerjakan bersama %[1]s.\n" +
		"Tolong gunakan bahasa yang jelas dan profesional. Pastikan untuk selalu merujuk pada alumni utama dengan **nama panggilannya** (%[1]s) saja, tanpa prefiks 'alumni' atau 'bapak/ibu'. " +
		"Perlu diingat bahwa %[1]s mungkin memiliki beberapa aktivitas yang berbeda (bekerja, bisnis, ibu rumah tangga) dan detailnya sudah digabungkan. Analisis Anda harus mencerminkan multi-aktivitas ini.",
}

var alumniEN = alumniText{
	header:        "Alumni Profile:",
	fullName:      "Full Name",
	nickname:      "Nickname",
	activity:      "Current Activity",
	skills:        "Skills",
	details:       "Activity Details:",
	supportNeeded: "Support needed",

	opportunitiesIntro: "Here are actual opportunities from other alumni in need of support or collaboration:",
	business:           "- Business '%s' needs support: %s, collaboration: %s, human resources: %s. ",
	worker:             "- Worker alumni with skill: %s, description: %s, needing support: %s. ",
	homemaker:          "- Homemaker alumni with interest area: %s, specific area: %s, group need: %s. ",
	fit:                "Describe how %s's profile perfectly matches these needs.",
	unknownBusiness:    "Unknown",
	na:                 "N/A",
	noOpportunities:    "- No opportunities from other alumni match %s's skills yet.",

	collabIntro: "Here are the most suitable alumni profiles for collaboration (name, activity, skills, and relevant details):",
	collabLine:  "- Name: %s (Activity: %s). Skills/Relevant Details: %s",
	noCollab:    "No other most suitable alumni found for collaboration.",

	footer: "Please provide:\n" +
		"1. A brief profile summary for %[1]s.\n" +
		"2. Analysis of collaboration opportunities relevant to %[1]s's skills. " +
		"For each opportunity (from business, worker, or homemaker alumni), explain how %[1]s's profile matches those needs. " +
		"Then, identify and mention the names of alumni from the 'most suitable alumni profiles for collaboration' list who are most relevant for each opportunity, and explain how they can be involved.\n" +
		"3. Practical, professional recommendations for collaboration or career advancement based on alumni data.\n" +
		"4. Present at least 5 **concrete and realistic project titles** or collaboration themes derived from available alumni data and the summarized alumni (mention their names if relevant), that %[1]s could join.\n" +
		"Please use clear and professional language. Always refer to the main alumni by their **nickname** (%[1]s) only, without prefixes like 'alumni' or 'Mr./Ms.'. " +
		"Note that %[1]s may have multiple different activities (worker, business, homemaker) and their details have been combined. Your analysis should reflect this multi-activity profile.",
}

// AlumniInput is everything the single-alumnus template renders.
type AlumniInput struct {
	Profile       matching.CompositeProfile
	Opportunities matching.Opportunities
	Collaborators []matching.Match
}

// ComposeAlumni renders the single-alumnus recommendation prompt.
func ComposeAlumni(in AlumniInput, lang Language) string {
	tx := alumniID
	if lang == English {
		tx = alumniEN
	}
	p := in.Profile
	nick := p.Address()

	var sb strings.Builder
	sb.WriteString(tx.header + "\n")
	fmt.Fprintf(&sb, "%s: %s\n", tx.fullName, p.DisplayName)
	fmt.Fprintf(&sb, "%s: %s\n", tx.nickname, nick)
	fmt.Fprintf(&sb, "%s: %s\n", tx.activity, p.Activities)
	fmt.Fprintf(&sb, "%s: %s\n", tx.skills, p.SkillsText)

	// workers get their support need on its own line
	support, hasSupport := "", false
	if p.HasActivity(models.ActivityWorker) {
		support, hasSupport = p.Details.Get("support_needed")
	}
	var lines []string
	for _, e := range p.Details {
		if hasSupport && e.Key == "support_needed" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", detailLabel(lang, e.Key), e.Value))
	}
	if len(lines) > 0 {
		sb.WriteString(tx.details + "\n- " + strings.Join(lines, "\n- ") + "\n")
	}
	if hasSupport {
		fmt.Fprintf(&sb, "%s: %s.\n", tx.supportNeeded, support)
	}
	sb.WriteString("\n")

	sb.WriteString(tx.opportunitiesIntro + "\n")
	writeOpportunities(&sb, tx, in.Opportunities, nick)
	sb.WriteString("\n")

	writeCollaborators(&sb, tx, in.Collaborators)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, tx.footer, nick)
	return sb.String()
}

func writeOpportunities(sb *strings.Builder, tx alumniText, ops matching.Opportunities, nick string) {
	if ops.Len() == 0 {
		fmt.Fprintf(sb, tx.noOpportunities+"\n", nick)
		return
	}
	na := func(s *string) string { return orDefault(models.Value(s), tx.na) }
	for _, b := range ops.Business {
		fmt.Fprintf(sb, tx.business,
			orDefault(models.Value(b.BusinessName), tx.unknownBusiness),
			na(b.SupportNeeded), na(b.CollaborationNeed), na(b.HRNeed))
		fmt.Fprintf(sb, tx.fit+"\n", nick)
	}
	for _, w := range ops.Worker {
		fmt.Fprintf(sb, tx.worker, na(w.Skill), na(w.Description), na(w.SupportNeeded))
		fmt.Fprintf(sb, tx.fit+"\n", nick)
	}
	for _, h := range ops.Homemaker {
		fmt.Fprintf(sb, tx.homemaker, na(h.InterestArea), na(h.SpecificArea), na(h.NeedsGroup))
		fmt.Fprintf(sb, tx.fit+"\n", nick)
	}
}

func writeCollaborators(sb *strings.Builder, tx alumniText, matches []matching.Match) {
	if len(matches) == 0 {
		sb.WriteString(tx.noCollab)
		return
	}
	sb.WriteString(tx.collabIntro)
	for _, m := range matches {
		sb.WriteString("\n")
		fmt.Fprintf(sb, tx.collabLine, m.Name, capitalize(m.Activities), m.Summary())
	}
}
