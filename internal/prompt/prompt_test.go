package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yoockh/alumni-advisor/internal/matching"
	"github.com/yoockh/alumni-advisor/internal/models"
)

func strp(s string) *string { return &s }

func workerProfile() matching.CompositeProfile {
	a := models.Alumni{
		ID:             1,
		FullName:       "Jane Doe",
		Nickname:       strp("Jane"),
		Activities:     "bekerja",
		CombinedSkills: strp("data analysis, public speaking"),
	}
	return matching.BuildProfile(a, map[models.ActivityKind]models.ActivityDetail{
		models.ActivityWorker: models.WorkerDetail{
			AlumniID:      1,
			Skill:         strp("SQL"),
			SupportNeeded: strp("mentor in data visualization"),
		},
	})
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, English, ParseLanguage(" EN "))
	assert.Equal(t, Indonesian, ParseLanguage("id"))
	assert.Equal(t, Indonesian, ParseLanguage(""))
	assert.Equal(t, Indonesian, ParseLanguage("fr"))
	assert.Equal(t, Indonesian, ParseLanguage("indonesian"))
}

func TestComposeAlumniWorkerSupportLine(t *testing.T) {
	out := ComposeAlumni(AlumniInput{Profile: workerProfile()}, Indonesian)

	assert.Contains(t, out, "Nama Lengkap: Jane Doe\n")
	assert.Contains(t, out, "Nama Panggilan: Jane\n")
	assert.Contains(t, out, "Keahlian: data analysis, public speaking\n")
	assert.Contains(t, out, "- Keahlian kerja: SQL\n")
	assert.Contains(t, out, "Dukungan yang dibutuhkan: mentor in data visualization.\n")
	assert.NotContains(t, out, "- Dukungan: ")
	assert.Equal(t, 1, strings.Count(out, "mentor in data visualization"))
}

func TestComposeAlumniNonWorkerKeepsSupportInList(t *testing.T) {
	a := models.Alumni{ID: 2, FullName: "Kopi Owner", Activities: "bisnis / freelance"}
	p := matching.BuildProfile(a, map[models.ActivityKind]models.ActivityDetail{
		models.ActivityBusiness: models.BusinessDetail{AlumniID: 2, SupportNeeded: strp("modal")},
	})
	out := ComposeAlumni(AlumniInput{Profile: p}, Indonesian)
	assert.Contains(t, out, "- Dukungan: modal\n")
	assert.NotContains(t, out, "Dukungan yang dibutuhkan")
	// no nickname, so the full name is used everywhere
	assert.Contains(t, out, "Nama Panggilan: Kopi Owner\n")
}

func TestComposeAlumniNoCollaborators(t *testing.T) {
	in := AlumniInput{Profile: workerProfile()}

	assert.Contains(t, ComposeAlumni(in, Indonesian),
		"Tidak ada alumni lain yang paling cocok ditemukan untuk kolaborasi.")
	assert.Contains(t, ComposeAlumni(in, English),
		"No other most suitable alumni found for collaboration.")
}

func TestComposeAlumniOpportunitiesAndCollaborators(t *testing.T) {
	in := AlumniInput{
		Profile: workerProfile(),
		Opportunities: matching.Opportunities{
			Business: []models.BusinessDetail{{AlumniID: 2, BusinessName: strp("Kopi Kita"), SupportNeeded: strp("data analysis")}},
		},
		Collaborators: []matching.Match{
			{Candidate: matching.Candidate{ID: 5, Name: "Dewi", Activities: "bekerja", Text: "data analysis with python"}, Score: 2},
			{Candidate: matching.Candidate{ID: 6, Name: "Eko", Activities: "BISNIS / FREELANCE", Skills: "data entry"}, Score: 1},
		},
	}
	out := ComposeAlumni(in, Indonesian)

	assert.Contains(t, out, "- Bisnis 'Kopi Kita' membutuhkan dukungan: data analysis, kolaborasi: N/A, butuh SDM: N/A. Gambarkan bagaimana profil Jane sangat cocok untuk kebutuhan ini.\n")
	assert.Contains(t, out, "- Nama: Dewi (Aktivitas: Bekerja). Keahlian/Detail Relevan: data analysis with python")
	assert.Contains(t, out, "- Nama: Eko (Aktivitas: Bisnis / freelance). Keahlian/Detail Relevan: data entry")
	assert.Less(t, strings.Index(out, "Dewi"), strings.Index(out, "Eko"))
	assert.True(t, strings.HasSuffix(out, "Analisis Anda harus mencerminkan multi-aktivitas ini."))
}

func TestComposeAlumniNeverUsesHonorifics(t *testing.T) {
	out := ComposeAlumni(AlumniInput{Profile: workerProfile()}, Indonesian)
	assert.NotContains(t, out, "alumni Jane")
	assert.NotContains(t, out, "Bapak Jane")
	assert.NotContains(t, out, "Ibu Jane")
}

func TestComposeAlumniLanguagesCarrySameData(t *testing.T) {
	in := AlumniInput{
		Profile: workerProfile(),
		Collaborators: []matching.Match{
			{Candidate: matching.Candidate{ID: 5, Name: "Dewi", Activities: "bekerja", Text: "python"}, Score: 1},
		},
	}
	id := ComposeAlumni(in, Indonesian)
	en := ComposeAlumni(in, English)

	assert.NotEqual(t, id, en)
	for _, want := range []string{"Jane Doe", "data analysis, public speaking", "SQL", "mentor in data visualization", "Dewi", "python"} {
		assert.Contains(t, id, want)
		assert.Contains(t, en, want)
	}
	assert.Contains(t, en, "Support needed: mentor in data visualization.\n")
	assert.Contains(t, en, "- Skill: SQL\n")
}

func TestComposeAlumniIsDeterministic(t *testing.T) {
	in := AlumniInput{Profile: workerProfile()}
	assert.Equal(t, ComposeAlumni(in, English), ComposeAlumni(in, English))
}

func TestComposeProject(t *testing.T) {
	in := ProjectInput{
		Idea: "  aplikasi kasir untuk UMKM  ",
		Candidates: []matching.Match{
			{Candidate: matching.Candidate{ID: 3, Name: "Bayu", Activities: "bekerja", Skills: "golang", Text: "aplikasi kasir"}, Score: 2},
			{Candidate: matching.Candidate{ID: 8, Name: "Sari", Activities: "bisnis / freelance", Skills: "akuntansi", Text: "umkm kuliner"}, Score: 1},
		},
	}
	out := ComposeProject(in, Indonesian)

	assert.Contains(t, out, "Ide Proyek:\naplikasi kasir untuk UMKM\n")
	assert.Contains(t, out, "maksimal 2 baris")
	assert.Contains(t, out, "| Nama Alumni | Peran yang Direkomendasikan | Justifikasi |")
	assert.Contains(t, out, "- Nama: Bayu (Aktivitas: Bekerja). Keahlian: golang. Detail Relevan: aplikasi kasir. Skor kecocokan: 2")

	en := ComposeProject(in, English)
	assert.Contains(t, en, "at most 2 rows")
	assert.Contains(t, en, "| Alumni Name | Recommended Role | Justification |")
}

func TestComposeProjectNoCandidates(t *testing.T) {
	out := ComposeProject(ProjectInput{Idea: "observatorium"}, Indonesian)
	assert.Contains(t, out, "Tidak ada alumni yang cocok ditemukan untuk ide proyek ini.")
	assert.NotContains(t, out, "| Nama Alumni |")

	en := ComposeProject(ProjectInput{Idea: "observatory"}, English)
	assert.Contains(t, en, "No matching alumni found for this project idea.")
}

func TestSystemPreamble(t *testing.T) {
	assert.Contains(t, SystemPreamble(Indonesian), "bahasa Indonesia")
	assert.Contains(t, SystemPreamble(English), "English")
}
