package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/alumni-advisor/internal/models"
)

func janePool() Pool {
	return Pool{
		Alumni: []models.Alumni{
			{ID: 1, FullName: "Jane Doe", Nickname: strp("Jane"), Activities: "bekerja", CombinedSkills: strp("data analysis, public speaking")},
			{ID: 2, FullName: "Kopi Owner", Activities: "bisnis / freelance", CombinedSkills: strp("barista")},
			{ID: 3, FullName: "Rumah Tangga", Activities: "ibu rumah tangga"},
		},
		Workers: []models.WorkerDetail{
			{AlumniID: 1, SupportNeeded: strp("mentor in data visualization")},
		},
		Businesses: []models.BusinessDetail{
			{AlumniID: 2, BusinessName: strp("Kopi Kita"), SupportNeeded: strp("need someone skilled in Data Analysis")},
		},
		Homemakers: []models.HomemakerDetail{
			{AlumniID: 3, InterestArea: strp("menjahit"), ClassExperience: strp("public speaking class")},
		},
	}
}

func TestFindOpportunitiesForJane(t *testing.T) {
	pool := janePool()
	skills := pool.Alumni[0].Skills()

	ops := FindOpportunities(skills, pool)

	require.Len(t, ops.Business, 1)
	assert.Equal(t, "Kopi Kita", models.Value(ops.Business[0].BusinessName))
	// "data analysis" is not a substring of "mentor in data visualization"
	assert.Empty(t, ops.Worker)
	// class_experience is not a need column
	assert.Empty(t, ops.Homemaker)
	assert.Equal(t, 1, ops.Len())
}

func TestFilterOpportunitiesIsIdempotent(t *testing.T) {
	rows := []models.WorkerDetail{
		{AlumniID: 1, Skill: strp("Python")},
		{AlumniID: 2, Description: strp("menjahit baju")},
		{AlumniID: 3, SupportNeeded: strp("butuh partner python dan sql")},
		{AlumniID: 4, Certification: strp("python cert")},
	}
	skills := []string{"python", " "}

	once := FilterOpportunities(skills, rows)
	twice := FilterOpportunities(skills, once)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
	assert.Equal(t, int64(1), once[0].AlumniID)
	assert.Equal(t, int64(3), once[1].AlumniID)
}

func TestFilterOpportunitiesWithoutSkills(t *testing.T) {
	rows := []models.HomemakerDetail{{AlumniID: 1, InterestArea: strp("apa saja")}}
	assert.Empty(t, FilterOpportunities(nil, rows))
	assert.Empty(t, FilterOpportunities([]string{"", "  "}, rows))
}

func TestPoolProfiles(t *testing.T) {
	pool := janePool()
	pool.Workers = append(pool.Workers, models.WorkerDetail{AlumniID: 1, Skill: strp("duplicate row ignored")})

	profiles := pool.Profiles()
	require.Len(t, profiles, 3)
	assert.Equal(t, "data analysis public speaking mentor in data visualization", profiles[0].FullText)
	assert.Equal(t, "barista need someone skilled in data analysis kopi kita", profiles[1].FullText)
	assert.Equal(t, "menjahit public speaking class", profiles[2].FullText)

	cands := pool.Candidates()
	require.Len(t, cands, 3)
	assert.Equal(t, "Kopi Owner", cands[1].Name)
	assert.Equal(t, "barista", cands[1].Skills)
}
