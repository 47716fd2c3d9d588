package matching

import (
	"strings"

	"github.com/yoockh/alumni-advisor/internal/models"
)

// Opportunities are detail rows whose stated needs mention one of the subject's skills.
type Opportunities struct {
	Business  []models.BusinessDetail
	Worker    []models.WorkerDetail
	Homemaker []models.HomemakerDetail
}

func (o Opportunities) Len() int {
	return len(o.Business) + len(o.Worker) + len(o.Homemaker)
}

// FilterOpportunities keeps rows where some skill is a case-insensitive
// substring of one of the row's need columns.
func FilterOpportunities[T models.ActivityDetail](skills []string, rows []T) []T {
	lowered := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			lowered = append(lowered, s)
		}
	}
	if len(lowered) == 0 {
		return nil
	}

	var out []T
	for _, row := range rows {
		if needsMatch(lowered, row.NeedsText()) {
			out = append(out, row)
		}
	}
	return out
}

func needsMatch(skills, texts []string) bool {
	for _, t := range texts {
		if t == "" {
			continue
		}
		t = strings.ToLower(t)
		for _, s := range skills {
			if strings.Contains(t, s) {
				return true
			}
		}
	}
	return false
}

// FindOpportunities runs the filter over every detail table of the pool.
func FindOpportunities(skills []string, pool Pool) Opportunities {
	return Opportunities{
		Business:  FilterOpportunities(skills, pool.Businesses),
		Worker:    FilterOpportunities(skills, pool.Workers),
		Homemaker: FilterOpportunities(skills, pool.Homemakers),
	}
}
