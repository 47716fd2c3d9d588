package matching

import "github.com/yoockh/alumni-advisor/internal/models"

// Pool is a full scan of the alumni table and every detail table.
type Pool struct {
	Alumni     []models.Alumni
	Workers    []models.WorkerDetail
	Homemakers []models.HomemakerDetail
	Businesses []models.BusinessDetail
}

func (p Pool) index() map[int64]map[models.ActivityKind]models.ActivityDetail {
	idx := map[int64]map[models.ActivityKind]models.ActivityDetail{}
	add := func(d models.ActivityDetail) {
		m := idx[d.OwnerID()]
		if m == nil {
			m = map[models.ActivityKind]models.ActivityDetail{}
			idx[d.OwnerID()] = m
		}
		// first row per (alumnus, activity) wins
		if _, ok := m[d.Kind()]; !ok {
			m[d.Kind()] = d
		}
	}
	for _, d := range p.Workers {
		add(d)
	}
	for _, d := range p.Homemakers {
		add(d)
	}
	for _, d := range p.Businesses {
		add(d)
	}
	return idx
}

// Profiles builds a composite profile for every alumnus, in table order.
func (p Pool) Profiles() []CompositeProfile {
	idx := p.index()
	out := make([]CompositeProfile, 0, len(p.Alumni))
	for _, a := range p.Alumni {
		out = append(out, BuildProfile(a, idx[a.ID]))
	}
	return out
}

func (p Pool) Candidates() []Candidate {
	profiles := p.Profiles()
	out := make([]Candidate, 0, len(profiles))
	for _, prof := range profiles {
		out = append(out, CandidateOf(prof))
	}
	return out
}
