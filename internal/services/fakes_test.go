package services

import (
	"context"
	"strings"
	"sync"

	"github.com/yoockh/alumni-advisor/internal/models"
	"github.com/yoockh/alumni-advisor/internal/providers/llm"
	pgrepo "github.com/yoockh/alumni-advisor/internal/repositories/postgres"
	"github.com/yoockh/alumni-advisor/internal/utils"
)

func strp(s string) *string { return &s }

// memStore is an in-memory ProfileStore. Rows are kept in id order.
type memStore struct {
	mu         sync.Mutex
	alumni     []models.Alumni
	workers    []models.WorkerDetail
	homemakers []models.HomemakerDetail
	businesses []models.BusinessDetail

	err      error // returned by every query when set
	queries  int
	sessions int
	open     int
}

func (m *memStore) Session(ctx context.Context, fn func(pgrepo.ProfileReader) error) error {
	m.mu.Lock()
	m.sessions++
	m.open++
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.open--
		m.mu.Unlock()
	}()
	return fn(m)
}

func (m *memStore) hit() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries++
	return m.err
}

func (m *memStore) FindAlumniByName(_ context.Context, fullName string) (*models.Alumni, error) {
	if err := m.hit(); err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(fullName))
	for _, a := range m.alumni {
		if strings.ToLower(strings.TrimSpace(a.FullName)) == want {
			a := a
			return &a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *memStore) ListAlumni(context.Context) ([]models.Alumni, error) {
	return m.alumni, m.hit()
}

func (m *memStore) GetDetail(_ context.Context, kind models.ActivityKind, id int64) (models.ActivityDetail, error) {
	if err := m.hit(); err != nil {
		return nil, err
	}
	var rows []models.ActivityDetail
	switch kind {
	case models.ActivityWorker:
		for _, r := range m.workers {
			rows = append(rows, r)
		}
	case models.ActivityHomemaker:
		for _, r := range m.homemakers {
			rows = append(rows, r)
		}
	case models.ActivityBusiness:
		for _, r := range m.businesses {
			rows = append(rows, r)
		}
	}
	for _, r := range rows {
		if r.OwnerID() == id {
			return r, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *memStore) ListWorkerDetails(context.Context) ([]models.WorkerDetail, error) {
	return m.workers, m.hit()
}

func (m *memStore) ListHomemakerDetails(context.Context) ([]models.HomemakerDetail, error) {
	return m.homemakers, m.hit()
}

func (m *memStore) ListBusinessDetails(context.Context) ([]models.BusinessDetail, error) {
	return m.businesses, m.hit()
}

type fakeLLM struct {
	reply string
	err   error
	block bool // wait for ctx to end

	calls []llm.Request
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls = append(f.calls, req)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func (f *fakeLLM) Close() error { return nil }

type fakeLogs struct {
	err  error
	logs []models.AdvisoryLog
}

func (f *fakeLogs) Create(_ context.Context, l *models.AdvisoryLog) error {
	f.logs = append(f.logs, *l)
	return f.err
}

// seedStore is a small alumni pool shared by the service tests.
func seedStore() *memStore {
	return &memStore{
		alumni: []models.Alumni{
			{ID: 1, FullName: "Jane Doe", Nickname: strp("Jane"), Activities: "bekerja", CombinedSkills: strp("data analysis, public speaking")},
			{ID: 2, FullName: "Kopi Owner", Activities: "bisnis / freelance", CombinedSkills: strp("barista")},
			{ID: 3, FullName: "Rumah Tangga", Activities: "ibu rumah tangga", CombinedSkills: strp("menjahit")},
			{ID: 4, FullName: "Budi Santoso", Nickname: strp("Budi"), Activities: "bekerja, bisnis / freelance", CombinedSkills: strp("python, data analysis")},
		},
		workers: []models.WorkerDetail{
			{AlumniID: 1, Skill: strp("SQL"), SupportNeeded: strp("mentor in data visualization")},
			{AlumniID: 4, Skill: strp("python"), SupportNeeded: strp("mentor karir")},
		},
		businesses: []models.BusinessDetail{
			{AlumniID: 2, BusinessName: strp("Kopi Kita"), SupportNeeded: strp("need someone skilled in Data Analysis")},
			{AlumniID: 4, BusinessName: strp("Budi Digital"), SupportNeeded: strp("modal usaha")},
		},
		homemakers: []models.HomemakerDetail{
			{AlumniID: 3, InterestArea: strp("menjahit"), NeedsGroup: strp("kelas public speaking")},
		},
	}
}
