package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yoockh/alumni-advisor/internal/models"
	"github.com/yoockh/alumni-advisor/internal/utils"
	"gorm.io/gorm"
)

// ProfileReader is the read-only view of the alumni tables.
type ProfileReader interface {
	// FindAlumniByName matches full_name ignoring case and surrounding whitespace.
	// With duplicates the lowest id wins.
	FindAlumniByName(ctx context.Context, fullName string) (*models.Alumni, error)
	ListAlumni(ctx context.Context) ([]models.Alumni, error)
	// GetDetail returns utils.ErrNotFound when the alumnus has no row for kind.
	GetDetail(ctx context.Context, kind models.ActivityKind, alumniID int64) (models.ActivityDetail, error)
	ListWorkerDetails(ctx context.Context) ([]models.WorkerDetail, error)
	ListHomemakerDetails(ctx context.Context) ([]models.HomemakerDetail, error)
	ListBusinessDetails(ctx context.Context) ([]models.BusinessDetail, error)
}

// ProfileStore hands out a reader pinned to a single pooled connection.
type ProfileStore interface {
	Session(ctx context.Context, fn func(ProfileReader) error) error
}

type alumniRepo struct {
	db *gorm.DB
}

func NewAlumniRepo(db *gorm.DB) ProfileStore {
	return &alumniRepo{db: db}
}

// Session runs fn on one connection; it is returned to the pool when fn returns.
func (r *alumniRepo) Session(ctx context.Context, fn func(ProfileReader) error) error {
	return r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(&alumniRepo{db: conn})
	})
}

func (r *alumniRepo) FindAlumniByName(ctx context.Context, fullName string) (*models.Alumni, error) {
	var a models.Alumni
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(full_name)) = LOWER(?)", strings.TrimSpace(fullName)).
		Order("id ASC").
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *alumniRepo) ListAlumni(ctx context.Context) ([]models.Alumni, error) {
	return listAll[models.Alumni](ctx, r.db, "id ASC")
}

func (r *alumniRepo) GetDetail(ctx context.Context, kind models.ActivityKind, alumniID int64) (models.ActivityDetail, error) {
	row := kind.NewDetail()
	if row == nil {
		return nil, fmt.Errorf("unknown activity kind %q", kind)
	}
	err := r.db.WithContext(ctx).
		Where("alumni_id = ?", alumniID).
		Order("alumni_id ASC").
		Take(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *alumniRepo) ListWorkerDetails(ctx context.Context) ([]models.WorkerDetail, error) {
	return listAll[models.WorkerDetail](ctx, r.db, "alumni_id ASC")
}

func (r *alumniRepo) ListHomemakerDetails(ctx context.Context) ([]models.HomemakerDetail, error) {
	return listAll[models.HomemakerDetail](ctx, r.db, "alumni_id ASC")
}

func (r *alumniRepo) ListBusinessDetails(ctx context.Context) ([]models.BusinessDetail, error) {
	return listAll[models.BusinessDetail](ctx, r.db, "alumni_id ASC")
}

func listAll[T any](ctx context.Context, db *gorm.DB, order string) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).Order(order).Find(&rows).Error
	return rows, err
}
