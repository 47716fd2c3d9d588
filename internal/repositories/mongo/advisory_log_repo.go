package mongo

import (
	"context"
	"time"

	"github.com/yoockh/alumni-advisor/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdvisoryLogRepository is write-only; operators read advisory_logs directly.
type AdvisoryLogRepository interface {
	Create(ctx context.Context, l *models.AdvisoryLog) error
}

type advisoryLogRepo struct {
	col *mongo.Collection
	ttl time.Duration
	now func() time.Time
}

// NewAdvisoryLogRepo stores documents in advisory_logs; ttl sets ExpiresAt when the caller left it zero.
func NewAdvisoryLogRepo(db *mongo.Database, ttl time.Duration) AdvisoryLogRepository {
	return newAdvisoryLogRepo(db.Collection("advisory_logs"), ttl)
}

func newAdvisoryLogRepo(col *mongo.Collection, ttl time.Duration) *advisoryLogRepo {
	return &advisoryLogRepo{col: col, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

func (r *advisoryLogRepo) Create(ctx context.Context, l *models.AdvisoryLog) error {
	r.stamp(l)
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *advisoryLogRepo) stamp(l *models.AdvisoryLog) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.now()
	}
	if l.ExpiresAt.IsZero() && r.ttl > 0 {
		l.ExpiresAt = l.CreatedAt.Add(r.ttl)
	}
}
