package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/alumni-advisor/internal/models"
	"github.com/yoockh/alumni-advisor/internal/utils"
)

func TestProfileServiceAggregate(t *testing.T) {
	store := seedStore()
	svc := NewProfileService(store)

	p, err := svc.Aggregate(context.Background(), " BUDI santoso")
	require.NoError(t, err)

	assert.Equal(t, int64(4), p.SubjectID)
	assert.Equal(t, "Budi", p.Address())
	assert.Equal(t, []models.ActivityKind{models.ActivityWorker, models.ActivityBusiness}, p.Kinds)
	// business is declared second and overwrites support_needed
	v, ok := p.Details.Get("support_needed")
	require.True(t, ok)
	assert.Equal(t, "modal usaha", v)
	assert.Equal(t, "python data analysis python mentor karir modal usaha budi digital", p.FullText)
	assert.Zero(t, store.open)
}

func TestProfileServiceAggregateMissingDetailRow(t *testing.T) {
	store := seedStore()
	store.alumni = append(store.alumni, models.Alumni{ID: 9, FullName: "Tanpa Detail", Activities: "ibu rumah tangga, bekerja", CombinedSkills: strp("merajut")})

	p, err := NewProfileService(store).Aggregate(context.Background(), "Tanpa Detail")
	require.NoError(t, err)
	assert.Empty(t, p.Details)
	assert.Equal(t, "merajut", p.FullText)
}

func TestProfileServiceErrors(t *testing.T) {
	svc := NewProfileService(seedStore())

	_, err := svc.Aggregate(context.Background(), "")
	assert.Equal(t, utils.CodeInvalidArgument, utils.CodeOf(err))

	_, err = svc.Aggregate(context.Background(), "Nobody")
	assert.Equal(t, utils.CodeNotFound, utils.CodeOf(err))

	broken := seedStore()
	broken.err = errors.New("dial tcp: i/o timeout")
	_, err = NewProfileService(broken).Collaborators(context.Background(), "Jane Doe")
	assert.Equal(t, utils.CodeUpstream, utils.CodeOf(err))

	broken.err = context.DeadlineExceeded
	_, err = NewProfileService(broken).Aggregate(context.Background(), "Jane Doe")
	assert.Equal(t, utils.CodeTimeout, utils.CodeOf(err))
}

func TestProfileServiceCollaborators(t *testing.T) {
	store := seedStore()
	got, err := NewProfileService(store).Collaborators(context.Background(), "Jane Doe")
	require.NoError(t, err)

	ids := make([]int64, 0, len(got))
	for _, m := range got {
		ids = append(ids, m.ID)
		assert.Equal(t, 3, m.Score)
	}
	assert.Equal(t, []int64{2, 3, 4}, ids)
	assert.Equal(t, 1, store.sessions)
}

func TestProfileServiceCollaboratorsEmpty(t *testing.T) {
	store := &memStore{alumni: []models.Alumni{{ID: 1, FullName: "Solo", Activities: "bekerja"}}}
	got, err := NewProfileService(store).Collaborators(context.Background(), "Solo")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
