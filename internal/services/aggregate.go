package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/alumni-advisor/internal/matching"
	"github.com/yoockh/alumni-advisor/internal/models"
	pgrepo "github.com/yoockh/alumni-advisor/internal/repositories/postgres"
	"github.com/yoockh/alumni-advisor/internal/utils"
)

// aggregate loads one alumnus by name and every detail row of its declared activities.
func aggregate(ctx context.Context, r pgrepo.ProfileReader, fullName string) (matching.CompositeProfile, error) {
	a, err := r.FindAlumniByName(ctx, fullName)
	if err != nil {
		return matching.CompositeProfile{}, err
	}

	details := map[models.ActivityKind]models.ActivityDetail{}
	for _, k := range a.Kinds() {
		d, err := r.GetDetail(ctx, k, a.ID)
		if errors.Is(err, utils.ErrNotFound) {
			continue
		}
		if err != nil {
			return matching.CompositeProfile{}, err
		}
		details[k] = d
	}
	return matching.BuildProfile(*a, details), nil
}

// loadPool scans the alumni table and each detail table once.
func loadPool(ctx context.Context, r pgrepo.ProfileReader) (matching.Pool, error) {
	var (
		p   matching.Pool
		err error
	)
	if p.Alumni, err = r.ListAlumni(ctx); err != nil {
		return p, err
	}
	if p.Workers, err = r.ListWorkerDetails(ctx); err != nil {
		return p, err
	}
	if p.Homemakers, err = r.ListHomemakerDetails(ctx); err != nil {
		return p, err
	}
	if p.Businesses, err = r.ListBusinessDetails(ctx); err != nil {
		return p, err
	}
	return p, nil
}

// collaborators ranks every other alumnus against the subject's own blob.
func collaborators(subject matching.CompositeProfile, pool matching.Pool) []matching.Match {
	cands := matching.Exclude(pool.Candidates(), subject.SubjectID)
	return matching.Rank(matching.Keywords(subject.FullText), cands, matching.CollaboratorLimit)
}

// storeError maps a store failure to the client-facing taxonomy.
func storeError(op string, err error) error {
	var ae *utils.AppError
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeNotFound, op, "alumni not found", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return utils.E(utils.CodeTimeout, op, "alumni store timed out", err)
	}
	return utils.E(utils.CodeUpstream, op, "alumni store unavailable", err)
}

func requireName(op, fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "full_name is required", nil)
	}
	return nil
}
