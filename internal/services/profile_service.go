package services

import (
	"context"

	"github.com/yoockh/alumni-advisor/internal/matching"
	pgrepo "github.com/yoockh/alumni-advisor/internal/repositories/postgres"
)

// ProfileService exposes the aggregation and matching steps without calling the LLM.
type ProfileService interface {
	Aggregate(ctx context.Context, fullName string) (*matching.CompositeProfile, error)
	Collaborators(ctx context.Context, fullName string) ([]matching.Match, error)
}

type profileService struct {
	store pgrepo.ProfileStore
}

func NewProfileService(store pgrepo.ProfileStore) ProfileService {
	return &profileService{store: store}
}

func (s *profileService) Aggregate(ctx context.Context, fullName string) (*matching.CompositeProfile, error) {
	const op = "ProfileService.Aggregate"

	if err := requireName(op, fullName); err != nil {
		return nil, err
	}

	var p matching.CompositeProfile
	err := s.store.Session(ctx, func(r pgrepo.ProfileReader) error {
		var err error
		p, err = aggregate(ctx, r, fullName)
		return err
	})
	if err != nil {
		return nil, storeError(op, err)
	}
	return &p, nil
}

func (s *profileService) Collaborators(ctx context.Context, fullName string) ([]matching.Match, error) {
	const op = "ProfileService.Collaborators"

	if err := requireName(op, fullName); err != nil {
		return nil, err
	}

	var out []matching.Match
	err := s.store.Session(ctx, func(r pgrepo.ProfileReader) error {
		p, err := aggregate(ctx, r, fullName)
		if err != nil {
			return err
		}
		pool, err := loadPool(ctx, r)
		if err != nil {
			return err
		}
		out = collaborators(p, pool)
		return nil
	})
	if err != nil {
		return nil, storeError(op, err)
	}
	if out == nil {
		out = []matching.Match{}
	}
	return out, nil
}
