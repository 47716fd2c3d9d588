package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/alumni-advisor/internal/logger"
	"github.com/yoockh/alumni-advisor/internal/matching"
	"github.com/yoockh/alumni-advisor/internal/models"
	"github.com/yoockh/alumni-advisor/internal/prompt"
	"github.com/yoockh/alumni-advisor/internal/providers/llm"
	pgrepo "github.com/yoockh/alumni-advisor/internal/repositories/postgres"
	"github.com/yoockh/alumni-advisor/internal/utils"
)

type AdvisoryService interface {
	RecommendForAlumnus(ctx context.Context, fullName, language string) (string, error)
	RecommendForProject(ctx context.Context, ideaText, language string) (string, error)
}

// AdvisoryLogger records one summary document per recommendation request.
type AdvisoryLogger interface {
	Create(ctx context.Context, l *models.AdvisoryLog) error
}

// GenerationOptions are the LLM controls applied to every call.
type GenerationOptions struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type advisoryService struct {
	store    pgrepo.ProfileStore
	provider llm.Provider
	logs     AdvisoryLogger // optional
	gen      GenerationOptions
	log      *logrus.Logger
	now      func() time.Time
}

// NewAdvisoryService wires the recommendation flow. logs may be nil.
func NewAdvisoryService(store pgrepo.ProfileStore, provider llm.Provider, logs AdvisoryLogger, gen GenerationOptions, log *logrus.Logger) AdvisoryService {
	return &advisoryService{
		store:    store,
		provider: provider,
		logs:     logs,
		gen:      gen,
		log:      log,
		now:      time.Now,
	}
}

func (s *advisoryService) RecommendForAlumnus(ctx context.Context, fullName, language string) (string, error) {
	const op = "AdvisoryService.RecommendForAlumnus"

	lang := prompt.ParseLanguage(language)
	rec := s.begin(models.OpRecommendAlumnus, lang)

	if err := requireName(op, fullName); err != nil {
		return "", s.finish(ctx, rec, err)
	}

	var in prompt.AlumniInput
	err := s.store.Session(ctx, func(r pgrepo.ProfileReader) error {
		p, err := aggregate(ctx, r, fullName)
		if err != nil {
			return err
		}
		pool, err := loadPool(ctx, r)
		if err != nil {
			return err
		}
		in = prompt.AlumniInput{
			Profile:       p,
			Opportunities: matching.FindOpportunities(p.Skills, pool),
			Collaborators: collaborators(p, pool),
		}
		return nil
	})
	if err != nil {
		err = storeError(op, err)
		s.logUpstream(ctx, op, err)
		return "", s.finish(ctx, rec, err)
	}
	rec.Collaborators = len(in.Collaborators)
	rec.Opportunities = in.Opportunities.Len()

	text, err := s.complete(ctx, op, lang, prompt.ComposeAlumni(in, lang))
	return text, s.finish(ctx, rec, err)
}

func (s *advisoryService) RecommendForProject(ctx context.Context, ideaText, language string) (string, error) {
	const op = "AdvisoryService.RecommendForProject"

	lang := prompt.ParseLanguage(language)
	rec := s.begin(models.OpRecommendProject, lang)

	idea := strings.TrimSpace(ideaText)
	if idea == "" {
		return "", s.finish(ctx, rec, utils.E(utils.CodeInvalidArgument, op, "idea_text is required", nil))
	}

	var in prompt.ProjectInput
	err := s.store.Session(ctx, func(r pgrepo.ProfileReader) error {
		pool, err := loadPool(ctx, r)
		if err != nil {
			return err
		}
		in = prompt.ProjectInput{
			Idea:       idea,
			Candidates: matching.Rank(matching.Keywords(idea), pool.Candidates(), matching.ProjectCandidateLimit),
		}
		return nil
	})
	if err != nil {
		err = storeError(op, err)
		s.logUpstream(ctx, op, err)
		return "", s.finish(ctx, rec, err)
	}
	rec.Collaborators = len(in.Candidates)

	text, err := s.complete(ctx, op, lang, prompt.ComposeProject(in, lang))
	return text, s.finish(ctx, rec, err)
}

// complete sends one prompt and returns the trimmed answer. No retries.
func (s *advisoryService) complete(ctx context.Context, op string, lang prompt.Language, userText string) (string, error) {
	cctx := ctx
	if s.gen.Timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, s.gen.Timeout)
		defer cancel()
	}

	out, err := s.provider.Complete(cctx, llm.Request{
		System:      prompt.SystemPreamble(lang),
		User:        userText,
		MaxTokens:   s.gen.MaxTokens,
		Temperature: s.gen.Temperature,
	})
	if err == nil && strings.TrimSpace(out) == "" {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = utils.E(utils.CodeTimeout, op, "recommendation timed out", err)
		} else {
			err = utils.E(utils.CodeUpstream, op, "failed to generate recommendation", err)
		}
		s.logUpstream(ctx, op, err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (s *advisoryService) logUpstream(ctx context.Context, op string, err error) {
	switch utils.CodeOf(err) {
	case utils.CodeNotFound, utils.CodeInvalidArgument:
		return
	}
	var cause error = err
	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Err != nil {
		cause = ae.Err
	}
	s.log.WithFields(logrus.Fields{
		"op":         op,
		"code":       utils.CodeOf(err),
		"request_id": logger.RequestID(ctx),
	}).WithError(cause).Error("upstream failure")
}

func (s *advisoryService) begin(operation string, lang prompt.Language) *models.AdvisoryLog {
	return &models.AdvisoryLog{
		Operation: operation,
		Language:  string(lang),
		CreatedAt: s.now().UTC(),
	}
}

// finish writes the advisory log entry and passes err through untouched.
func (s *advisoryService) finish(ctx context.Context, rec *models.AdvisoryLog, err error) error {
	if s.logs == nil {
		return err
	}
	rec.RequestID = logger.RequestID(ctx)
	rec.LatencyMS = s.now().UTC().Sub(rec.CreatedAt).Milliseconds()
	rec.Outcome = "OK"
	if err != nil {
		rec.Outcome = string(utils.CodeOf(err))
	}

	lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if lerr := s.logs.Create(lctx, rec); lerr != nil {
		s.log.WithFields(logrus.Fields{
			"operation":  rec.Operation,
			"request_id": rec.RequestID,
		}).WithError(lerr).Warn("advisory log write failed")
	}
	return err
}
