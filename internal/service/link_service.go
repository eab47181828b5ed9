package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/scoring"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LinkService struct {
	LinkRepo *repository.LinkRepository
	TestRepo *repository.TestRepository
	Stats    *StatsService
}

func NewLinkService(linkRepo *repository.LinkRepository, testRepo *repository.TestRepository, stats *StatsService) *LinkService {
	return &LinkService{
		LinkRepo: linkRepo,
		TestRepo: testRepo,
		Stats:    stats,
	}
}

type CreateLinkInput struct {
	Title   string `json:"title" binding:"required"`
	TestID  uint   `json:"testId" binding:"required"`
	MaxUses int    `json:"maxUses" binding:"required,min=1"`
}

func (s *LinkService) Create(ctx context.Context, in CreateLinkInput, creator *model.User) (*model.Link, error) {
	if _, err := s.TestRepo.FindByID(in.TestID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	link := &model.Link{
		Token:        uuid.NewString(),
		Title:        in.Title,
		TestID:       in.TestID,
		CreatedByID:  creator.ID,
		SupervisorID: creator.SupervisorID,
		MaxUses:      in.MaxUses,
	}
	if err := s.LinkRepo.Create(link); err != nil {
		return nil, err
	}

	s.Stats.Record(ctx, creator.ID, time.Now(), Delta{Links: LinkDelta{Created: 1, Active: 1}})
	return link, nil
}

func (s *LinkService) ListByCreator(creatorID uint) ([]*model.Link, error) {
	return s.LinkRepo.FindByCreator(creatorID)
}

// TestPreview is the candidate-facing form of a test: same structure,
// sanitized section payloads.
type TestPreview struct {
	Link  *model.Link  `json:"link"`
	Test  *model.Test  `json:"test"`
	Parts []model.Part `json:"parts"`
}

// Preview resolves a link token to its sanitized test view and counts the
// visit. The view never carries answers or correct-answer indices, and
// option banks are shuffled per request.
func (s *LinkService) Preview(ctx context.Context, token string) (*TestPreview, error) {
	link, err := s.LinkRepo.FindByToken(token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLinkNotFound
		}
		return nil, err
	}

	test, err := s.TestRepo.FindByIDWithContent(link.TestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	if err := s.LinkRepo.IncrementVisits(link.ID); err != nil {
		return nil, err
	}
	s.Stats.Record(ctx, link.CreatedByID, time.Now(), Delta{Links: LinkDelta{Visits: 1}})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	parts := make([]model.Part, len(test.Parts))
	for i, part := range test.Parts {
		sanitized := part
		sanitized.Sections = make([]model.Section, len(part.Sections))
		for j, sec := range part.Sections {
			out := sec
			out.Content = scoring.SanitizeContent(sec.Type, sec.Content, rng)
			sanitized.Sections[j] = out
		}
		parts[i] = sanitized
	}
	test.Parts = nil

	return &TestPreview{Link: link, Test: test, Parts: parts}, nil
}

// Consume claims one use of the link for a starting candidate. The claim
// is atomic: once max uses are taken, concurrent candidates are refused.
func (s *LinkService) Consume(ctx context.Context, link *model.Link) error {
	claimed, usedCount, err := s.LinkRepo.ConsumeUse(link.ID)
	if err != nil {
		return err
	}
	if !claimed {
		return util.ErrMaxUsesReached
	}

	delta := Delta{Links: LinkDelta{Usages: 1}}
	// The claim that exhausts the link retires it from the active pool.
	// The post-claim count decides, not the stale copy on link.
	if linkExhausted(usedCount, link.MaxUses) {
		delta.Links.Active = -1
	}
	s.Stats.Record(ctx, link.CreatedByID, time.Now(), delta)
	return nil
}

// linkExhausted reports whether the claim that produced usedCount took
// the link's last use.
func linkExhausted(usedCount, maxUses int) bool {
	return maxUses > 0 && usedCount >= maxUses
}

func (s *LinkService) FindByToken(token string) (*model.Link, error) {
	link, err := s.LinkRepo.FindByToken(token)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrLinkNotFound
	}
	return link, err
}

func (s *LinkService) Delete(token string) error {
	link, err := s.LinkRepo.FindByToken(token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrLinkNotFound
		}
		return err
	}
	return s.LinkRepo.Delete(link)
}
