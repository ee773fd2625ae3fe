package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/repository"
	"portfolio-backend/pkg/cache"
)

// SkillService manages skills grouped into per-category reorderable lists.
type SkillService interface {
	Create(ctx context.Context, req model.SkillRequest) (*model.Skill, error)
	Update(ctx context.Context, id uuid.UUID, req model.SkillRequest) (*model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Skill, error)
	ListGrouped(ctx context.Context) (map[string][]*model.Skill, error)
}

type skillService struct {
	skillRepo   repository.SkillRepository
	invalidator cache.Invalidator
}

func NewSkillService(skillRepo repository.SkillRepository, invalidator cache.Invalidator) SkillService {
	return &skillService{
		skillRepo:   skillRepo,
		invalidator: invalidator,
	}
}

func (s *skillService) Create(ctx context.Context, req model.SkillRequest) (*model.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// New skills start at position 0 within their category; the next
	// reorder of that category rewrites all positions.
	skill := &model.Skill{
		ID:        uuid.New(),
		Name:      req.Name,
		Category:  req.Category,
		Level:     req.Level,
		Icon:      req.Icon,
		SortOrder: 0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagSkills); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id uuid.UUID, req model.SkillRequest) (*model.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Moving a skill to a different category keeps its sort_order; it
	// lands at that position among its new siblings until reordered.
	skill.Name = req.Name
	skill.Category = req.Category
	skill.Level = req.Level
	skill.Icon = req.Icon

	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagSkills); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.skillRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, cache.TagSkills)
}

func (s *skillService) List(ctx context.Context) ([]*model.Skill, error) {
	return s.skillRepo.List(ctx)
}

// ListGrouped buckets skills by category, each bucket already in display
// order from the repository.
func (s *skillService) ListGrouped(ctx context.Context) (map[string][]*model.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*model.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}

	return grouped, nil
}
