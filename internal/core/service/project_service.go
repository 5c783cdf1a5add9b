package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

// ProjectService implements project postings. The owning client id is the
// authenticated subject at creation time and gates every mutation.
type ProjectService struct {
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, claims *auth.Claims, input ports.CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		ClientID:    claims.AccountID(),
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Status:      domain.ProjectDraft,
		Deadline:    input.Deadline,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}
	s.logger.Info().Str("project_id", created.ID).Str("client_id", created.ClientID).Msg("project created")
	return created, nil
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.FindAll(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) Update(ctx context.Context, claims *auth.Claims, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(claims, project.ClientID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Deadline != nil {
		project.Deadline = *input.Deadline
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(claims, project.ClientID); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}
