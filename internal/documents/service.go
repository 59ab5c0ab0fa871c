package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkhromov/docboard/internal/common"
)

// Service defines document operations for the dashboard.
//
// List and Get simulate backend latency; Upload and Delete apply
// immediately, matching the loading-state behavior of the UI they back.
type Service interface {
	List(ctx context.Context) ([]*Document, error)
	Get(ctx context.Context, id string) (*Document, error)
	Upload(ctx context.Context, title, content, createdBy string) (*Document, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	latency time.Duration
}

func NewService(repo Repository, latency time.Duration) Service {
	return &service{repo: repo, latency: latency}
}

func (s *service) List(ctx context.Context) ([]*Document, error) {
	if err := common.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Document, error) {
	if err := common.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Upload stores a new document. Ingestion starts in the queued state.
func (s *service) Upload(ctx context.Context, title, content, createdBy string) (*Document, error) {
	doc := &Document{
		ID:           uuid.NewString(),
		Title:        title,
		Content:      content,
		LastModified: time.Now(),
		CreatedBy:    createdBy,
		State:        StateQueued,
	}

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("storing document: %w", err)
	}
	return created, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
