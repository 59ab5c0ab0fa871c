package documents

import (
	"context"
	"sync"

	"github.com/dkhromov/docboard/internal/common"
)

// Repository is the document store. Returned records are defensive copies;
// List preserves insertion order.
type Repository interface {
	List(ctx context.Context) ([]*Document, error)
	GetByID(ctx context.Context, id string) (*Document, error)
	Create(ctx context.Context, doc *Document) (*Document, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepository is a mutex-guarded, slice-backed Repository.
type MemoryRepository struct {
	mu   sync.Mutex
	docs []*Document
}

func NewMemoryRepository(seed ...*Document) *MemoryRepository {
	r := &MemoryRepository{docs: make([]*Document, 0, len(seed))}
	for _, d := range seed {
		r.docs = append(r.docs, d.Clone())
	}
	return r
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Document, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d.Clone())
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.docs {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, doc *Document) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := doc.Clone()
	r.docs = append(r.docs, stored)
	return stored.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.docs {
		if d.ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}
