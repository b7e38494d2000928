package repository

import (
	"context"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/entity"
)

// PostRepository persists blog posts. Update and Delete return ErrNotFound
// when the id does not exist.
type PostRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Create(ctx context.Context, p *entity.Post) error
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
}
