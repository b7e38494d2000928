package repository

import (
	"context"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/entity"
)

// UserRepository defines the credential store. Username uniqueness is
// enforced by the store itself: concurrent Creates with the same username
// yield exactly one success and one ErrDuplicate.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
