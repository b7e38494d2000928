package application

import (
	"context"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/entity"
	repo "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/repository"
)

// PostService wraps the post store. Post content carries no business rules
// here; the service exists so handlers stay free of persistence details.
type PostService struct {
	Posts repo.PostRepository
}

func NewPostService(posts repo.PostRepository) *PostService {
	return &PostService{Posts: posts}
}

// PostPage is one page of the public post list, newest first.
type PostPage struct {
	Posts      []*entity.Post
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// List returns the given 1-based page. Out-of-range pages clamp to 1.
func (s *PostService) List(ctx context.Context, page, perPage int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	total, err := s.Posts.Count(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.Posts.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	totalPages := (total + perPage - 1) / perPage
	return &PostPage{Posts: posts, Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}, nil
}

// ListAll returns every post for the admin dashboard.
func (s *PostService) ListAll(ctx context.Context) ([]*entity.Post, error) {
	total, err := s.Posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []*entity.Post{}, nil
	}
	return s.Posts.List(ctx, total, 0)
}

func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	return s.Posts.GetByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, title, body string) (*entity.Post, error) {
	p := &entity.Post{Title: title, Body: body}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update changes title and body. Returns repository.ErrNotFound when the id
// does not exist.
func (s *PostService) Update(ctx context.Context, id, title, body string) (*entity.Post, error) {
	p := &entity.Post{ID: id, Title: title, Body: body}
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.Posts.Delete(ctx, id)
}
