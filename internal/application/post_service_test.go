package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/entity"
	repo "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/repository"
)

type fakePostRepo struct {
	posts []*entity.Post

	gotLimit  int
	gotOffset int
}

func (f *fakePostRepo) List(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	f.gotLimit, f.gotOffset = limit, offset
	if offset >= len(f.posts) {
		return []*entity.Post{}, nil
	}
	end := offset + limit
	if end > len(f.posts) {
		end = len(f.posts)
	}
	return f.posts[offset:end], nil
}

func (f *fakePostRepo) Count(ctx context.Context) (int, error) {
	return len(f.posts), nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakePostRepo) Create(ctx context.Context, p *entity.Post) error {
	p.ID = "new-id"
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, p *entity.Post) error {
	for _, existing := range f.posts {
		if existing.ID == p.ID {
			existing.Title, existing.Body = p.Title, p.Body
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakePostRepo) Delete(ctx context.Context, id string) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func somePosts(n int) []*entity.Post {
	posts := make([]*entity.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, &entity.Post{ID: string(rune('a' + i)), Title: "t", Body: "b"})
	}
	return posts
}

func TestPostList_Pagination(t *testing.T) {
	f := &fakePostRepo{posts: somePosts(25)}
	s := NewPostService(f)

	page, err := s.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if f.gotLimit != 10 || f.gotOffset != 10 {
		t.Fatalf("repo call: limit=%d offset=%d, want 10/10", f.gotLimit, f.gotOffset)
	}
	if page.Total != 25 || page.TotalPages != 3 {
		t.Fatalf("page meta: total=%d pages=%d, want 25/3", page.Total, page.TotalPages)
	}
	if len(page.Posts) != 10 {
		t.Fatalf("page size: got %d want 10", len(page.Posts))
	}
}

func TestPostList_ClampsPage(t *testing.T) {
	f := &fakePostRepo{posts: somePosts(3)}
	s := NewPostService(f)

	page, err := s.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("page: got %d want 1", page.Page)
	}
	if f.gotOffset != 0 {
		t.Fatalf("offset: got %d want 0", f.gotOffset)
	}
}

func TestPostDelete_Missing(t *testing.T) {
	f := &fakePostRepo{posts: somePosts(2)}
	s := NewPostService(f)

	err := s.Delete(context.Background(), "does-not-exist")
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(f.posts) != 2 {
		t.Fatalf("post count changed: got %d want 2", len(f.posts))
	}
}

func TestPostUpdate_Missing(t *testing.T) {
	f := &fakePostRepo{}
	s := NewPostService(f)

	_, err := s.Update(context.Background(), "nope", "t", "b")
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
