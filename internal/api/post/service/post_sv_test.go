package postService

import (
	posts "AutomatrixBackend/internal/api/post"
	postRepository "AutomatrixBackend/internal/api/post/repository"
	"AutomatrixBackend/internal/entity"
	"AutomatrixBackend/pkg/utils"
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	mu      sync.Mutex
	posts   map[string]entity.BlogPost
	pingErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]entity.BlogPost{}}
}

func (f *fakePostRepo) Ping(ctx context.Context) error {
	return f.pingErr
}

func (f *fakePostRepo) NewClient(tx bool) (postRepository.Client, error) {
	return postRepository.Client{
		Posts:    f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakePostRepo) CreatePost(ctx context.Context, post entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPostByID(ctx context.Context, id string) (entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return entity.BlogPost{}, sql.ErrNoRows
	}
	return post, nil
}

func (f *fakePostRepo) GetAllPosts(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]entity.BlogPost, 0, len(f.posts))
	for _, post := range f.posts {
		if publishedOnly && !post.Published {
			continue
		}
		result = append(result, post)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (f *fakePostRepo) UpdatePost(ctx context.Context, post entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.posts[post.ID]
	if !ok {
		return sql.ErrNoRows
	}
	post.CreatedAt = existing.CreatedAt
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) DeletePost(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.posts, id)
	return nil
}

func newTestService(repo *fakePostRepo) PostService {
	return New(logrus.New(), repo, utils.New())
}

func TestGetAllPostsFiltersUnpublishedForAnonymous(t *testing.T) {
	repo := newFakePostRepo()
	repo.posts["01A"] = entity.BlogPost{ID: "01A", Title: "draft", Published: false, CreatedAt: time.Now()}
	repo.posts["01B"] = entity.BlogPost{ID: "01B", Title: "live", Published: true, CreatedAt: time.Now().Add(-time.Hour)}

	svc := newTestService(repo)

	anonymous, err := svc.GetAllPosts(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.Equal(t, "live", anonymous[0].Title)

	admin, err := svc.GetAllPosts(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestGetAllPostsOrdersNewestFirst(t *testing.T) {
	repo := newFakePostRepo()
	now := time.Now()
	repo.posts["old"] = entity.BlogPost{ID: "old", Title: "old", Published: true, CreatedAt: now.Add(-2 * time.Hour)}
	repo.posts["new"] = entity.BlogPost{ID: "new", Title: "new", Published: true, CreatedAt: now}

	svc := newTestService(repo)

	result, err := svc.GetAllPosts(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "new", result[0].Title)
	assert.Equal(t, "old", result[1].Title)
}

func TestGetAllPostsReturnsEmptySliceNotNil(t *testing.T) {
	svc := newTestService(newFakePostRepo())

	result, err := svc.GetAllPosts(context.Background(), false)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetAllPostsDatabaseUnavailable(t *testing.T) {
	repo := newFakePostRepo()
	repo.pingErr = errors.New("connection refused")

	svc := newTestService(repo)

	_, err := svc.GetAllPosts(context.Background(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, posts.ErrDatabaseUnavailable))
}

func TestCreatePostAppliesDefaults(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	result, err := svc.CreatePost(context.Background(), posts.CreatePostRequest{
		Title:       "Hello",
		Content:     "Body",
		Description: "Desc",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, posts.DefaultCategory, result.Category)
	assert.Equal(t, posts.DefaultAuthor, result.Author)
	assert.Equal(t, "", result.Image)
	assert.False(t, result.Published)
	assert.Equal(t, result.CreatedAt, result.UpdatedAt)

	stored, ok := repo.posts[result.ID]
	require.True(t, ok)
	assert.Equal(t, "Hello", stored.Title)
}

func TestCreatePostKeepsExplicitFields(t *testing.T) {
	svc := newTestService(newFakePostRepo())

	result, err := svc.CreatePost(context.Background(), posts.CreatePostRequest{
		Title:       "Hello",
		Content:     "Body",
		Description: "Desc",
		Category:    "Engineering",
		Author:      "Jane",
		Published:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Engineering", result.Category)
	assert.Equal(t, "Jane", result.Author)
	assert.True(t, result.Published)
}

func TestUpdatePostOverwritesAbsentFieldsWithDefaults(t *testing.T) {
	repo := newFakePostRepo()
	createdAt := time.Now().Add(-24 * time.Hour)
	repo.posts["01C"] = entity.BlogPost{
		ID:        "01C",
		Title:     "Original",
		Content:   "Original body",
		Category:  "Engineering",
		Author:    "Jane",
		Published: true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	svc := newTestService(repo)

	result, err := svc.UpdatePost(context.Background(), posts.UpdatePostRequest{
		ID:      "01C",
		Title:   "Renamed",
		Content: "New body",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", result.Title)
	assert.Equal(t, posts.DefaultCategory, result.Category)
	assert.Equal(t, posts.DefaultAuthor, result.Author)
	assert.False(t, result.Published)
	assert.Equal(t, createdAt, result.CreatedAt)
	assert.True(t, result.UpdatedAt.After(createdAt))
}

func TestUpdatePostUnknownID(t *testing.T) {
	svc := newTestService(newFakePostRepo())

	_, err := svc.UpdatePost(context.Background(), posts.UpdatePostRequest{ID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, posts.ErrUpdatePost))
}

func TestDeletePost(t *testing.T) {
	repo := newFakePostRepo()
	repo.posts["01D"] = entity.BlogPost{ID: "01D"}

	svc := newTestService(repo)

	require.NoError(t, svc.DeletePost(context.Background(), "01D"))
	assert.Empty(t, repo.posts)
}

func TestDeletePostUnknownID(t *testing.T) {
	svc := newTestService(newFakePostRepo())

	err := svc.DeletePost(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, posts.ErrDeletePost))
}
