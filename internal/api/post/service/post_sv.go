package postService

import (
	posts "AutomatrixBackend/internal/api/post"
	"AutomatrixBackend/internal/entity"
	"AutomatrixBackend/pkg/response"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func makePostResponse(post entity.BlogPost) posts.PostResponse {
	return posts.PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		Description: post.Description,
		Image:       post.Image,
		Published:   post.Published,
		Category:    post.Category,
		Author:      post.Author,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func applyPostDefaults(post *entity.BlogPost) {
	if post.Category == "" {
		post.Category = posts.DefaultCategory
	}
	if post.Author == "" {
		post.Author = posts.DefaultAuthor
	}
}

// GetAllPosts returns every post for authenticated callers and only
// published posts for anonymous ones.
func (s *postService) GetAllPosts(ctx context.Context, authenticated bool) ([]posts.PostResponse, error) {
	if err := s.postRepo.Ping(ctx); err != nil {
		s.log.Error("database unreachable while listing posts: ", err)
		return nil, response.WithCause(posts.ErrDatabaseUnavailable, err)
	}

	repoClient, err := s.postRepo.NewClient(false)
	if err != nil {
		return nil, response.WithCause(posts.ErrFetchPosts, err)
	}

	list, err := repoClient.Posts.GetAllPosts(ctx, !authenticated)
	if err != nil {
		return nil, response.WithCause(posts.ErrFetchPosts, err)
	}

	result := make([]posts.PostResponse, 0, len(list))
	for _, post := range list {
		result = append(result, makePostResponse(post))
	}

	return result, nil
}

func (s *postService) CreatePost(ctx context.Context, request posts.CreatePostRequest) (posts.PostResponse, error) {
	now := time.Now()

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return posts.PostResponse{}, response.WithCause(posts.ErrCreatePost, err)
	}

	post := entity.BlogPost{
		ID:          id,
		Title:       request.Title,
		Content:     request.Content,
		Description: request.Description,
		Image:       request.Image,
		Published:   request.Published,
		Category:    request.Category,
		Author:      request.Author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyPostDefaults(&post)

	repoClient, err := s.postRepo.NewClient(true)
	if err != nil {
		return posts.PostResponse{}, response.WithCause(posts.ErrCreatePost, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	if err := repoClient.Posts.CreatePost(ctx, post); err != nil {
		return posts.PostResponse{}, response.WithCause(posts.ErrCreatePost, err)
	}

	if err := repoClient.Commit(); err != nil {
		return posts.PostResponse{}, response.WithCause(posts.ErrCreatePost, err)
	}

	s.log.WithFields(logrus.Fields{
		"post_id": post.ID,
	}).Info("blog post created")

	return makePostResponse(post), nil
}

// UpdatePost overwrites the whole record. Fields left empty in the request
// are written back as defaults, matching the admin form which always submits
// the complete field set. Concurrent updates resolve last writer wins.
func (s *postService) UpdatePost(ctx context.Context, request posts.UpdatePostRequest) (posts.PostResponse, error) {
	repoClient, err := s.postRepo.NewClient(true)
	if err != nil {
		return posts.PostResponse{}, response.WithCause(posts.ErrUpdatePost, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	existing, err := repoClient.Posts.GetPostByID(ctx, request.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WithFields(logrus.Fields{
				"post_id": request.ID,
			}).Warn("update requested for unknown post")
			return posts.PostResponse{}, response.WithCause(posts.ErrUpdatePost, posts.ErrPostNotFound)
		}
		return posts.PostResponse{}, response.WithCause(posts.ErrUpdatePost, err)
	}

	post := entity.BlogPost{
		ID:          request.ID,
		Title:       request.Title,
		Content:     request.Content,
		Description: request.Description,
		Image:       request.Image,
		Published:   request.Published,
		Category:    request.Category,
		Author:      request.Author,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	applyPostDefaults(&post)

	if err := repoClient.Posts.UpdatePost(ctx, post); err != nil {
		return posts.PostResponse{}, response.WithCause(posts.ErrUpdatePost, err)
	}

	if err := repoClient.Commit(); err != nil {
		return posts.PostResponse{}, response.WithCause(posts.ErrUpdatePost, err)
	}

	s.log.WithFields(logrus.Fields{
		"post_id": post.ID,
	}).Info("blog post updated")

	return makePostResponse(post), nil
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	repoClient, err := s.postRepo.NewClient(true)
	if err != nil {
		return response.WithCause(posts.ErrDeletePost, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	if err := repoClient.Posts.DeletePost(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WithFields(logrus.Fields{
				"post_id": id,
			}).Warn("delete requested for unknown post")
			return response.WithCause(posts.ErrDeletePost, posts.ErrPostNotFound)
		}
		return response.WithCause(posts.ErrDeletePost, err)
	}

	if err := repoClient.Commit(); err != nil {
		return response.WithCause(posts.ErrDeletePost, err)
	}

	s.log.WithFields(logrus.Fields{
		"post_id": id,
	}).Info("blog post deleted")

	return nil
}
