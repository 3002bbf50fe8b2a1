package postService

import (
	posts "AutomatrixBackend/internal/api/post"
	postRepository "AutomatrixBackend/internal/api/post/repository"
	"AutomatrixBackend/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type PostService interface {
	GetAllPosts(ctx context.Context, authenticated bool) ([]posts.PostResponse, error)
	CreatePost(ctx context.Context, request posts.CreatePostRequest) (posts.PostResponse, error)
	UpdatePost(ctx context.Context, request posts.UpdatePostRequest) (posts.PostResponse, error)
	DeletePost(ctx context.Context, id string) error
}

func New(log *logrus.Logger, postRepo postRepository.Repository, utils utils.IUtils) PostService {
	return &postService{
		log:      log,
		postRepo: postRepo,
		utils:    utils,
	}
}

type postService struct {
	log      *logrus.Logger
	postRepo postRepository.Repository
	utils    utils.IUtils
}
