package postRepository

import (
	"AutomatrixBackend/internal/entity"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type PostDB struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Content     string         `db:"content"`
	Description string         `db:"description"`
	Image       sql.NullString `db:"image"`
	Published   bool           `db:"published"`
	Category    sql.NullString `db:"category"`
	Author      sql.NullString `db:"author"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func makePost(row PostDB) entity.BlogPost {
	return entity.BlogPost{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		Description: row.Description,
		Image:       row.Image.String,
		Published:   row.Published,
		Category:    row.Category.String,
		Author:      row.Author.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *postsRepository) CreatePost(ctx context.Context, post entity.BlogPost) error {
	argsKV := map[string]interface{}{
		"id":          post.ID,
		"title":       post.Title,
		"content":     post.Content,
		"description": post.Description,
		"image":       post.Image,
		"published":   post.Published,
		"category":    post.Category,
		"author":      post.Author,
		"created_at":  post.CreatedAt,
		"updated_at":  post.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreatePost, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"post_id": post.ID,
		}).Error("failed to insert blog post: ", err)
		return err
	}

	return nil
}

func (r *postsRepository) GetPostByID(ctx context.Context, id string) (entity.BlogPost, error) {
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPostByID, argsKV)
	if err != nil {
		return entity.BlogPost{}, err
	}

	query = r.q.Rebind(query)

	var row PostDB
	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return entity.BlogPost{}, err
	}

	return makePost(row), nil
}

func (r *postsRepository) GetAllPosts(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error) {
	query := queryGetAllPosts
	if publishedOnly {
		query = queryGetPublishedPosts
	}

	var rows []PostDB
	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		r.log.Error("failed to list blog posts: ", err)
		return nil, err
	}

	result := make([]entity.BlogPost, 0, len(rows))
	for _, row := range rows {
		result = append(result, makePost(row))
	}

	return result, nil
}

func (r *postsRepository) UpdatePost(ctx context.Context, post entity.BlogPost) error {
	argsKV := map[string]interface{}{
		"id":          post.ID,
		"title":       post.Title,
		"content":     post.Content,
		"description": post.Description,
		"image":       post.Image,
		"published":   post.Published,
		"category":    post.Category,
		"author":      post.Author,
		"updated_at":  post.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdatePost, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"post_id": post.ID,
		}).Error("failed to update blog post: ", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *postsRepository) DeletePost(ctx context.Context, id string) error {
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePost, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"post_id": id,
		}).Error("failed to delete blog post: ", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
