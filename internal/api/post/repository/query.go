package postRepository

const (
	queryCreatePost = `
		INSERT INTO blog_posts (
			id,
			title,
			content,
			description,
			image,
			published,
			category,
			author,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:content,
			:description,
			:image,
			:published,
			:category,
			:author,
			:created_at,
			:updated_at
		)
	`

	queryGetPostByID = `
		SELECT
			id,
			title,
			content,
			description,
			image,
			published,
			category,
			author,
			created_at,
			updated_at
		FROM blog_posts
		WHERE id = :id
	`

	queryGetAllPosts = `
		SELECT
			id,
			title,
			content,
			description,
			image,
			published,
			category,
			author,
			created_at,
			updated_at
		FROM blog_posts
		ORDER BY created_at DESC
	`

	queryGetPublishedPosts = `
		SELECT
			id,
			title,
			content,
			description,
			image,
			published,
			category,
			author,
			created_at,
			updated_at
		FROM blog_posts
		WHERE published = TRUE
		ORDER BY created_at DESC
	`

	queryUpdatePost = `
		UPDATE blog_posts
		SET
			title = :title,
			content = :content,
			description = :description,
			image = :image,
			published = :published,
			category = :category,
			author = :author,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeletePost = `
		DELETE FROM blog_posts
		WHERE id = :id
	`
)
