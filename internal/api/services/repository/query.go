package servicesRepository

const (
	queryCreateService = `
		INSERT INTO services (
			id,
			name,
			description,
			benefits,
			features,
			icon,
			published,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:description,
			:benefits,
			:features,
			:icon,
			:published,
			:created_at,
			:updated_at
		)
	`

	queryGetServiceByID = `
		SELECT
			id,
			name,
			description,
			benefits,
			features,
			icon,
			published,
			created_at,
			updated_at
		FROM services
		WHERE id = :id
	`

	queryGetAllServices = `
		SELECT
			id,
			name,
			description,
			benefits,
			features,
			icon,
			published,
			created_at,
			updated_at
		FROM services
		ORDER BY created_at DESC
	`

	queryGetPublishedServices = `
		SELECT
			id,
			name,
			description,
			benefits,
			features,
			icon,
			published,
			created_at,
			updated_at
		FROM services
		WHERE published = TRUE
		ORDER BY created_at DESC
	`

	queryUpdateService = `
		UPDATE services
		SET
			name = :name,
			description = :description,
			benefits = :benefits,
			features = :features,
			icon = :icon,
			published = :published,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteService = `
		DELETE FROM services
		WHERE id = :id
	`
)
