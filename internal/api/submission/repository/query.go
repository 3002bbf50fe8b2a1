package submissionRepository

const (
	queryCreateSubmission = `
		INSERT INTO contact_submissions (
			id,
			name,
			email,
			message,
			status,
			created_at
		) VALUES (
			:id,
			:name,
			:email,
			:message,
			:status,
			:created_at
		)
	`

	queryGetAllSubmissions = `
		SELECT
			id,
			name,
			email,
			message,
			status,
			created_at
		FROM contact_submissions
		ORDER BY created_at DESC
	`

	queryDeleteSubmission = `
		DELETE FROM contact_submissions
		WHERE id = :id
	`
)
