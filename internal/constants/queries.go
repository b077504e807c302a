package constants

// Raw SQL used by the sqlx read-side repositories.
const (
	GetRolesByUserID = `
		SELECT role FROM user_roles WHERE user_id = $1;
	`

	ListMembersWithRoles = `
		SELECT p.id, p.email, p.full_name, p.phone, p.created_at,
		       COALESCE(array_to_string(array_agg(ur.role) FILTER (WHERE ur.role IS NOT NULL), ','), '') AS roles
		FROM profiles p
		LEFT JOIN user_roles ur ON ur.user_id = p.id
		GROUP BY p.id, p.email, p.full_name, p.phone, p.created_at
		ORDER BY p.created_at DESC;
	`

	InsertContactSubmission = `
		INSERT INTO contact_submissions (id, name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;
	`

	ListContactSubmissions = `
		SELECT id, name, email, phone, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC;
	`

	InsertJobApplication = `
		INSERT INTO job_applications (id, job_title, full_name, email, phone, cover_letter, resume_key, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at;
	`

	ListJobApplications = `
		SELECT id, job_title, full_name, email, phone, cover_letter, resume_key, status, created_at
		FROM job_applications
		ORDER BY created_at DESC;
	`

	GetJobApplicationByID = `
		SELECT id, job_title, full_name, email, phone, cover_letter, resume_key, status, created_at
		FROM job_applications
		WHERE id = $1;
	`

	UpdateJobApplicationStatus = `
		UPDATE job_applications SET status = $2 WHERE id = $1;
	`

	CountPendingSignupRequests = `
		SELECT COUNT(*) FROM signup_requests WHERE status = 'pending';
	`

	CountAllowlistEntries = `
		SELECT COUNT(*) FROM email_allowlist;
	`
)
