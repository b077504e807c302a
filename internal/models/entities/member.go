package entities

import "time"

// MemberRow is the read model for the admin members listing: a profile
// joined with its roles. Roles arrive comma-joined from SQL and are
// split before serialization.
type MemberRow struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	FullName  *string   `db:"full_name"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	Roles     string    `db:"roles"`
}

// ContactRow is the read model for stored contact submissions.
type ContactRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// JobApplicationRow is the read model for stored job applications.
type JobApplicationRow struct {
	ID          string    `db:"id"`
	JobTitle    string    `db:"job_title"`
	FullName    string    `db:"full_name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	CoverLetter *string   `db:"cover_letter"`
	ResumeKey   *string   `db:"resume_key"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}
