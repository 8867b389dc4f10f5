package domain

// User represents a user of the application. Other entities reference users by
// id for owner/creator attribution only; a user never owns the referencing row.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialised
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	AuditFields
}
