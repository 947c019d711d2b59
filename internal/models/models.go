package models

// Job types accepted by the board.
const (
	TypeInternship = "internship"
	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
)

// Application statuses. New applications always start at pending; transitions
// are driven by reviewers, not by this service.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// User account types.
const (
	UserStudent = "student"
	UserCompany = "company"
	UserAdmin   = "admin"
)

type Job struct {
	ID           int64    `gorm:"primaryKey" json:"id"`
	Title        string   `gorm:"not null" json:"title"`
	Company      string   `gorm:"not null" json:"company"`
	Location     string   `gorm:"not null" json:"location"`
	Type         string   `gorm:"not null" json:"type"`
	Salary       string   `json:"salary,omitempty"`
	Description  string   `gorm:"type:text" json:"description"`
	Requirements []string `gorm:"serializer:json" json:"requirements"`
	PostedDate   string   `json:"postedDate"`
	Deadline     string   `json:"deadline,omitempty"`
	Applications int      `json:"applications"`
}

type Application struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	JobID       string `json:"jobId"`
	JobTitle    string `json:"job_title"`
	FullName    string `gorm:"not null" json:"fullName"`
	Email       string `gorm:"not null" json:"email"`
	University  string `json:"university"`
	Major       string `json:"major"`
	Year        string `json:"year"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	CVFile      string `json:"cvFile,omitempty"`
	Status      string `gorm:"default:'pending'" json:"status"`
	AppliedAt   string `json:"applied_at"`
}

type User struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserType  string `json:"userType"`
}
