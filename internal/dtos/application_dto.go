package dtos

// ApplicationSubmission carries the multipart form fields of one submission.
// The CV file travels separately as the bound "cv" part.
type ApplicationSubmission struct {
	JobID       string `form:"jobId"`
	FullName    string `form:"fullName"`
	Email       string `form:"email"`
	University  string `form:"university"`
	Major       string `form:"major"`
	Year        string `form:"year"`
	CoverLetter string `form:"coverLetter"`
}

// AcceptanceRecord is returned once an application has been accepted and its
// CV stored.
type AcceptanceRecord struct {
	Message       string `json:"message"`
	ApplicationID int64  `json:"applicationId"`
}
