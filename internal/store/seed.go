package store

import "github.com/justsurfingit/Campus-Job-Board/internal/models"

// SeedJobs returns the demo job postings loaded into the in-memory store on
// startup.
func SeedJobs() []models.Job {
	return []models.Job{
		{
			ID:           1,
			Title:        "Software Engineering Intern",
			Company:      "TechCorp",
			Location:     "San Francisco, CA",
			Type:         models.TypeInternship,
			Salary:       "$25-$35/hr",
			Description:  "Join our engineering team to develop cutting-edge software solutions.",
			Requirements: []string{"JavaScript", "React", "Node.js"},
			PostedDate:   "2023-10-01",
			Deadline:     "2023-12-15",
			Applications: 42,
		},
		{
			ID:           2,
			Title:        "Frontend Developer",
			Company:      "WebSolutions Inc",
			Location:     "Remote",
			Type:         models.TypeFullTime,
			Salary:       "$80,000-$100,000",
			Description:  "Build responsive and accessible web applications.",
			Requirements: []string{"HTML", "CSS", "JavaScript", "React"},
			PostedDate:   "2023-10-05",
			Deadline:     "2023-11-30",
			Applications: 38,
		},
		{
			ID:           3,
			Title:        "Data Science Intern",
			Company:      "DataAnalytics Ltd",
			Location:     "New York, NY",
			Type:         models.TypeInternship,
			Salary:       "$22-$30/hr",
			Description:  "Work with our data team to analyze and visualize complex datasets.",
			Requirements: []string{"Python", "SQL", "Machine Learning"},
			PostedDate:   "2023-10-10",
			Deadline:     "2023-12-20",
			Applications: 25,
		},
		{
			ID:           4,
			Title:        "Backend Developer",
			Company:      "DevSolutions",
			Location:     "Austin, TX",
			Type:         models.TypeFullTime,
			Salary:       "$90,000-$120,000",
			Description:  "Develop and maintain server-side applications.",
			Requirements: []string{"Node.js", "Express", "MongoDB"},
			PostedDate:   "2023-10-12",
			Deadline:     "2023-12-30",
			Applications: 30,
		},
		{
			ID:           5,
			Title:        "Product Manager",
			Company:      "InnovateTech",
			Location:     "Remote",
			Type:         models.TypeFullTime,
			Salary:       "$100,000-$130,000",
			Description:  "Lead cross-functional teams to deliver innovative products.",
			Requirements: []string{"Agile", "Scrum", "Product Management"},
			PostedDate:   "2023-10-15",
			Deadline:     "2023-12-15",
			Applications: 20,
		},
		{
			ID:           6,
			Title:        "Data Analyst",
			Company:      "DataInsights",
			Location:     "Chicago, IL",
			Type:         models.TypeFullTime,
			Salary:       "$80,000-$100,000",
			Description:  "Analyze and interpret complex data sets to drive business solutions.",
			Requirements: []string{"SQL", "Tableau", "Data Visualization"},
			PostedDate:   "2023-10-18",
			Deadline:     "2023-12-18",
			Applications: 15,
		},
		{
			ID:           7,
			Title:        "Machine Learning Engineer",
			Company:      "AI Innovations",
			Location:     "Remote",
			Type:         models.TypeFullTime,
			Salary:       "$110,000-$140,000",
			Description:  "Develop and implement machine learning models.",
			Requirements: []string{"Python", "TensorFlow", "Data Science"},
			PostedDate:   "2023-10-20",
			Deadline:     "2023-12-20",
			Applications: 10,
		},
		{
			ID:           8,
			Title:        "Cloud Engineer",
			Company:      "CloudSolutions",
			Location:     "Remote",
			Type:         models.TypeFullTime,
			Salary:       "$95,000-$125,000",
			Description:  "Design and manage cloud infrastructure.",
			Requirements: []string{"AWS", "Azure", "DevOps"},
			PostedDate:   "2023-10-22",
			Deadline:     "2023-12-22",
			Applications: 5,
		},
		{
			ID:           9,
			Title:        "DevOps Engineer",
			Company:      "CloudTech",
			Location:     "Seattle, WA",
			Type:         models.TypeFullTime,
			Salary:       "$100,000-$130,000",
			Description:  "Implement and manage CI/CD pipelines.",
			Requirements: []string{"Docker", "Kubernetes", "AWS"},
			PostedDate:   "2023-10-12",
			Deadline:     "2023-12-30",
			Applications: 30,
		},
		{
			ID:           10,
			Title:        "UX Designer",
			Company:      "DesignStudio",
			Location:     "Remote",
			Type:         models.TypeFullTime,
			Salary:       "$90,000-$110,000",
			Description:  "Create user-centered designs for web and mobile applications.",
			Requirements: []string{"Figma", "Adobe XD", "User Research"},
			PostedDate:   "2023-10-25",
			Deadline:     "2023-12-25",
			Applications: 2,
		},
	}
}

func SeedApplications() []models.Application {
	return []models.Application{
		{
			ID:          1,
			JobTitle:    "Software Engineering Intern",
			FullName:    "John Doe",
			Email:       "john@example.com",
			University:  "Tech University",
			Major:       "Computer Science",
			Status:      models.StatusPending,
			AppliedAt:   "2023-10-15",
			CoverLetter: "I am excited to apply for this position...",
		},
		{
			ID:          2,
			JobTitle:    "Frontend Developer",
			FullName:    "Jane Smith",
			Email:       "jane@example.com",
			University:  "State University",
			Major:       "Web Development",
			Status:      models.StatusReviewed,
			AppliedAt:   "2023-10-10",
			CoverLetter: "I have extensive experience with React...",
		},
	}
}

// SeedPasswordHash is the placeholder stored for the demo accounts. It is not
// a real bcrypt digest; AuthService.Login falls back to the mock length check
// only when it sees this exact value.
const SeedPasswordHash = "$2a$10$ExampleHashedPassword"

// SeedUsers returns the demo accounts.
func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, Email: "student@example.com", Password: SeedPasswordHash, FirstName: "John", LastName: "Doe", UserType: models.UserStudent},
		{ID: 2, Email: "company@example.com", Password: SeedPasswordHash, FirstName: "Tech", LastName: "Corp", UserType: models.UserCompany},
		{ID: 3, Email: "admin@example.com", Password: SeedPasswordHash, FirstName: "Admin", LastName: "User", UserType: models.UserAdmin},
	}
}
