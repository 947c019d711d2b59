package dtos

type TrendPoint struct {
	Month        string `json:"month"`
	Applications int    `json:"applications"`
}

type JobTypeShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type CompanyStat struct {
	Name         string `json:"name"`
	Applications int    `json:"applications"`
	Jobs         int    `json:"jobs"`
}

type JobStats struct {
	TotalJobs           int `json:"totalJobs"`
	InternshipJobs      int `json:"internshipJobs"`
	FullTimeJobs        int `json:"fullTimeJobs"`
	PartTimeJobs        int `json:"partTimeJobs"`
	AverageApplications int `json:"averageApplications"`
}

type DashboardStats struct {
	TotalUsers        int            `json:"totalUsers"`
	TotalCompanies    int            `json:"totalCompanies"`
	TotalJobs         int            `json:"totalJobs"`
	TotalApplications int            `json:"totalApplications"`
	ApplicationTrends []TrendPoint   `json:"applicationTrends"`
	JobTypeData       []JobTypeShare `json:"jobTypeData"`
	TopCompanies      []CompanyStat  `json:"topCompanies"`
}
