package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Campus-Job-Board/internal/dtos"
)

// AnalyticsHandler serves the aggregate dashboard numbers. The data is
// static demo reporting, there is no aggregation pipeline behind it.
type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

func applicationTrends() []dtos.TrendPoint {
	return []dtos.TrendPoint{
		{Month: "Jan", Applications: 24},
		{Month: "Feb", Applications: 38},
		{Month: "Mar", Applications: 45},
		{Month: "Apr", Applications: 52},
		{Month: "May", Applications: 61},
		{Month: "Jun", Applications: 58},
	}
}

// Dashboard is the GET /analytics/dashboard endpoint
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.DashboardStats{
		TotalUsers:        1234,
		TotalCompanies:    156,
		TotalJobs:         89,
		TotalApplications: 2845,
		ApplicationTrends: applicationTrends(),
		JobTypeData: []dtos.JobTypeShare{
			{Name: "Internship", Value: 60},
			{Name: "Full-time", Value: 30},
			{Name: "Part-time", Value: 10},
		},
		TopCompanies: []dtos.CompanyStat{
			{Name: "TechCorp", Applications: 42, Jobs: 5},
			{Name: "DataAnalytics Ltd", Applications: 38, Jobs: 3},
			{Name: "StartupXYZ", Applications: 25, Jobs: 2},
			{Name: "Innovation Inc", Applications: 18, Jobs: 4},
		},
	})
}

// ApplicationTrends is the GET /analytics/application-trends endpoint
func (h *AnalyticsHandler) ApplicationTrends(c *gin.Context) {
	c.JSON(http.StatusOK, applicationTrends())
}

// JobStats is the GET /analytics/job-stats endpoint
func (h *AnalyticsHandler) JobStats(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.JobStats{
		TotalJobs:           89,
		InternshipJobs:      53,
		FullTimeJobs:        24,
		PartTimeJobs:        12,
		AverageApplications: 32,
	})
}
