package dto

import "github.com/devika/facultyhub/internal/app/models"

// ReportRequest carries the report/approvals query parameters
type ReportRequest struct {
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	FilterType string `form:"filterType"` // all | Conferences | Journals | Patents | Workshops
	Title      string `form:"title"`
	Status     string `form:"status"`
	FacultyID  string `form:"facultyId"`
	Department string `form:"department"` // honored for editors only
}

// DisplayRecord is the normalized, UI-oriented projection of any category
// record. It lives for the duration of one request and is never persisted.
type DisplayRecord struct {
	Title       string                    `json:"title" example:"Adaptive Query Scheduling"`
	FacultyID   string                    `json:"facultyId" example:"CS-104"`
	FacultyName string                    `json:"facultyName" example:"Asha Verma"`
	EntryType   models.EntryType          `json:"entryType" example:"conference"`
	Date        string                    `json:"date" example:"2024-11-02"`
	Status      models.VerificationStatus `json:"status" example:"PENDING"`
}

// ReportData pairs the filtered raw records with their display projections
type ReportData struct {
	FullData []models.AcademicRecord `json:"full_data"`
	DispData []DisplayRecord         `json:"disp_data"`
}
