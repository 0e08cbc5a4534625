package dto

import "github.com/devika/facultyhub/internal/app/models"

// CreateConferenceRequest submits a conference paper for review
type CreateConferenceRequest struct {
	PaperTitle   string  `json:"paperTitle" binding:"required"`
	ConfName     string  `json:"confName" binding:"required"`
	ConfDate     string  `json:"confDate" binding:"required" example:"2024-11-02"`
	Type         string  `json:"type" binding:"required,oneof=national international"`
	Proceedings  bool    `json:"proceedings"`
	ProceedingFP *string `json:"proceedingFp,omitempty"`
}

// CreateJournalRequest submits a journal publication for review
type CreateJournalRequest struct {
	PaperTitle  string  `json:"paperTitle" binding:"required"`
	JournalName string  `json:"journalName" binding:"required"`
	PublishedOn string  `json:"monthAndYearOfPublication" binding:"required" example:"2024-06-01"`
	ISSNNumber  string  `json:"issnNumber" binding:"required"`
	IndexedIn   string  `json:"indexedIn" binding:"required"`
	Link        *string `json:"link,omitempty"`
	UploadImage *string `json:"uploadImage,omitempty"`
}

// CreatePatentRequest submits a patent for review
type CreatePatentRequest struct {
	PatentName    string  `json:"patentName" binding:"required"`
	PatentType    string  `json:"patentType" binding:"required"`
	ApplicationNo string  `json:"applicationNo" binding:"required"`
	FilingStatus  string  `json:"filingStatus" binding:"required,oneof=filed published granted"`
	PatentDate    string  `json:"patentDate" binding:"required" example:"2023-02-14"`
	PatentLink    *string `json:"patentLink,omitempty"`
	Image         *string `json:"image,omitempty"`
}

// CreateWorkshopRequest submits a workshop/FDP for review
type CreateWorkshopRequest struct {
	Title        string `json:"title" binding:"required"`
	OrganizedBy  string `json:"organizedBy" binding:"required"`
	Date         string `json:"date" binding:"required" example:"2024-01-10"`
	Type         string `json:"type" binding:"required,oneof=attended conducted"`
	NumberOfDays int    `json:"numberOfDays" binding:"required,min=1"`
}

// MySubmissionsResponse groups the acting faculty's own records by category
type MySubmissionsResponse struct {
	Conferences []models.Conference `json:"conferences"`
	Journals    []models.Journal    `json:"journals"`
	Patents     []models.Patent     `json:"patents"`
	Workshops   []models.Workshop   `json:"workshops"`
}
