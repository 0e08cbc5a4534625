package models

import "strings"

// FacultyRole defines the faculty member role type
type FacultyRole string

const (
	RoleFaculty FacultyRole = "faculty"
	RoleHOD     FacultyRole = "hod"
	RoleEditor  FacultyRole = "editor"
)

// VerificationStatus is the review state of an academic record
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "PENDING"
	StatusApproved VerificationStatus = "APPROVED"
	StatusRejected VerificationStatus = "REJECTED"
)

// IsTerminal reports whether the status admits no further transition
func (s VerificationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// EntryType tags the four academic record categories
type EntryType string

const (
	EntryConference EntryType = "conference"
	EntryJournal    EntryType = "journal"
	EntryPatent     EntryType = "patent"
	EntryWorkshop   EntryType = "workshop"
)

// AllEntryTypes lists every category in a stable order
var AllEntryTypes = []EntryType{EntryConference, EntryJournal, EntryPatent, EntryWorkshop}

// ParseEntryType maps a client-supplied category name to an EntryType.
// Accepts the singular decision form ("Conference") and the plural report
// filter form ("Conferences"), case-insensitively.
func ParseEntryType(value string) (EntryType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "conference", "conferences":
		return EntryConference, true
	case "journal", "journals":
		return EntryJournal, true
	case "patent", "patents":
		return EntryPatent, true
	case "workshop", "workshops":
		return EntryWorkshop, true
	}
	return "", false
}
