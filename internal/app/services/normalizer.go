package services

import (
	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
)

// Fallbacks for records missing display fields. Normalization must always
// produce a renderable row, never an error.
const (
	UntitledFallback   = "Untitled"
	NoDateFallback     = "No date"
	UnknownFacultyName = "Unknown Faculty"
)

// Normalize projects any category record into a display row. The names map
// resolves faculty ids to display names; ids missing from the map (a
// directory gap, not an error) fall back to UnknownFacultyName.
func Normalize(record models.AcademicRecord, names map[string]string) dto.DisplayRecord {
	title := UntitledFallback
	for _, candidate := range record.TitleCandidates() {
		if candidate != "" {
			title = candidate
			break
		}
	}

	date := record.DateValue()
	if date == "" {
		date = NoDateFallback
	}

	name, ok := names[record.OwnerID()]
	if !ok || name == "" {
		name = UnknownFacultyName
	}

	return dto.DisplayRecord{
		Title:       title,
		FacultyID:   record.OwnerID(),
		FacultyName: name,
		EntryType:   record.Kind(),
		Date:        date,
		Status:      record.VerificationState(),
	}
}
