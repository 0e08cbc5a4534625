package models

// Faculty defines a faculty member based on the 'faculty' table
type Faculty struct {
	ID         string      `json:"facultyId" db:"faculty_id" example:"CS-104"`               // Stable faculty identifier
	Name       string      `json:"facultyName" db:"faculty_name" example:"Asha Verma"`       // Display name
	Department string      `json:"facultyDepartment" db:"faculty_department" example:"CS"`   // Owning department
	Role       FacultyRole `json:"facultyRole" db:"faculty_role" example:"faculty"`          // faculty, hod or editor
	Email      string      `json:"facultyEmail" db:"faculty_email" example:"asha@univ.edu"`  // Unique login email
}
