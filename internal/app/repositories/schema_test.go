package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The column lists drive every generated SELECT, INSERT and RETURNING
// clause, so each entry must exist as a column in the shipped schema. A
// drift here only surfaces at runtime against a real database; the fakes
// in the service tests never see it.

func loadTableDDL(t *testing.T, table string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(string(content), marker)
	require.GreaterOrEqual(t, start, 0, "schema does not create table %q", table)

	block := string(content)[start:]
	end := strings.Index(block, "\n);")
	require.GreaterOrEqual(t, end, 0, "unterminated DDL for table %q", table)

	return block[:end]
}

func TestRepositoryColumnsMatchSchema(t *testing.T) {
	tests := []struct {
		table   string
		columns []string
	}{
		{"faculty", facultyColumns},
		{"conferences", conferenceColumns},
		{"journals", journalColumns},
		{"patents", patentColumns},
		{"workshops", workshopColumns},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			ddl := loadTableDDL(t, tt.table)
			for _, column := range tt.columns {
				// A column definition starts its own line inside the block
				pattern := regexp.MustCompile(fmt.Sprintf(`(?m)^\s+%s\s+`, regexp.QuoteMeta(column)))
				require.True(t, pattern.MatchString(ddl),
					"repository selects %q but the %s table does not define it", column, tt.table)
			}
		})
	}
}

func TestFacultySchemaHasUniqueEmailConstraint(t *testing.T) {
	// Create maps a violation of this constraint name to ErrEmailAlreadyExists
	ddl := loadTableDDL(t, "faculty")
	require.Contains(t, ddl, "CONSTRAINT faculty_faculty_email_key UNIQUE (faculty_email)")
}
