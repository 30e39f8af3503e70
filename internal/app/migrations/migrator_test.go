package migrations

import "testing"

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"001_create_employees.sql", "001"},
		{"002_add_department_column.sql", "002"},
		{"010_backfill.sql", "010"},
		{"plain.sql", "plain.sql"},
	}

	for _, tt := range tests {
		if got := MigrationVersion(tt.filename); got != tt.want {
			t.Errorf("MigrationVersion(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
