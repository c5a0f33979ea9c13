package postgres

import "strings"

// Roles are stored as a comma-separated text column. The set is tiny and
// read-only per row, so a join table buys nothing here.

func rolesToCSV(roles []string) string {
	return strings.Join(roles, ",")
}

func csvToRoles(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}
