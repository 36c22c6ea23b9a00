package helpers

import "database/sql"

// GetContentNullString converts a string value to sql.NullString, treating
// the empty string as NULL.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// StringOrEmpty dereferences a nullable text column scanned into a pointer.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
