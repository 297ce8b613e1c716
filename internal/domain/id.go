package domain

import (
	"strings"

	"github.com/google/uuid"
)

// CanonicalID returns the lowercase hyphenated form of a UUID so that one
// user never appears under two spellings. Other ids are only trimmed.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
