package dumpster

import (
	"strings"

	"rolloff/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidStatus(status entities.DumpsterStatusType) bool {
	switch status {
	case entities.DumpsterAvailable,
		entities.DumpsterMaintenance,
		entities.DumpsterOutOfService:
		return true
	default:
		// in_use is owned by the assignment resolver, never set directly
		return false
	}
}
