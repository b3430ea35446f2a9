package polls

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// ErrIntegrity signals a write that lost a race against a store-level
// uniqueness constraint. The whole operation has been rolled back; retrying
// it is safe.
var ErrIntegrity = errors.New("Integrity error")

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// renderIDList renders ids as "1, 2, 3", sorted for stable messages.
func renderIDList(ids []uint) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}
