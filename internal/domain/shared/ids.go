// Package shared provides reusable domain logic shared across aggregates.
package shared

// AddID adds id to the slice if not already present.
// Returns the updated slice and true if the ID was added.
func AddID(ids []uint, id uint) ([]uint, bool) {
	if HasID(ids, id) {
		return ids, false
	}
	return append(ids, id), true
}

// RemoveID removes id from the slice.
// Returns the updated slice and true if the ID was removed.
func RemoveID(ids []uint, id uint) ([]uint, bool) {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

func HasID(ids []uint, id uint) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// UniqueIDs drops zero values and duplicates while keeping first-seen order.
func UniqueIDs(ids []uint) []uint {
	result := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
