package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemIDs is a duplicate-free list of catalog item ids in request order.
type ItemIDs []int64

// ParseItemIDs parses a comma-separated list such as "1, 2,3". Blank entries
// are skipped and repeated ids collapse into one. A token that is not a
// positive integer is an error; so is a list with no ids at all.
func ParseItemIDs(s string) (ItemIDs, error) {
	parts := strings.Split(s, ",")
	ids := make(ItemIDs, 0, len(parts))
	seen := make(map[int64]struct{}, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%q is not a valid item id", part)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one item id is required")
	}
	return ids, nil
}

// Int64s returns the ids as a plain slice.
func (ids ItemIDs) Int64s() []int64 {
	return []int64(ids)
}
