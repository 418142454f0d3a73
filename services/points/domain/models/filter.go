package models

import (
	"fmt"
	"strings"

	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
)

// Filter selects points for a listing. A point matches when it is in City/UF
// and, if ItemIDs is non-empty, accepts at least one of ItemIDs.
type Filter struct {
	City    string
	UF      UF
	ItemIDs ItemIDs
}

// ParseFilter builds a Filter from query string values. items may be empty.
func ParseFilter(city, uf, items string) (Filter, error) {
	var problems []error

	f := Filter{City: strings.TrimSpace(city)}
	if f.City == "" {
		problems = append(problems, fmt.Errorf("city is required"))
	}

	var err error
	if f.UF, err = NewUF(uf); err != nil {
		problems = append(problems, err)
	}

	if strings.TrimSpace(items) != "" {
		if f.ItemIDs, err = ParseItemIDs(items); err != nil {
			problems = append(problems, fmt.Errorf("%w: %w", pointsdomain.ErrInvalidItemList, err))
		}
	}

	if len(problems) > 0 {
		return Filter{}, &ValidationError{Problems: problems}
	}
	return f, nil
}

// HasItems reports whether the filter restricts by item category.
func (f Filter) HasItems() bool {
	return len(f.ItemIDs) > 0
}
