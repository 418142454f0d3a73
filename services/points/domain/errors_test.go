package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghuser/ecopoints/pkg/database"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrValidationFailed, ErrMissingImage, ErrInvalidItemList,
		ErrPointNotFound, ErrAssociationLookupFailed, ErrUnknownItem,
		ErrPersistenceFailed, ErrStoreUnavailable,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinelErrors_SharedWithDatabase(t *testing.T) {
	if !errors.Is(database.Classify(errors.New("boom")), ErrPersistenceFailed) {
		t.Fatal("classified store errors must match ErrPersistenceFailed")
	}
}

func TestSentinelErrors_DoubleWrap(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrValidationFailed, ErrMissingImage)
	if !errors.Is(err, ErrValidationFailed) || !errors.Is(err, ErrMissingImage) {
		t.Fatal("double-wrapped error must match both sentinels")
	}
}
