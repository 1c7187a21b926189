package schedule

import (
	"clinicbook-service/internal/app/models"
	"errors"
	"fmt"
)

var (
	// ErrNeedsRefetch means the local list cannot be reconciled with the
	// server answer and must be fetched again.
	ErrNeedsRefetch = errors.New("local schedule out of sync, refetch required")
	// ErrMutationInFlight is returned when a write is attempted while another
	// one for the same view-model has not finished.
	ErrMutationInFlight = errors.New("mutation already in flight")
)

type Identifiable interface {
	GetID() string
}

// ApplyOptimisticWrite reconciles current with a write the server already
// acknowledged. record must be the server's copy: ids and display names are
// never made up locally. current is not modified.
func ApplyOptimisticWrite[T Identifiable](kind models.ChangeKind, action models.ChangeAction, record T, current []T) ([]T, error) {
	id := record.GetID()
	updated := make([]T, 0, len(current)+1)

	switch action {
	case models.ChangeActionCreate:
		if id == "" {
			return append(updated, current...), fmt.Errorf("%w: %s %s without server id", ErrNeedsRefetch, kind, action)
		}
		updated = append(updated, current...)
		return append(updated, record), nil

	case models.ChangeActionUpdate:
		found := false
		for _, item := range current {
			if id != "" && item.GetID() == id {
				updated = append(updated, record)
				found = true
				continue
			}
			updated = append(updated, item)
		}
		if !found {
			return updated, fmt.Errorf("%w: %s %s missing id %q", ErrNeedsRefetch, kind, action, id)
		}
		return updated, nil

	case models.ChangeActionDelete:
		if id == "" {
			return append(updated, current...), fmt.Errorf("%w: %s %s without id", ErrNeedsRefetch, kind, action)
		}
		for _, item := range current {
			if item.GetID() != id {
				updated = append(updated, item)
			}
		}
		return updated, nil
	}

	return append(updated, current...), fmt.Errorf("%w: unknown action %q", ErrNeedsRefetch, action)
}
