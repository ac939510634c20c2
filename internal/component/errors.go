package component

import (
	"errors"

	"github.com/ludo-technologies/empdash/domain"
)

// requireID resolves the entity id for components that query entity-keyed data.
func requireID(id domain.EntityID, what string) (int64, error) {
	n, ok := id.Int64()
	if !ok {
		return 0, domain.NewDataUnavailableError(what+" requires an entity id", nil)
	}
	return n, nil
}

// modelError classifies a failed adapter call. Unknown entities become
// DATA_UNAVAILABLE, errors that already carry a code keep it, and anything
// else is an upstream failure.
func modelError(what string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewDataUnavailableError(what+": no data", err)
	}
	if domain.CodeOf(err) != "" {
		return err
	}
	return domain.NewUpstreamError(what+": data source failed", err)
}
