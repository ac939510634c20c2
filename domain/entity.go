package domain

import (
	"strconv"
	"strings"
)

// EntityID identifies the employee or team a report is built for.
// The zero value is NoEntity, used by options-only renders.
type EntityID struct {
	value int64
	set   bool
}

// NoEntity is the absent entity id.
var NoEntity = EntityID{}

// ID returns a present entity id.
func ID(n int64) EntityID {
	return EntityID{value: n, set: true}
}

// ParseEntityID coerces a raw path or form value into an EntityID.
func ParseEntityID(raw string) (EntityID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NoEntity, NewValidationError("entity id is required")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return NoEntity, NewInvalidInputError("entity id must be an integer: "+strconv.Quote(raw), err)
	}
	return ID(n), nil
}

// Int64 returns the id and whether it is present.
func (e EntityID) Int64() (int64, bool) {
	return e.value, e.set
}

// IsSet reports whether the id is present.
func (e EntityID) IsSet() bool {
	return e.set
}

// String returns the decimal form, or "" for NoEntity.
func (e EntityID) String() string {
	if !e.set {
		return ""
	}
	return strconv.FormatInt(e.value, 10)
}
