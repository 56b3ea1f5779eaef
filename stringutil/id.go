package stringutil

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, suitable as a store key or
// record identifier. Falls back to a random UUIDv4 if the system clock or
// entropy source fails.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// ParseID parses s as a UUID of any version.
func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// IsValidID reports whether s parses as a UUID of any version.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IDTimestamp extracts the creation time embedded in a UUIDv7 string.
// Returns false for other UUID versions or unparseable input.
func IDTimestamp(s string) (int64, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id.Version() != 7 {
		return 0, false
	}
	sec, nsec := id.Time().UnixTime()
	return sec*1000 + nsec/1e6, true
}
