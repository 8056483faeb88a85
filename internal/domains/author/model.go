package author

import (
	"time"
)

// Author is the catalog author entity. ID and CreatedAt are assigned by the
// database on insert, never by the caller.
type Author struct {
	ID        int64
	Name      string
	Email     string
	BirthDate *time.Time
	Country   *string
	CreatedAt time.Time
}
