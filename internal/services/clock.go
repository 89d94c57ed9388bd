package services

import (
	"time"

	"github.com/google/uuid"
)

// Timestamp and calendar-date layouts used across the store. Timestamps
// are stored as UTC ISO-8601 strings so lexicographic order matches
// chronological order.
const (
	timeLayout = "2006-01-02T15:04:05.000Z"
	dateLayout = "2006-01-02"
)

// Clock provides the current time. Services default to the real clock;
// tests swap in a fixed one.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func isoNow(c Clock) string {
	return c.Now().UTC().Format(timeLayout)
}

func today(c Clock) string {
	return c.Now().UTC().Format(dateLayout)
}

// newID returns a short opaque row ID. The comma used by the refset
// delimited fields can never appear in a UUID, which the codec relies on.
func newID() string {
	return uuid.New().String()[:9]
}
