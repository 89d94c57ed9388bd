// Package refset converts between the stored comma-delimited ID fields
// (task assignees, task projects, meeting attendees) and their semantic
// set-of-IDs view. IDs never contain the delimiter; that is a guarantee
// of the ID generator, not something this package defends against.
package refset

import "strings"

// Delimiter separates IDs inside a stored reference field.
const Delimiter = ","

// Decode splits a stored reference field into an ordered ID sequence.
// Empty segments are dropped, so "" decodes to an empty sequence and a
// stray ",," is normalized silently. Order is preserved and duplicates
// are not removed; callers must tolerate them.
func Decode(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, Delimiter)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// Encode joins an ID sequence back into the stored form. An empty
// sequence encodes to "".
func Encode(ids []string) string {
	return strings.Join(ids, Delimiter)
}

// Contains reports whether the decoded set of raw includes id.
func Contains(raw, id string) bool {
	for _, v := range Decode(raw) {
		if v == id {
			return true
		}
	}
	return false
}

// Remove returns raw with every occurrence of id dropped from its
// decoded set, re-encoded. Removing the last ID yields "".
func Remove(raw, id string) string {
	ids := Decode(raw)
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return Encode(kept)
}
