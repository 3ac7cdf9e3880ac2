package models

import "strings"

// Slugify derives the URL slug for categories and tags: spaces become
// dashes, forward slashes are dropped.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, " ", "-"), "/", "")
}
