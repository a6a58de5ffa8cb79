package model

// Board is the admin curation view: every item grouped by category, and the
// orders sorted pending-first, newest-first within each status.
type Board struct {
	ItemsByCategory map[Category][]Item `json:"itemsByCategory"`
	Orders          []Order             `json:"orders"`
}
