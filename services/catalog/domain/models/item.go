package models

// Item is a collectible waste category. Items are seeded by migration and
// never modified by the application.
type Item struct {
	ID    int64
	Title string
	Image string // storage reference of the category icon
}
