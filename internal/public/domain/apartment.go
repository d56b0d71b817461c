package domain

// Apartment is one row of the apartment master sheet. Name doubles as the
// join key toward estimates, so a rename on the sheet silently orphans the
// apartment's cases.
type Apartment struct {
	Name            string
	Address         string
	CompletionYear  string
	CompletionMonth string
	FloorArea       string

	// ConstructionCount is derived from estimate rows and only populated on
	// search results.
	ConstructionCount int
}
