package domain

// Construction is one case record. ManagementID groups the case's photos and
// spec rows; ConstructionID groups its estimate and estimate lines. The two
// keys are distinct and must not be conflated.
type Construction struct {
	ManagementID    string
	ConstructionID  string
	Category        string
	DoorDetail      string
	PartitionDetail string
	Completed       string
	Description     string
}

// Photo belongs to exactly one management ID. Rows whose link is not an
// https URL are dropped at the store boundary.
type Photo struct {
	ID           string
	ManagementID string
	Name         string
	Link         string
}

// Case is a construction joined with its estimate and photos, the unit the
// apartment case listing renders.
type Case struct {
	ManagementID   string
	ConstructionID string
	Description    string
	Category       string
	ApartmentName  string
	Building       string
	Unit           string
	Total          string
	Photos         []Photo
}
