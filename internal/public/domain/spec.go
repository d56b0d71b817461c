package domain

// CaseItemType tags which spec sheet a normalized item came from.
type CaseItemType string

const (
	ItemTypeDoor          CaseItemType = "도어"
	ItemTypeDoubleSliding CaseItemType = "연동중문"
	ItemTypeSingleSliding CaseItemType = "원슬라이딩"
)

// CaseItemOptions carries the attribute subset each spec variant exposes.
// Absent attributes stay empty.
type CaseItemOptions struct {
	Color  string
	Glass  string
	Design string
	Handle string
	Item   string
	Detail string
}

// CaseItem is the normalized shape shared by the three spec sheets.
type CaseItem struct {
	Type     CaseItemType
	Location string
	Grade    string
	Options  CaseItemOptions
}

// DoorSpec is one row of the door spec sheet.
type DoorSpec struct {
	ID           string
	ManagementID string
	Product      string
	Detail       string
	Glass        string
	Color        string
	Location     string
}

// DoubleSlidingSpec is one row of the interlocking-partition spec sheet.
type DoubleSlidingSpec struct {
	ID           string
	ManagementID string
	Location     string
	DoorType     string
	Grade        string
	Design       string
	Color        string
	Glass        string
}

// SingleSlidingSpec is one row of the single-sliding-partition spec sheet.
type SingleSlidingSpec struct {
	ID           string
	ManagementID string
	Location     string
	Grade        string
	Design       string
	Glass        string
	Handle       string
	Color        string
}

// Normalize converts a door spec into the shared case item shape.
func (s DoorSpec) Normalize() CaseItem {
	return CaseItem{
		Type:     ItemTypeDoor,
		Location: s.Location,
		Options: CaseItemOptions{
			Item:   s.Product,
			Detail: s.Detail,
			Glass:  s.Glass,
			Color:  s.Color,
		},
	}
}

// Normalize converts an interlocking-partition spec into the shared shape.
func (s DoubleSlidingSpec) Normalize() CaseItem {
	return CaseItem{
		Type:     ItemTypeDoubleSliding,
		Location: s.Location,
		Grade:    s.Grade,
		Options: CaseItemOptions{
			Design: s.Design,
			Color:  s.Color,
			Glass:  s.Glass,
		},
	}
}

// Normalize converts a single-sliding spec into the shared shape.
func (s SingleSlidingSpec) Normalize() CaseItem {
	return CaseItem{
		Type:     ItemTypeSingleSliding,
		Location: s.Location,
		Grade:    s.Grade,
		Options: CaseItemOptions{
			Design: s.Design,
			Color:  s.Color,
			Glass:  s.Glass,
			Handle: s.Handle,
		},
	}
}
