package domain

// Estimate is one row of the estimate sheet. ConstructionID links it to a
// construction case; Building/Unit locate the case inside the apartment
// complex. Total arrives as a currency-formatted string.
type Estimate struct {
	ConstructionID   string
	Total            string
	Settled          string
	IsApartment      string
	ApartmentName    string
	ApartmentAddress string
	Building         string
	Unit             string
}

// EstimateSource labels which estimate-line sheet an item came from.
type EstimateSource string

const (
	SourceGeneral EstimateSource = "일반"
	SourceOnline  EstimateSource = "온라인"
)

// EstimateItem is the normalized shape shared by both estimate-line sheets.
type EstimateItem struct {
	Source    EstimateSource
	Item      string
	UnitPrice int
	Quantity  int
	Amount    int
}

// GeneralEstimateLine is one row of the general estimate-line sheet.
type GeneralEstimateLine struct {
	ID             string
	ConstructionID string
	Date           string
	Item           string
	UnitPrice      string
	Quantity       string
}

// OnlineEstimateLine is one row of the online estimate-line sheet. The item
// label is split across a category and an option column.
type OnlineEstimateLine struct {
	ID             string
	ConstructionID string
	Category       string
	OptionItem     string
	UnitPrice      string
	Quantity       string
}

// Normalize converts a general line into the shared estimate item shape.
func (l GeneralEstimateLine) Normalize() EstimateItem {
	price := ParseAmount(l.UnitPrice)
	qty := ParseQuantity(l.Quantity)
	return EstimateItem{
		Source:    SourceGeneral,
		Item:      l.Item,
		UnitPrice: price,
		Quantity:  qty,
		Amount:    price * qty,
	}
}

// Normalize converts an online line into the shared estimate item shape.
func (l OnlineEstimateLine) Normalize() EstimateItem {
	price := ParseAmount(l.UnitPrice)
	qty := ParseQuantity(l.Quantity)
	return EstimateItem{
		Source:    SourceOnline,
		Item:      l.Category + " - " + l.OptionItem,
		UnitPrice: price,
		Quantity:  qty,
		Amount:    price * qty,
	}
}
