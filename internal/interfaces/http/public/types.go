package public

import (
	publicapp "github.com/dodamdoor/casebook/api/internal/public/application"
	publicdomain "github.com/dodamdoor/casebook/api/internal/public/domain"
)

type apartmentResponse struct {
	Name              string `json:"name"`
	Address           string `json:"address"`
	CompletionYear    string `json:"completionYear,omitempty"`
	CompletionMonth   string `json:"completionMonth,omitempty"`
	FloorArea         string `json:"floorArea,omitempty"`
	ConstructionCount int    `json:"constructionCount"`
}

type searchResponse struct {
	Results []apartmentResponse `json:"results"`
	Error   string              `json:"error,omitempty"`
}

type photoResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Link string `json:"link"`
}

type caseResponse struct {
	ManagementID   string          `json:"managementId"`
	ConstructionID string          `json:"constructionId"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category"`
	TypeLabel      string          `json:"typeLabel,omitempty"`
	ApartmentName  string          `json:"apartmentName"`
	BuildingLabel  string          `json:"buildingLabel,omitempty"`
	UnitLabel      string          `json:"unitLabel,omitempty"`
	Total          string          `json:"total,omitempty"`
	TotalLabel     string          `json:"totalLabel"`
	Photos         []photoResponse `json:"photos"`
}

type caseListResponse struct {
	Items []caseResponse `json:"items"`
}

type specOptionsResponse struct {
	Color  string `json:"color,omitempty"`
	Glass  string `json:"glass,omitempty"`
	Design string `json:"design,omitempty"`
	Handle string `json:"handle,omitempty"`
	Item   string `json:"item,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type specItemResponse struct {
	Type     string              `json:"type"`
	Location string              `json:"location"`
	Grade    string              `json:"grade,omitempty"`
	Options  specOptionsResponse `json:"options"`
}

type specListResponse struct {
	Items []specItemResponse `json:"items"`
}

type estimateLineResponse struct {
	Source      string `json:"source"`
	Item        string `json:"item"`
	UnitPrice   int    `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Amount      int    `json:"amount"`
	AmountLabel string `json:"amountLabel"`
}

type estimateLineListResponse struct {
	Items      []estimateLineResponse `json:"items"`
	Total      int                    `json:"total"`
	TotalLabel string                 `json:"totalLabel"`
}

type caseDetailResponse struct {
	Items         []specItemResponse     `json:"items"`
	EstimateLines []estimateLineResponse `json:"estimateLines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// buildApartmentResponse converts an apartment search hit into its DTO.
func buildApartmentResponse(apt publicdomain.Apartment) apartmentResponse {
	return apartmentResponse{
		Name:              apt.Name,
		Address:           apt.Address,
		CompletionYear:    apt.CompletionYear,
		CompletionMonth:   apt.CompletionMonth,
		FloorArea:         apt.FloorArea,
		ConstructionCount: apt.ConstructionCount,
	}
}

// buildCaseResponse converts a joined case into its listing DTO, attaching
// the derived display labels the cards render.
func buildCaseResponse(c publicdomain.Case) caseResponse {
	photos := make([]photoResponse, 0, len(c.Photos))
	for _, photo := range c.Photos {
		photos = append(photos, photoResponse{
			ID:   photo.ID,
			Name: photo.Name,
			Link: photo.Link,
		})
	}

	return caseResponse{
		ManagementID:   c.ManagementID,
		ConstructionID: c.ConstructionID,
		Description:    c.Description,
		Category:       publicdomain.ConstructionCategory(c.Category),
		TypeLabel:      publicdomain.FormatConstructionType(c.Category),
		ApartmentName:  c.ApartmentName,
		BuildingLabel:  publicdomain.FormatBuilding(c.Building),
		UnitLabel:      publicdomain.FormatUnit(c.Unit),
		Total:          c.Total,
		TotalLabel:     publicdomain.FormatPrice(c.Total),
		Photos:         photos,
	}
}

func buildSpecItemResponses(items []publicdomain.CaseItem) []specItemResponse {
	out := make([]specItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, specItemResponse{
			Type:     string(item.Type),
			Location: item.Location,
			Grade:    item.Grade,
			Options: specOptionsResponse{
				Color:  item.Options.Color,
				Glass:  item.Options.Glass,
				Design: item.Options.Design,
				Handle: item.Options.Handle,
				Item:   item.Options.Item,
				Detail: item.Options.Detail,
			},
		})
	}
	return out
}

func buildEstimateLineResponses(lines []publicdomain.EstimateItem) ([]estimateLineResponse, int) {
	out := make([]estimateLineResponse, 0, len(lines))
	total := 0
	for _, line := range lines {
		total += line.Amount
		out = append(out, estimateLineResponse{
			Source:      string(line.Source),
			Item:        line.Item,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Amount:      line.Amount,
			AmountLabel: publicdomain.FormatAmount(line.Amount),
		})
	}
	return out, total
}

func buildCaseDetailResponse(detail publicapp.CaseDetail) caseDetailResponse {
	lines, _ := buildEstimateLineResponses(detail.EstimateLines)
	return caseDetailResponse{
		Items:         buildSpecItemResponses(detail.Items),
		EstimateLines: lines,
	}
}
