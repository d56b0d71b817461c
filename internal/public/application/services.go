package application

import (
	"context"

	"github.com/dodamdoor/casebook/api/internal/public/domain"
)

// SheetStore is the read port over the spreadsheet tables. Implementations
// are fail-soft: a table that cannot be fetched yields no rows, never an
// error, so callers cannot tell a broken table from an empty one.
type SheetStore interface {
	Apartments(ctx context.Context) []domain.Apartment
	Estimates(ctx context.Context) []domain.Estimate
	Constructions(ctx context.Context) []domain.Construction
	Photos(ctx context.Context) []domain.Photo
	DoorSpecs(ctx context.Context) []domain.DoorSpec
	DoubleSlidingSpecs(ctx context.Context) []domain.DoubleSlidingSpec
	SingleSlidingSpecs(ctx context.Context) []domain.SingleSlidingSpec
	GeneralEstimateLines(ctx context.Context) []domain.GeneralEstimateLine
	OnlineEstimateLines(ctx context.Context) []domain.OnlineEstimateLine
}

// CaseDetail bundles everything the case detail view renders.
type CaseDetail struct {
	Items         []domain.CaseItem
	EstimateLines []domain.EstimateItem
}

// CaseQueryService provides the construction-case read use-cases.
type CaseQueryService interface {
	// CasesForApartment lists the apartment's cases with photos and estimate
	// totals attached. Internal failures degrade to an empty list.
	CasesForApartment(ctx context.Context, apartmentName string) []domain.Case

	SpecsFor(ctx context.Context, managementID string) ([]domain.CaseItem, error)
	EstimateLinesFor(ctx context.Context, constructionID string) ([]domain.EstimateItem, error)
	Detail(ctx context.Context, managementID, constructionID string) (CaseDetail, error)
}

// SearchService provides apartment search.
type SearchService interface {
	SearchApartments(ctx context.Context, query string) ([]domain.Apartment, error)
}
