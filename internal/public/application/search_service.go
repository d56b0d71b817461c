package application

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dodamdoor/casebook/api/internal/public/domain"
)

// NewSearchService wires apartment search onto a sheet store.
func NewSearchService(logger *slog.Logger, store SheetStore) SearchService {
	return &searchService{logger: logger, store: store}
}

type searchService struct {
	logger *slog.Logger
	store  SheetStore
}

// SearchApartments matches the query against apartment names and addresses,
// keeps only apartments inside the service area that have at least one
// estimate, attaches the case count and sorts by it descending. Ties keep
// their original sheet order.
func (s *searchService) SearchApartments(ctx context.Context, query string) ([]domain.Apartment, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []domain.Apartment{}, nil
	}
	lowerQuery := strings.ToLower(trimmed)

	var (
		apartments []domain.Apartment
		estimates  []domain.Estimate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		apartments = s.store.Apartments(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		estimates = s.store.Estimates(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	caseCounts := make(map[string]int)
	for _, est := range estimates {
		caseCounts[est.ApartmentName]++
	}

	results := make([]domain.Apartment, 0)
	for _, apt := range apartments {
		matches := strings.Contains(strings.ToLower(apt.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(apt.Address), lowerQuery)
		if !matches {
			continue
		}
		if !domain.InServiceArea(apt.Address) && !domain.InServiceArea(apt.Name) {
			continue
		}
		count := caseCounts[apt.Name]
		if count == 0 {
			continue
		}

		apt.ConstructionCount = count
		results = append(results, apt)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ConstructionCount > results[j].ConstructionCount
	})
	return results, nil
}
