package application

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dodamdoor/casebook/api/internal/public/domain"
)

// NewCaseQueryService wires the case read use-cases onto a sheet store.
func NewCaseQueryService(logger *slog.Logger, store SheetStore) CaseQueryService {
	return &caseQueryService{logger: logger, store: store}
}

type caseQueryService struct {
	logger *slog.Logger
	store  SheetStore
}

// CasesForApartment joins estimates, constructions and photos for one
// apartment. Estimates select the construction IDs, constructions provide
// the case rows in sheet order, photos attach by management ID.
func (s *caseQueryService) CasesForApartment(ctx context.Context, apartmentName string) []domain.Case {
	var (
		estimates     []domain.Estimate
		constructions []domain.Construction
		photos        []domain.Photo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		estimates = s.store.Estimates(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		constructions = s.store.Constructions(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		photos = s.store.Photos(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("case listing aborted", "apartment", apartmentName, "error", err)
		return []domain.Case{}
	}

	constructionIDs := make(map[string]struct{})
	// An apartment is expected to carry one estimate per construction ID;
	// when the sheet has duplicates the last row wins, matching upstream
	// data-entry expectations.
	estimateByConstruction := make(map[string]domain.Estimate)
	for _, est := range estimates {
		if est.ApartmentName != apartmentName {
			continue
		}
		constructionIDs[est.ConstructionID] = struct{}{}
		estimateByConstruction[est.ConstructionID] = est
	}

	photosByManagement := make(map[string][]domain.Photo)
	for _, photo := range photos {
		photosByManagement[photo.ManagementID] = append(photosByManagement[photo.ManagementID], photo)
	}

	cases := make([]domain.Case, 0, len(constructionIDs))
	for _, con := range constructions {
		if _, ok := constructionIDs[con.ConstructionID]; !ok {
			continue
		}

		c := domain.Case{
			ManagementID:   con.ManagementID,
			ConstructionID: con.ConstructionID,
			Description:    con.Description,
			Category:       con.Category,
			ApartmentName:  apartmentName,
			Photos:         []domain.Photo{},
		}
		if est, ok := estimateByConstruction[con.ConstructionID]; ok {
			c.Building = est.Building
			c.Unit = est.Unit
			c.Total = est.Total
		}
		if matched := photosByManagement[con.ManagementID]; len(matched) > 0 {
			c.Photos = matched
		}
		cases = append(cases, c)
	}
	return cases
}

// SpecsFor collects the case's spec rows across the three spec sheets and
// normalizes them into the shared item shape, doors first, then
// interlocking partitions, then single-sliding partitions.
func (s *caseQueryService) SpecsFor(ctx context.Context, managementID string) ([]domain.CaseItem, error) {
	var (
		doors   []domain.DoorSpec
		doubles []domain.DoubleSlidingSpec
		singles []domain.SingleSlidingSpec
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doors = s.store.DoorSpecs(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		doubles = s.store.DoubleSlidingSpecs(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		singles = s.store.SingleSlidingSpecs(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]domain.CaseItem, 0, len(doors)+len(doubles)+len(singles))
	for _, spec := range doors {
		if spec.ManagementID == managementID {
			items = append(items, spec.Normalize())
		}
	}
	for _, spec := range doubles {
		if spec.ManagementID == managementID {
			items = append(items, spec.Normalize())
		}
	}
	for _, spec := range singles {
		if spec.ManagementID == managementID {
			items = append(items, spec.Normalize())
		}
	}
	return items, nil
}

// EstimateLinesFor collects the case's itemized estimate lines from both
// estimate-line sheets, general source first.
func (s *caseQueryService) EstimateLinesFor(ctx context.Context, constructionID string) ([]domain.EstimateItem, error) {
	var (
		general []domain.GeneralEstimateLine
		online  []domain.OnlineEstimateLine
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		general = s.store.GeneralEstimateLines(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		online = s.store.OnlineEstimateLines(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]domain.EstimateItem, 0, len(general)+len(online))
	for _, line := range general {
		if line.ConstructionID == constructionID {
			items = append(items, line.Normalize())
		}
	}
	for _, line := range online {
		if line.ConstructionID == constructionID {
			items = append(items, line.Normalize())
		}
	}
	return items, nil
}

// Detail assembles the spec items and estimate lines one case detail view
// needs, fetching both sides concurrently.
func (s *caseQueryService) Detail(ctx context.Context, managementID, constructionID string) (CaseDetail, error) {
	var detail CaseDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.SpecsFor(gctx, managementID)
		if err != nil {
			return err
		}
		detail.Items = items
		return nil
	})
	g.Go(func() error {
		lines, err := s.EstimateLinesFor(gctx, constructionID)
		if err != nil {
			return err
		}
		detail.EstimateLines = lines
		return nil
	})
	if err := g.Wait(); err != nil {
		return CaseDetail{}, err
	}
	return detail, nil
}
