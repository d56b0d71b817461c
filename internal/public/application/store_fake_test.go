package application_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/dodamdoor/casebook/api/internal/public/domain"
)

// fakeSheetStore serves canned rows, mirroring the fail-soft contract of
// the real store: nothing here ever errors.
type fakeSheetStore struct {
	apartments    []domain.Apartment
	estimates     []domain.Estimate
	constructions []domain.Construction
	photos        []domain.Photo
	doorSpecs     []domain.DoorSpec
	doubleSpecs   []domain.DoubleSlidingSpec
	singleSpecs   []domain.SingleSlidingSpec
	generalLines  []domain.GeneralEstimateLine
	onlineLines   []domain.OnlineEstimateLine
}

func (f *fakeSheetStore) Apartments(context.Context) []domain.Apartment { return f.apartments }
func (f *fakeSheetStore) Estimates(context.Context) []domain.Estimate   { return f.estimates }
func (f *fakeSheetStore) Constructions(context.Context) []domain.Construction {
	return f.constructions
}
func (f *fakeSheetStore) Photos(context.Context) []domain.Photo       { return f.photos }
func (f *fakeSheetStore) DoorSpecs(context.Context) []domain.DoorSpec { return f.doorSpecs }
func (f *fakeSheetStore) DoubleSlidingSpecs(context.Context) []domain.DoubleSlidingSpec {
	return f.doubleSpecs
}
func (f *fakeSheetStore) SingleSlidingSpecs(context.Context) []domain.SingleSlidingSpec {
	return f.singleSpecs
}
func (f *fakeSheetStore) GeneralEstimateLines(context.Context) []domain.GeneralEstimateLine {
	return f.generalLines
}
func (f *fakeSheetStore) OnlineEstimateLines(context.Context) []domain.OnlineEstimateLine {
	return f.onlineLines
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
