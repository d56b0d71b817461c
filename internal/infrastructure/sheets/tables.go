package sheets

import (
	"context"
	"strings"

	"github.com/dodamdoor/casebook/api/internal/public/domain"
)

// Column headers exactly as they appear on the spreadsheet. They are the
// wire contract with the sheet: renaming a column there breaks the decode
// and the join keys here.
const (
	colApartmentName   = "아파트명"
	colAddress         = "주소"
	colCompletionYear  = "준공년"
	colCompletionMonth = "준공월"
	colFloorArea       = "면적"

	colConstructionID = "시공ID"
	colManagementID   = "시공관리ID"

	colEstimateTotal    = "총합계(온라인포함)"
	colSettled          = "정산완료여부"
	colIsApartment      = "아파트여부"
	colApartmentAddress = "아파트주소"
	colBuilding         = "아파트동"
	colUnit             = "아파트호수"

	colCategory        = "시공구분"
	colDoorDetail      = "도어시공내역"
	colPartitionDetail = "중문시공내역"
	colCompleted       = "시공완료여부"
	colDescription     = "시공내역"

	colPhotoID   = "시공완료사진ID"
	colPhotoName = "시공완료사진"
	colPhotoLink = "시공완료사진링크"

	colDoorSpecID   = "도어규격ID"
	colProduct      = "품목"
	colDetail       = "상세"
	colGlass        = "유리"
	colColor        = "색상"
	colSpecLocation = "시공위치"

	colDoubleSlidingID = "중문규격ID"
	colDoorLocation    = "중문시공위치"
	colDoorType        = "중문타입"
	colGrade           = "등급"
	colDesign          = "디자인"
	colDoorColor       = "중문색상"
	colDoorGlass       = "중문유리"

	colSingleSlidingID = "원슬라이딩ID"
	colHandle          = "손잡이"

	colGeneralLineID = "견적서ID"
	colLineDate      = "작성일자"
	colUnitPrice     = "단가"
	colQuantity      = "수량"

	colOnlineLineID = "온라인견적서ID"
	colLineCategory = "구분"
	colOptionItem   = "옵션품목"
)

// Store exposes typed reads over the spreadsheet tables. Rows missing their
// identifying field are dropped here so every downstream join can rely on
// its key being present.
type Store struct {
	client *Client
}

// NewStore wraps a sheet client with typed table accessors.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Apartments returns the apartment master rows that carry a name.
func (s *Store) Apartments(ctx context.Context) []domain.Apartment {
	rows := s.client.FetchTable(ctx, TableApartments)
	out := make([]domain.Apartment, 0, len(rows))
	for _, row := range rows {
		if row[colApartmentName] == "" {
			continue
		}
		out = append(out, domain.Apartment{
			Name:            row[colApartmentName],
			Address:         row[colAddress],
			CompletionYear:  row[colCompletionYear],
			CompletionMonth: row[colCompletionMonth],
			FloorArea:       row[colFloorArea],
		})
	}
	return out
}

// Estimates returns estimate rows that carry a construction ID.
func (s *Store) Estimates(ctx context.Context) []domain.Estimate {
	rows := s.client.FetchTable(ctx, TableEstimates)
	out := make([]domain.Estimate, 0, len(rows))
	for _, row := range rows {
		if row[colConstructionID] == "" {
			continue
		}
		out = append(out, domain.Estimate{
			ConstructionID:   row[colConstructionID],
			Total:            row[colEstimateTotal],
			Settled:          row[colSettled],
			IsApartment:      row[colIsApartment],
			ApartmentName:    row[colApartmentName],
			ApartmentAddress: row[colApartmentAddress],
			Building:         row[colBuilding],
			Unit:             row[colUnit],
		})
	}
	return out
}

// Constructions returns case rows that carry a management ID.
func (s *Store) Constructions(ctx context.Context) []domain.Construction {
	rows := s.client.FetchTable(ctx, TableConstructions)
	out := make([]domain.Construction, 0, len(rows))
	for _, row := range rows {
		if row[colManagementID] == "" {
			continue
		}
		out = append(out, domain.Construction{
			ManagementID:    row[colManagementID],
			ConstructionID:  row[colConstructionID],
			Category:        row[colCategory],
			DoorDetail:      row[colDoorDetail],
			PartitionDetail: row[colPartitionDetail],
			Completed:       row[colCompleted],
			Description:     row[colDescription],
		})
	}
	return out
}

// Photos returns photo rows with a management ID and an https link.
func (s *Store) Photos(ctx context.Context) []domain.Photo {
	rows := s.client.FetchTable(ctx, TablePhotos)
	out := make([]domain.Photo, 0, len(rows))
	for _, row := range rows {
		link := row[colPhotoLink]
		if link == "" || !strings.HasPrefix(link, "https://") {
			continue
		}
		out = append(out, domain.Photo{
			ID:           row[colPhotoID],
			ManagementID: row[colManagementID],
			Name:         row[colPhotoName],
			Link:         link,
		})
	}
	return out
}

// DoorSpecs returns door spec rows that carry a management ID.
func (s *Store) DoorSpecs(ctx context.Context) []domain.DoorSpec {
	rows := s.client.FetchTable(ctx, TableDoorSpecs)
	out := make([]domain.DoorSpec, 0, len(rows))
	for _, row := range rows {
		if row[colManagementID] == "" {
			continue
		}
		out = append(out, domain.DoorSpec{
			ID:           row[colDoorSpecID],
			ManagementID: row[colManagementID],
			Product:      row[colProduct],
			Detail:       row[colDetail],
			Glass:        row[colGlass],
			Color:        row[colColor],
			Location:     row[colSpecLocation],
		})
	}
	return out
}

// DoubleSlidingSpecs returns interlocking-partition spec rows that carry a
// management ID.
func (s *Store) DoubleSlidingSpecs(ctx context.Context) []domain.DoubleSlidingSpec {
	rows := s.client.FetchTable(ctx, TableDoubleSlidingSpecs)
	out := make([]domain.DoubleSlidingSpec, 0, len(rows))
	for _, row := range rows {
		if row[colManagementID] == "" {
			continue
		}
		out = append(out, domain.DoubleSlidingSpec{
			ID:           row[colDoubleSlidingID],
			ManagementID: row[colManagementID],
			Location:     row[colDoorLocation],
			DoorType:     row[colDoorType],
			Grade:        row[colGrade],
			Design:       row[colDesign],
			Color:        row[colDoorColor],
			Glass:        row[colDoorGlass],
		})
	}
	return out
}

// SingleSlidingSpecs returns single-sliding spec rows that carry a
// management ID.
func (s *Store) SingleSlidingSpecs(ctx context.Context) []domain.SingleSlidingSpec {
	rows := s.client.FetchTable(ctx, TableSingleSlidingSpecs)
	out := make([]domain.SingleSlidingSpec, 0, len(rows))
	for _, row := range rows {
		if row[colManagementID] == "" {
			continue
		}
		out = append(out, domain.SingleSlidingSpec{
			ID:           row[colSingleSlidingID],
			ManagementID: row[colManagementID],
			Location:     row[colDoorLocation],
			Grade:        row[colGrade],
			Design:       row[colDesign],
			Glass:        row[colGlass],
			Handle:       row[colHandle],
			Color:        row[colColor],
		})
	}
	return out
}

// GeneralEstimateLines returns general estimate-line rows that carry a
// construction ID.
func (s *Store) GeneralEstimateLines(ctx context.Context) []domain.GeneralEstimateLine {
	rows := s.client.FetchTable(ctx, TableGeneralEstimateLines)
	out := make([]domain.GeneralEstimateLine, 0, len(rows))
	for _, row := range rows {
		if row[colConstructionID] == "" {
			continue
		}
		out = append(out, domain.GeneralEstimateLine{
			ID:             row[colGeneralLineID],
			ConstructionID: row[colConstructionID],
			Date:           row[colLineDate],
			Item:           row[colProduct],
			UnitPrice:      row[colUnitPrice],
			Quantity:       row[colQuantity],
		})
	}
	return out
}

// OnlineEstimateLines returns online estimate-line rows that carry a
// construction ID.
func (s *Store) OnlineEstimateLines(ctx context.Context) []domain.OnlineEstimateLine {
	rows := s.client.FetchTable(ctx, TableOnlineEstimateLines)
	out := make([]domain.OnlineEstimateLine, 0, len(rows))
	for _, row := range rows {
		if row[colConstructionID] == "" {
			continue
		}
		out = append(out, domain.OnlineEstimateLine{
			ID:             row[colOnlineLineID],
			ConstructionID: row[colConstructionID],
			Category:       row[colLineCategory],
			OptionItem:     row[colOptionItem],
			UnitPrice:      row[colUnitPrice],
			Quantity:       row[colQuantity],
		})
	}
	return out
}
