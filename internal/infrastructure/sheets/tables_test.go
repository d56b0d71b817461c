package sheets_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dodamdoor/casebook/api/internal/infrastructure/sheets"
)

// sheetFixture serves a canned CSV body per sheet GID, mimicking the export
// endpoint of the spreadsheet service.
func sheetFixture(t *testing.T, bodies map[string]string) *sheets.Store {
	t.Helper()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Query().Get("gid")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		io.WriteString(w, body)
	}), "sheet-1")
	return sheets.NewStore(client)
}

func TestStoreApartmentsFiltersUnnamedRows(t *testing.T) {
	store := sheetFixture(t, map[string]string{
		"0": "아파트명,주소,준공년,준공월,면적\n" +
			"동탄역푸르지오,경기도 화성시,2018,6,84\n" +
			",주소만 있는 행,2020,1,59\n",
	})

	apartments := store.Apartments(context.Background())
	require.Len(t, apartments, 1)
	require.Equal(t, "동탄역푸르지오", apartments[0].Name)
	require.Equal(t, "2018", apartments[0].CompletionYear)
	require.Equal(t, "84", apartments[0].FloorArea)
}

func TestStoreEstimatesRequireConstructionID(t *testing.T) {
	store := sheetFixture(t, map[string]string{
		"846013389": "시공ID,총합계(온라인포함),아파트명,아파트동,아파트호수\n" +
			"C-1,\"1,250,000원\",동탄역푸르지오,208,701\n" +
			",500000,이름없는견적,101,202\n",
	})

	estimates := store.Estimates(context.Background())
	require.Len(t, estimates, 1)
	require.Equal(t, "C-1", estimates[0].ConstructionID)
	require.Equal(t, "1,250,000원", estimates[0].Total)
	require.Equal(t, "208", estimates[0].Building)
}

func TestStorePhotosDropInsecureLinks(t *testing.T) {
	store := sheetFixture(t, map[string]string{
		"978770300": "시공완료사진ID,시공관리ID,시공완료사진,시공완료사진링크\n" +
			"P-1,M-1,거실,https://cdn.example.com/p1.jpg\n" +
			"P-2,M-1,현관,http://cdn.example.com/p2.jpg\n" +
			"P-3,M-1,안방,\n",
	})

	photos := store.Photos(context.Background())
	require.Len(t, photos, 1)
	require.Equal(t, "P-1", photos[0].ID)
	require.Equal(t, "https://cdn.example.com/p1.jpg", photos[0].Link)
}

func TestStoreSpecTablesDecodeTypedRows(t *testing.T) {
	store := sheetFixture(t, map[string]string{
		"1539128685": "도어규격ID,시공관리ID,품목,상세,유리,색상,시공위치\n" +
			"D-1,M-1,ABS도어,양개,망입,화이트,안방\n",
		"637712949": "중문규격ID,시공관리ID,중문시공위치,중문타입,등급,디자인,중문색상,중문유리\n" +
			"J-1,M-1,현관,3연동일반,프리미엄,3분할,블랙,브론즈\n",
		"385193702": "원슬라이딩ID,시공관리ID,중문시공위치,등급,디자인,유리,손잡이,색상\n" +
			"S-1,M-2,주방,일반,통유리,투명,매립,실버\n",
	})

	doors := store.DoorSpecs(context.Background())
	require.Len(t, doors, 1)
	require.Equal(t, "ABS도어", doors[0].Product)

	doubles := store.DoubleSlidingSpecs(context.Background())
	require.Len(t, doubles, 1)
	require.Equal(t, "현관", doubles[0].Location)
	require.Equal(t, "블랙", doubles[0].Color)

	singles := store.SingleSlidingSpecs(context.Background())
	require.Len(t, singles, 1)
	require.Equal(t, "매립", singles[0].Handle)
}

func TestStoreEstimateLineTables(t *testing.T) {
	store := sheetFixture(t, map[string]string{
		"1511879141": "견적서ID,시공ID,작성일자,품목,단가,수량\n" +
			"G-1,C-1,2024-03-02,3연동 중문,1200000,1\n" +
			"G-2,,2024-03-02,고아 행,10000,1\n",
		"2122872169": "온라인견적서ID,시공ID,구분,옵션품목,단가,수량\n" +
			"O-1,C-1,옵션,손잡이 변경,50000,2\n",
	})

	general := store.GeneralEstimateLines(context.Background())
	require.Len(t, general, 1)
	require.Equal(t, "3연동 중문", general[0].Item)

	online := store.OnlineEstimateLines(context.Background())
	require.Len(t, online, 1)
	require.Equal(t, "손잡이 변경", online[0].OptionItem)
}
