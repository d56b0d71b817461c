package sheets_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dodamdoor/casebook/api/internal/infrastructure/sheets"
)

var errFetch = errors.New("fetch failed")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler, sheetID string) *sheets.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return sheets.NewClient(sheets.ClientConfig{
		Logger:     testLogger(),
		HTTPClient: server.Client(),
		Cache:      sheets.NewCache(5*time.Minute, nil),
		BaseURL:    server.URL,
		SheetID:    sheetID,
	})
}

func TestFetchTableDecodesAndCaches(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, "/d/sheet-1/export", r.URL.Path)
		require.Equal(t, "csv", r.URL.Query().Get("format"))
		require.Equal(t, "0", r.URL.Query().Get("gid"))
		io.WriteString(w, "아파트명,주소\n동탄역푸르지오,경기도 화성시\n")
	}), "sheet-1")

	rows := client.FetchTable(context.Background(), sheets.TableApartments)
	require.Len(t, rows, 1)
	require.Equal(t, "동탄역푸르지오", rows[0]["아파트명"])

	rows = client.FetchTable(context.Background(), sheets.TableApartments)
	require.Len(t, rows, 1)
	require.Equal(t, 1, requests)
}

func TestFetchTableWithoutSheetID(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
	}), "")

	require.False(t, client.Configured())
	require.Empty(t, client.FetchTable(context.Background(), sheets.TableEstimates))
	require.Equal(t, 0, requests)
}

func TestFetchTableFailSoft(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), "sheet-1")

	require.Empty(t, client.FetchTable(context.Background(), sheets.TableConstructions))
}

func TestFetchTableUsesPerTableGID(t *testing.T) {
	var gids []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gids = append(gids, r.URL.Query().Get("gid"))
		io.WriteString(w, "시공ID\nC-1\n")
	}), "sheet-1")

	client.FetchTable(context.Background(), sheets.TableEstimates)
	client.FetchTable(context.Background(), sheets.TableGeneralEstimateLines)
	require.Equal(t, []string{"846013389", "1511879141"}, gids)
}
