package sheets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// TableID names one logical sheet inside the spreadsheet.
type TableID string

const (
	TableApartments           TableID = "아파트"
	TableEstimates            TableID = "견적"
	TableConstructions        TableID = "시공"
	TablePhotos               TableID = "시공완료사진"
	TableDoorSpecs            TableID = "도어스펙"
	TableDoubleSlidingSpecs   TableID = "연동중문스펙"
	TableSingleSlidingSpecs   TableID = "원슬라이딩스펙"
	TableOnlineEstimateLines  TableID = "온라인견적"
	TableGeneralEstimateLines TableID = "일반견적"
)

// tableGIDs maps each logical table to its sheet GID in the spreadsheet.
var tableGIDs = map[TableID]string{
	TableApartments:           "0",
	TableEstimates:            "846013389",
	TableConstructions:        "1741041588",
	TablePhotos:               "978770300",
	TableDoorSpecs:            "1539128685",
	TableDoubleSlidingSpecs:   "637712949",
	TableSingleSlidingSpecs:   "385193702",
	TableOnlineEstimateLines:  "2122872169",
	TableGeneralEstimateLines: "1511879141",
}

// Client fetches per-table CSV exports through the TTL cache. Every failure
// mode degrades to an empty row set: the site shows "no data" rather than an
// error for a broken table.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	cache      *Cache
	baseURL    string
	sheetID    string
}

// ClientConfig defines dependencies required by Client.
type ClientConfig struct {
	Logger     *slog.Logger
	HTTPClient *http.Client
	Cache      *Cache
	BaseURL    string
	SheetID    string
}

// NewClient constructs a sheet export client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		logger:     cfg.Logger,
		httpClient: httpClient,
		cache:      cfg.Cache,
		baseURL:    cfg.BaseURL,
		sheetID:    cfg.SheetID,
	}
}

// Configured reports whether a spreadsheet ID is set. Health reporting only;
// reads stay fail-soft either way.
func (c *Client) Configured() bool {
	return c.sheetID != ""
}

// FetchTable returns the decoded rows for one table, served from cache
// within the TTL window. Missing configuration, network failures and
// non-success responses all log and return no rows.
func (c *Client) FetchTable(ctx context.Context, table TableID) []Record {
	if c.sheetID == "" {
		c.logger.Warn("spreadsheet ID not configured, returning no rows", "table", string(table))
		return nil
	}

	rows, err := c.cache.Get("sheet_"+string(table), func() ([]Record, error) {
		return c.download(ctx, table)
	})
	if err != nil {
		c.logger.Error("sheet fetch failed", "table", string(table), "error", err)
		return nil
	}
	return rows
}

func (c *Client) download(ctx context.Context, table TableID) ([]Record, error) {
	gid, ok := tableGIDs[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	url := fmt.Sprintf("%s/d/%s/export?format=csv&gid=%s", c.baseURL, c.sheetID, gid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", table, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", table, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s body: %w", table, err)
	}
	return DecodeCSV(string(body)), nil
}
