package sheets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dodamdoor/casebook/api/internal/infrastructure/sheets"
)

func TestDecodeCSV(t *testing.T) {
	raw := "아파트명,주소,면적\n동탄역푸르지오,경기도 화성시,84\n위례자연앤, \"서울 송파구, 위례동\" ,59\n"

	records := sheets.DecodeCSV(raw)
	require.Len(t, records, 2)

	require.Equal(t, "동탄역푸르지오", records[0]["아파트명"])
	require.Equal(t, "경기도 화성시", records[0]["주소"])
	require.Equal(t, "84", records[0]["면적"])

	// A quoted field keeps its comma and loses surrounding whitespace.
	require.Equal(t, "서울 송파구, 위례동", records[1]["주소"])
}

func TestDecodeCSVShortRows(t *testing.T) {
	raw := "a,b,c\n1,2\n"

	records := sheets.DecodeCSV(raw)
	require.Len(t, records, 1)
	require.Equal(t, "1", records[0]["a"])
	require.Equal(t, "2", records[0]["b"])
	require.Equal(t, "", records[0]["c"])
}

func TestDecodeCSVHeaderOnly(t *testing.T) {
	require.Empty(t, sheets.DecodeCSV("아파트명,주소"))
	require.Empty(t, sheets.DecodeCSV(""))
	require.Empty(t, sheets.DecodeCSV("   \n"))
}

func TestDecodeCSVTrimsValues(t *testing.T) {
	records := sheets.DecodeCSV("a,b\n  x  ,\t y \n")
	require.Len(t, records, 1)
	require.Equal(t, "x", records[0]["a"])
	require.Equal(t, "y", records[0]["b"])
}
