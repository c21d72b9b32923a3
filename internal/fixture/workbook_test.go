package fixture_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/rowalign/grid"
	"github.com/katalvlaran/rowalign/internal/fixture"
)

// writeWorkbook saves a two-sheet workbook with typed cells and returns its path.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "SKU-1"))
	require.NoError(t, f.SetCellValue(sheet, "B1", 30))
	require.NoError(t, f.SetCellBool(sheet, "C1", true))
	require.NoError(t, f.SetCellValue(sheet, "D1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue(sheet, "A2", "SKU-2"))
	require.NoError(t, f.SetCellValue(sheet, "C2", 4.5))

	_, err := f.NewSheet("Archive")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Archive", "A1", "old"))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t)

	rows, err := fixture.Load(path, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, grid.Text("SKU-1"), rows[0][0])
	assert.Equal(t, grid.Number(30), rows[0][1])
	assert.Equal(t, grid.Bool(true), rows[0][2])

	d, ok := rows[0][3].DateValue()
	require.True(t, ok, "date-formatted serial reads back as a date, got %v", rows[0][3])
	assert.Equal(t, "2024-03-01", d.Format("2006-01-02"))

	require.Len(t, rows[1], 3)
	assert.True(t, rows[1][1].IsEmpty())
	assert.Equal(t, grid.Number(4.5), rows[1][2])
}

func TestReadWorkbook_Sheets(t *testing.T) {
	path := writeWorkbook(t)

	rows, err := fixture.ReadWorkbook(path, "Archive")
	require.NoError(t, err)
	assert.Equal(t, []grid.Row{{grid.Text("old")}}, rows)

	_, err = fixture.ReadWorkbook(path, "Missing")
	assert.ErrorIs(t, err, fixture.ErrSheetNotFound)
}

func TestReadWorkbook_Formula(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellFormula("Sheet1", "A1", "B1*2"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 4))
	path := filepath.Join(t.TempDir(), "formula.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := fixture.ReadWorkbook(path, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 2)
	assert.Equal(t, "B1*2", rows[0][0].Formula())
	assert.Equal(t, grid.Number(4), rows[0][1])
}
