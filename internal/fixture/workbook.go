package fixture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/rowalign/grid"
)

// ReadWorkbook reads one worksheet of an .xlsx file into rows. sheet ""
// selects the first sheet.
//
// Cell kinds follow the stored cell type: shared/inline strings become
// text, booleans become booleans, numbers become numbers unless their number
// format is a date format, in which case the serial is converted to a date
// (honoring the workbook's 1904 epoch). Formulas are kept on the cell.
func ReadWorkbook(path, sheet string) ([]grid.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open workbook %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) ([]grid.Row, error) {
	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		sheet = sheets[0]
	} else if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrSheetNotFound, sheet, strings.Join(sheets, ", "))
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("fixture: read rows from sheet %q: %w", sheet, err)
	}

	rd := sheetReader{f: f, sheet: sheet, date1904: date1904, dateStyles: make(map[int]bool)}
	out := make([]grid.Row, len(raw))
	for r, vals := range raw {
		row := make(grid.Row, len(vals))
		for c, val := range vals {
			cell, err := rd.cell(r, c, val)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		out[r] = row
	}

	return out, nil
}

// sheetReader converts raw worksheet values, caching date-style lookups.
type sheetReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (rd *sheetReader) cell(r, c int, val string) (grid.Cell, error) {
	name, err := excelize.CoordinatesToCellName(c+1, r+1)
	if err != nil {
		return grid.Cell{}, err
	}

	typ, err := rd.f.GetCellType(rd.sheet, name)
	if err != nil {
		return grid.Cell{}, fmt.Errorf("fixture: %s!%s: %w", rd.sheet, name, err)
	}

	var cell grid.Cell
	switch {
	case val == "":
		cell = grid.Empty()
	case typ == excelize.CellTypeBool:
		cell = grid.Bool(val == "1" || strings.EqualFold(val, "true"))
	case typ == excelize.CellTypeDate:
		cell, err = parseDate(val)
		if err != nil {
			return grid.Cell{}, fmt.Errorf("fixture: %s!%s: %w", rd.sheet, name, err)
		}
	case typ == excelize.CellTypeUnset || typ == excelize.CellTypeNumber:
		cell = rd.numeric(name, val)
	default:
		cell = grid.Text(val)
	}

	formula, err := rd.f.GetCellFormula(rd.sheet, name)
	if err == nil && formula != "" {
		cell = cell.WithFormula(formula)
	}

	return cell, nil
}

// numeric turns a raw numeric string into a number or, for date-formatted
// cells, a date. Unparsable values stay text.
func (rd *sheetReader) numeric(name, val string) grid.Cell {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return grid.Text(val)
	}
	if rd.isDateCell(name) {
		if d, err := grid.DateFromSerial(f, rd.date1904); err == nil {
			return d
		}
	}

	return grid.Number(f)
}

func (rd *sheetReader) isDateCell(name string) bool {
	styleID, err := rd.f.GetCellStyle(rd.sheet, name)
	if err != nil || styleID == 0 {
		return false
	}
	if ok, seen := rd.dateStyles[styleID]; seen {
		return ok
	}

	ok := false
	if style, err := rd.f.GetStyle(styleID); err == nil && style != nil {
		ok = isDateNumFmt(style.NumFmt)
		if style.CustomNumFmt != nil {
			ok = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	rd.dateStyles[styleID] = ok

	return ok
}

// isDateNumFmt reports whether a built-in number format id renders a date or time.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}

	return false
}

// isDateFormatCode is a loose check for custom date codes such as "yyyy-mm-dd".
func isDateFormatCode(code string) bool {
	code = strings.ToLower(code)

	return strings.Contains(code, "yy") || strings.Contains(code, "dd") || strings.Contains(code, "h:mm")
}
