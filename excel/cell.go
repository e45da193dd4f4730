package excel

import "github.com/xuri/excelize/v2"

// CellName converts 0-based row and column indices to an A1 reference (0,0 → "A1").
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		// only reachable with negative or out-of-sheet indices
		return ""
	}
	return name
}

// ColumnName converts a 0-based column index to letters (0→A, 25→Z, 26→AA).
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}
