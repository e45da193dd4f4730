package excel

import "github.com/xuri/excelize/v2"

// StyleManager caches styles so each one is created once per workbook.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Header returns the bold, centered, bottom-bordered style used for the header row.
func (sm *StyleManager) Header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: defaultFamily, Size: defaultSize},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
}

// Body returns the plain left-aligned style used for data cells.
func (sm *StyleManager) Body() (int, error) {
	return sm.getOrCreate("body", &excelize.Style{
		Font:      &excelize.Font{Family: defaultFamily, Size: defaultSize},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

func (sm *StyleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

const (
	defaultFamily = "Calibri"
	defaultSize   = 11
)
