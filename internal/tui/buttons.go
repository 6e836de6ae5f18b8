package tui

const (
	gridCols = 5
	gridRows = 5
)

type buttonKind int

const (
	numberButton buttonKind = iota
	operatorButton
	equalsButton
)

// buttonDef places a button on the 5x5 grid. col/row are cell
// coordinates, colSpan/rowSpan the number of cells covered.
type buttonDef struct {
	label   string
	col     int
	row     int
	colSpan int
	rowSpan int
	kind    buttonKind
}

// The grid mirrors a desk calculator: clear and parens on top, equals in
// the bottom-right corner. "+" and "=" are two cells tall, "0" two wide.
var buttonGrid = []buttonDef{
	{label: "C", col: 0, row: 0, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "(", col: 1, row: 0, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: ")", col: 2, row: 0, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "/", col: 3, row: 0, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "%", col: 4, row: 0, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "7", col: 0, row: 1, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "8", col: 1, row: 1, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "9", col: 2, row: 1, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "*", col: 3, row: 1, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "^", col: 4, row: 1, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "4", col: 0, row: 2, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "5", col: 1, row: 2, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "6", col: 2, row: 2, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "-", col: 3, row: 2, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "+/-", col: 4, row: 2, colSpan: 1, rowSpan: 1, kind: operatorButton},
	{label: "1", col: 0, row: 3, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "2", col: 1, row: 3, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "3", col: 2, row: 3, colSpan: 1, rowSpan: 1, kind: numberButton},
	{label: "+", col: 3, row: 3, colSpan: 1, rowSpan: 2, kind: operatorButton},
	{label: "=", col: 4, row: 3, colSpan: 1, rowSpan: 2, kind: equalsButton},
	{label: "0", col: 0, row: 4, colSpan: 2, rowSpan: 1, kind: numberButton},
	{label: ".", col: 2, row: 4, colSpan: 1, rowSpan: 1, kind: numberButton},
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type buttonRect struct {
	rect
	def buttonDef
}

// layoutButtons computes a screen rect for every button inside area. Cell
// boundaries are derived from the same integer division in both axes, so
// rendering and hit-testing can never disagree.
func layoutButtons(area rect) []buttonRect {
	colX := make([]int, gridCols+1)
	for i := 0; i <= gridCols; i++ {
		colX[i] = area.x + i*area.w/gridCols
	}
	rowY := make([]int, gridRows+1)
	for i := 0; i <= gridRows; i++ {
		rowY[i] = area.y + i*area.h/gridRows
	}

	rects := make([]buttonRect, 0, len(buttonGrid))
	for _, def := range buttonGrid {
		rects = append(rects, buttonRect{
			rect: rect{
				x: colX[def.col],
				y: rowY[def.row],
				w: colX[def.col+def.colSpan] - colX[def.col],
				h: rowY[def.row+def.rowSpan] - rowY[def.row],
			},
			def: def,
		})
	}
	return rects
}

// hitTest maps a terminal cell to the button covering it.
func hitTest(rects []buttonRect, x, y int) (string, bool) {
	for _, br := range rects {
		if br.contains(x, y) {
			return br.def.label, true
		}
	}
	return "", false
}
