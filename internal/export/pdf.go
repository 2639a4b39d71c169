// Package export provides functionality for exporting board snapshots
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/driftboard/internal/model"
)

// itemColor represents an RGB color for a rendered item.
type itemColor struct {
	R, G, B int
}

// itemColors mirrors the color scheme used in the UI board canvas widget.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF snapshot of the board. Each container is
// rendered on its own page with its items drawn to scale, followed by a
// summary page with per-container statistics.
func ExportPDF(path string, board model.Board, sizes model.SizeTable) error {
	if len(board.Containers) == 0 {
		return fmt.Errorf("no containers to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	byContainer := groupItems(board)

	for i, c := range board.Containers {
		pdf.AddPage()
		renderContainerPage(pdf, c, byContainer[c.ID], sizes, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, board, byContainer, sizes)

	return pdf.OutputFileAndClose(path)
}

// groupItems buckets the board's items by container id.
func groupItems(board model.Board) map[string][]model.Item {
	byContainer := make(map[string][]model.Item)
	for _, item := range board.Items {
		if item.ContainerID != "" {
			byContainer[item.ContainerID] = append(byContainer[item.ContainerID], item)
		}
	}
	return byContainer
}

// renderContainerPage draws a single container and its items on the
// current PDF page.
func renderContainerPage(pdf *fpdf.Fpdf, c model.Container, items []model.Item, sizes model.SizeTable, pageNum int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Zone %d: %s (%.0f x %.0f)", pageNum, c.Label, c.Size.Width, c.Size.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Used area: %.0f | Zone area: %.0f | Density: %.1f%%",
		len(items), usedArea(items, sizes), c.Size.Width*c.Size.Height, density(c, items, sizes)*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// Scale to fit the container within the drawing area
	scaleX := drawWidth / c.Size.Width
	scaleY := drawHeight / c.Size.Height
	scale := math.Min(scaleX, scaleY)

	canvasW := c.Size.Width * scale
	canvasH := c.Size.Height * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Container background
	pdf.SetFillColor(248, 248, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Items, in board order. Positions are absolute board coordinates,
	// so shift them into the container's frame first.
	for i, item := range items {
		col := itemColors[i%len(itemColors)]
		size := sizes.Resolve(item)
		iw := size.Width * scale
		ih := size.Height * scale
		ix := offsetX + (item.Position.X-c.Position.X)*scale
		iy := offsetY + (item.Position.Y-c.Position.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(ix, iy, iw, ih, "FD")

		// Item label (only if rectangle is large enough)
		if iw > 15 && ih > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(iw, ih))
			pdf.SetTextColor(0, 0, 0)

			label := item.Label
			dims := fmt.Sprintf("%.0fx%.0f", size.Width, size.Height)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			// First line: label
			if labelW < iw-2 {
				pdf.SetXY(ix+(iw-labelW)/2, iy+ih/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}

			// Second line: dimensions
			if ih > 14 && dimsW < iw-2 {
				pdf.SetXY(ix+(iw-dimsW)/2, iy+ih/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, c, scale, offsetX, offsetY, canvasW, canvasH)
	drawItemLegend(pdf, items, sizes, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the
// container rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, c model.Container, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the container)
	widthLabel := fmt.Sprintf("%.0f", c.Size.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left, rotated)
	heightLabel := fmt.Sprintf("%.0f", c.Size.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawItemLegend renders a compact legend of the container's items at the
// bottom of the page.
func drawItemLegend(pdf *fpdf.Fpdf, items []model.Item, sizes model.SizeTable, startY float64) {
	if len(items) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, item := range items {
		col := itemColors[i%len(itemColors)]
		size := sizes.Resolve(item)
		label := fmt.Sprintf("%s [%s] (%.0fx%.0f)", item.Label, item.TypeTag, size.Width, size.Height)
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with per-container
// statistics and the board's layout settings.
func renderSummaryPage(pdf *fpdf.Fpdf, board model.Board, byContainer map[string][]model.Item, sizes model.SizeTable) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Board Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	grouped := 0
	for _, items := range byContainer {
		grouped += len(items)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Board", board.Name},
		{"Zones", fmt.Sprintf("%d", len(board.Containers))},
		{"Items", fmt.Sprintf("%d", len(board.Items))},
		{"Ungrouped Items", fmt.Sprintf("%d", len(board.Items)-grouped)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-zone breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Zone Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 60, 50, 30, 35, 60}
	headers := []string{"Zone", "Name", "Dimensions", "Items", "Density", "Categories"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, c := range board.Containers {
		items := byContainer[c.ID]
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			c.Label,
			fmt.Sprintf("%.0f x %.0f", c.Size.Width, c.Size.Height),
			fmt.Sprintf("%d", len(items)),
			fmt.Sprintf("%.1f%%", density(c, items, sizes)*100),
			joinCategories(c.AcceptedCategories),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Layout settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Layout Settings", "", 0, "L", false, 0, "")
	y += 9

	settingsItems := []struct {
		label string
		value string
	}{
		{"Strategy", string(board.Config.Strategy)},
		{"Spacing", fmt.Sprintf("%.0f", board.Config.Spacing)},
		{"Grid Cell Size", fmt.Sprintf("%.0f", board.Config.GridCellSize)},
		{"Max Search Radius", fmt.Sprintf("%.0f", board.Config.MaxSearchRadius)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Driftboard - Infinite Canvas Board", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle
// dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

// usedArea sums the resolved footprint areas of the given items.
func usedArea(items []model.Item, sizes model.SizeTable) float64 {
	var total float64
	for _, item := range items {
		s := sizes.Resolve(item)
		total += s.Width * s.Height
	}
	return total
}

// density returns the fraction of the container's area claimed by items.
func density(c model.Container, items []model.Item, sizes model.SizeTable) float64 {
	area := c.Size.Width * c.Size.Height
	if area == 0 {
		return 0
	}
	return usedArea(items, sizes) / area
}

// joinCategories renders an accepted-categories list for the summary table.
func joinCategories(cats []string) string {
	if len(cats) == 0 {
		return "any"
	}
	out := cats[0]
	for _, c := range cats[1:] {
		out += ", " + c
	}
	return out
}
