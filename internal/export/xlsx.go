package export

import (
	"fmt"

	"github.com/piwi3910/driftboard/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportManifest writes the board's items and zones to an Excel workbook.
// The format round-trips through the importer: the Items sheet uses the
// same header names the importer recognizes.
func ExportManifest(path string, board model.Board, sizes model.SizeTable) error {
	if len(board.Items) == 0 && len(board.Containers) == 0 {
		return fmt.Errorf("board is empty, nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	itemSheet := f.GetSheetName(0)
	if err := f.SetSheetName(itemSheet, "Items"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	containerLabels := make(map[string]string, len(board.Containers))
	for _, c := range board.Containers {
		containerLabels[c.ID] = c.Label
	}

	itemHeaders := []interface{}{"Label", "Type", "Width", "Height", "Container", "X", "Y"}
	if err := writeRow(f, "Items", 1, itemHeaders); err != nil {
		return err
	}
	for i, item := range board.Items {
		size := sizes.Resolve(item)
		row := []interface{}{
			item.Label,
			item.TypeTag,
			size.Width,
			size.Height,
			containerLabels[item.ContainerID],
			item.Position.X,
			item.Position.Y,
		}
		if err := writeRow(f, "Items", i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Zones"); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	zoneHeaders := []interface{}{"Name", "X", "Y", "Width", "Height", "Categories"}
	if err := writeRow(f, "Zones", 1, zoneHeaders); err != nil {
		return err
	}
	for i, c := range board.Containers {
		row := []interface{}{
			c.Label,
			c.Position.X,
			c.Position.Y,
			c.Size.Width,
			c.Size.Height,
			joinCategories(c.AcceptedCategories),
		}
		if err := writeRow(f, "Zones", i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeRow writes one row of values starting at column A.
func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to create cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell value: %w", err)
		}
	}
	return nil
}
