package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/driftboard/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestBoard(), model.DefaultSizes())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyBoard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, model.NewBoard(), model.DefaultSizes())
	if err == nil {
		t.Fatal("expected error for empty board, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestBoard(), model.DefaultSizes())

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	if labels[0].ItemLabel != "Standup notes" {
		t.Errorf("expected first label to be 'Standup notes', got %q", labels[0].ItemLabel)
	}
	if labels[0].Width != 200 || labels[0].Height != 150 {
		t.Errorf("expected table size 200x150 for a note, got %.0fx%.0f", labels[0].Width, labels[0].Height)
	}
	if labels[0].Container != "Work" {
		t.Errorf("expected container label 'Work', got %q", labels[0].Container)
	}

	// Explicit size overrides the table
	if labels[2].Width != 640 || labels[2].Height != 480 {
		t.Errorf("explicit size not carried: got %.0fx%.0f", labels[2].Width, labels[2].Height)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		ItemID:    "ab12cd34",
		ItemLabel: "Kitchen timer",
		TypeTag:   "timer",
		Container: "Work",
		Width:     180,
		Height:    120,
		X:         50,
		Y:         100,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.ItemID != info.ItemID || decoded.ItemLabel != info.ItemLabel {
		t.Errorf("identity mismatch: got %+v", decoded)
	}
	if decoded.Width != info.Width || decoded.Height != info.Height {
		t.Errorf("dimensions mismatch: got %.0fx%.0f, want %.0fx%.0f",
			decoded.Width, decoded.Height, info.Width, info.Height)
	}
}

func TestExportLabels_ManyItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 items forces a second label page
	board := model.NewBoard()
	for i := 0; i < 35; i++ {
		board.Items = append(board.Items, model.Item{
			ID:       fmt.Sprintf("item-%02d", i),
			Label:    fmt.Sprintf("Card %d", i+1),
			TypeTag:  "note",
			Position: model.Point2D{X: float64(i * 250), Y: 10},
		})
	}

	err := ExportLabels(path, board, model.DefaultSizes())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
