package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/driftboard/internal/engine"
	"github.com/piwi3910/driftboard/internal/model"
)

// Item colors — cycle through these for visual distinction.
var itemColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// BoardCanvas renders the board's zones and items and lets the user drag
// items around. While an item is dragged its neighbors are nudged out of
// the way; on release the item snaps to the nearest free spot.
type BoardCanvas struct {
	widget.BaseWidget
	board     *model.Board
	eng       *engine.Engine
	maxWidth  float32
	maxHeight float32

	// OnChanged fires after a drag moved any item.
	OnChanged func()

	dragIndex int // index into board.Items, -1 when idle
}

func NewBoardCanvas(board *model.Board, eng *engine.Engine, maxW, maxH float32) *BoardCanvas {
	bc := &BoardCanvas{
		board:     board,
		eng:       eng,
		maxWidth:  maxW,
		maxHeight: maxH,
		dragIndex: -1,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

func (bc *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newBoardCanvasRenderer(bc)
}

// extent returns the board-space bounding box covering all zones and
// items, with a margin so nothing touches the widget edge.
func (bc *BoardCanvas) extent() (minX, minY, maxX, maxY float64) {
	minX, minY = 0, 0
	maxX, maxY = 1000, 1000
	first := true

	grow := func(x1, y1, x2, y2 float64) {
		if first {
			minX, minY, maxX, maxY = x1, y1, x2, y2
			first = false
			return
		}
		if x1 < minX {
			minX = x1
		}
		if y1 < minY {
			minY = y1
		}
		if x2 > maxX {
			maxX = x2
		}
		if y2 > maxY {
			maxY = y2
		}
	}

	for _, c := range bc.board.Containers {
		grow(c.Position.X, c.Position.Y, c.Position.X+c.Size.Width, c.Position.Y+c.Size.Height)
	}
	for _, item := range bc.board.Items {
		box := bc.eng.BoundsFor(item)
		grow(box.X, box.Y, box.Right(), box.Bottom())
	}

	const margin = 50
	return minX - margin, minY - margin, maxX + margin, maxY + margin
}

// transform returns the scale and board-space origin used to map board
// coordinates onto the widget.
func (bc *BoardCanvas) transform() (scale float64, originX, originY float64) {
	minX, minY, maxX, maxY := bc.extent()
	w := maxX - minX
	h := maxY - minY
	if w <= 0 || h <= 0 {
		return 1, minX, minY
	}
	scale = float64(bc.maxWidth) / w
	if s := float64(bc.maxHeight) / h; s < scale {
		scale = s
	}
	return scale, minX, minY
}

// toBoard converts a widget position to board coordinates.
func (bc *BoardCanvas) toBoard(pos fyne.Position) model.Point2D {
	scale, ox, oy := bc.transform()
	return model.Point2D{
		X: ox + float64(pos.X)/scale,
		Y: oy + float64(pos.Y)/scale,
	}
}

// itemAt returns the index of the topmost item under the given board
// position, or -1.
func (bc *BoardCanvas) itemAt(p model.Point2D) int {
	for i := len(bc.board.Items) - 1; i >= 0; i-- {
		box := bc.eng.BoundsFor(bc.board.Items[i])
		if p.X >= box.X && p.X <= box.Right() && p.Y >= box.Y && p.Y <= box.Bottom() {
			return i
		}
	}
	return -1
}

// Dragged moves the grabbed item with the pointer and nudges its
// neighbors away each step.
func (bc *BoardCanvas) Dragged(e *fyne.DragEvent) {
	scale, _, _ := bc.transform()
	if scale <= 0 {
		return
	}

	if bc.dragIndex == -1 {
		start := fyne.NewPos(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
		bc.dragIndex = bc.itemAt(bc.toBoard(start))
		if bc.dragIndex == -1 {
			return
		}
	}

	items := bc.board.Items
	mover := &items[bc.dragIndex]
	mover.Position.X += float64(e.Dragged.DX) / scale
	mover.Position.Y += float64(e.Dragged.DY) / scale

	// Push neighbors out of the mover's way
	for i := range items {
		if i == bc.dragIndex {
			continue
		}
		delta := bc.eng.DragStep(items[i], []model.Item{*mover})
		items[i].Position.X += delta.X
		items[i].Position.Y += delta.Y
	}

	bc.Refresh()
	if bc.OnChanged != nil {
		bc.OnChanged()
	}
}

// DragEnd settles the dragged item on the nearest collision-free spot.
func (bc *BoardCanvas) DragEnd() {
	if bc.dragIndex == -1 {
		return
	}
	items := bc.board.Items
	mover := items[bc.dragIndex]

	siblings := make([]model.Item, 0, len(items)-1)
	for i, it := range items {
		if i != bc.dragIndex {
			siblings = append(siblings, it)
		}
	}

	res := bc.eng.ResolvePosition(mover, mover.Position, siblings)
	items[bc.dragIndex].Position = res.Position
	bc.dragIndex = -1

	bc.Refresh()
	if bc.OnChanged != nil {
		bc.OnChanged()
	}
}

type boardCanvasRenderer struct {
	bc      *BoardCanvas
	objects []fyne.CanvasObject
}

func newBoardCanvasRenderer(bc *BoardCanvas) *boardCanvasRenderer {
	r := &boardCanvasRenderer{bc: bc}
	r.rebuild()
	return r
}

func (r *boardCanvasRenderer) rebuild() {
	r.objects = nil

	scale, ox, oy := r.bc.transform()
	toPos := func(x, y float64) fyne.Position {
		return fyne.NewPos(float32((x-ox)*scale), float32((y-oy)*scale))
	}

	// Zones first so items draw on top
	for _, c := range r.bc.board.Containers {
		zw := float32(c.Size.Width * scale)
		zh := float32(c.Size.Height * scale)
		pos := toPos(c.Position.X, c.Position.Y)

		bg := canvas.NewRectangle(color.NRGBA{R: 245, G: 245, B: 240, A: 255})
		bg.Resize(fyne.NewSize(zw, zh))
		bg.Move(pos)
		r.objects = append(r.objects, bg)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
		border.StrokeWidth = 2
		border.Resize(fyne.NewSize(zw, zh))
		border.Move(pos)
		r.objects = append(r.objects, border)

		label := canvas.NewText(c.Label, color.NRGBA{R: 120, G: 120, B: 120, A: 255})
		label.TextSize = 11
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Move(fyne.NewPos(pos.X+4, pos.Y+2))
		r.objects = append(r.objects, label)
	}

	for i, item := range r.bc.board.Items {
		col := itemColors[i%len(itemColors)]
		box := r.bc.eng.BoundsFor(item)
		iw := float32(box.Width * scale)
		ih := float32(box.Height * scale)
		pos := toPos(box.X, box.Y)

		itemRect := canvas.NewRectangle(col)
		itemRect.Resize(fyne.NewSize(iw, ih))
		itemRect.Move(pos)
		r.objects = append(r.objects, itemRect)

		itemBorder := canvas.NewRectangle(color.Transparent)
		itemBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		itemBorder.StrokeWidth = 1
		itemBorder.Resize(fyne.NewSize(iw, ih))
		itemBorder.Move(pos)
		r.objects = append(r.objects, itemBorder)

		// Label (only if big enough)
		if iw > 30 && ih > 16 {
			label := canvas.NewText(
				fmt.Sprintf("%s\n%.0fx%.0f", item.Label, box.Width, box.Height),
				color.Black,
			)
			label.TextSize = 10
			label.Move(fyne.NewPos(pos.X+3, pos.Y+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *boardCanvasRenderer) Layout(size fyne.Size)        {}
func (r *boardCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *boardCanvasRenderer) Destroy()                     {}
func (r *boardCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.bc.maxWidth, r.bc.maxHeight)
}
