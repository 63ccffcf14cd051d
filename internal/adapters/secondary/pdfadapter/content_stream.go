package pdfadapter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// rawContentStreamBytes concatenates a page's /Contents stream(s) into one
// buffer so it can be tokenized.
func rawContentStreamBytes(p pdf.Page) ([]byte, error) {
	contents := p.V.Key("Contents")
	if contents.Kind() == pdf.Null {
		return nil, nil
	}

	var buf bytes.Buffer
	if contents.Kind() == pdf.Array {
		for i := 0; i < contents.Len(); i++ {
			if err := copyStream(&buf, contents.Index(i)); err != nil {
				return nil, err
			}
		}
		return buf.Bytes(), nil
	}

	if err := copyStream(&buf, contents); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func copyStream(buf *bytes.Buffer, v pdf.Value) error {
	if v.Kind() != pdf.Stream {
		return nil
	}
	r := v.Reader()
	if r == nil {
		return nil
	}
	defer r.Close()
	_, err := io.Copy(buf, r)
	return err
}

// parseContentStreamDrawings is a minimal content-stream tokenizer: it
// tracks only the numeric operand stack and recognizes the three vector
// primitives C4 and C5 need (m and l for lines, re for rectangles). It does not apply the current
// transformation matrix — generated PDFs that emit "cm" before drawing
// produce coordinates this tokenizer reads as if untransformed. Real-world
// scanned-and-OCRed or hand-authored PDFs are rare inputs for this engine
// (it targets templated, programmatically generated documents), so this
// trade-off is accepted rather than implementing a full PDF graphics-state
// machine.
func parseContentStreamDrawings(data []byte) []port.Drawing {
	if len(data) == 0 {
		return nil
	}

	var drawings []port.Drawing
	var stack []float64
	var cur port.Point
	hasCur := false

	for _, tok := range strings.Fields(string(data)) {
		switch tok {
		case "m":
			if len(stack) >= 2 {
				x, y := stack[len(stack)-2], stack[len(stack)-1]
				cur = port.Point{X: x, Y: y}
				hasCur = true
			}
			stack = stack[:0]
		case "l":
			if len(stack) >= 2 && hasCur {
				x, y := stack[len(stack)-2], stack[len(stack)-1]
				end := port.Point{X: x, Y: y}
				drawings = append(drawings, port.Drawing{
					Kind:  port.DrawingLine,
					Start: cur,
					End:   end,
					Bbox:  lineBbox(cur, end),
				})
				cur = end
			}
			stack = stack[:0]
		case "re":
			if len(stack) >= 4 {
				x, y, w, h := stack[len(stack)-4], stack[len(stack)-3], stack[len(stack)-2], stack[len(stack)-1]
				drawings = append(drawings, port.Drawing{
					Kind: port.DrawingRect,
					Bbox: entity.BoundingBox{X: x, Y: y, Width: w, Height: h},
				})
			}
			stack = stack[:0]
		case "S", "s", "f", "F", "f*", "B", "B*", "b", "b*", "n", "h", "W", "W*":
			stack = stack[:0]
		default:
			if v, err := strconv.ParseFloat(tok, 64); err == nil {
				stack = append(stack, v)
			} else {
				stack = stack[:0]
			}
		}
	}

	return drawings
}

func lineBbox(a, b port.Point) entity.BoundingBox {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return entity.BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
