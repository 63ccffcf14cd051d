package entity

// Word is the text of one non-empty span plus its bounding box and, when
// the adapter can supply it, the originating font.
type Word struct {
	Text     string
	Bbox     BoundingBox
	FontSize float64
	FontName string
}

// Line is the text of every word on one visual text line joined by a
// single space, plus the line's overall bounding box. The single-space
// join is a normalization, not a literal transcription of the page's
// original spacing, since Words only ever carry non-whitespace text.
type Line struct {
	Text  string
	Bbox  BoundingBox
	Words []Word
}

// Block groups adjacent lines; the detector strategies in this spec only
// ever consume Words and Lines, but Blocks are surfaced for completeness
// and for collaborators downstream of the detector.
type Block struct {
	Bbox  BoundingBox
	Lines []Line
}

// PageLayout is the normalized per-page text layout produced once by the
// layout extractor (or supplied pre-extracted by the caller).
type PageLayout struct {
	PageNumber int
	Width      float64
	Height     float64
	Words      []Word
	Lines      []Line
	Blocks     []Block
}
