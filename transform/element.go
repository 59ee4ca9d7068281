package transform

// An Element supplies the layout context needed to resolve relative
// units (%, em, vw, vh) into absolute pixel lengths.
type Element interface {
	FontSize() float64
	Width() float64
	Height() float64
	ViewportWidth() float64
	ViewportHeight() float64
}

// A Box is a fixed layout context.
type Box struct {
	fontSize       float64
	width          float64
	height         float64
	viewportWidth  float64
	viewportHeight float64
}

// NewBox creates a Box with the given dimensions in pixels.
func NewBox(width, height, fontSize, viewportWidth, viewportHeight float64) *Box {
	b := new(Box)
	b.width = width
	b.height = height
	b.fontSize = fontSize
	b.viewportWidth = viewportWidth
	b.viewportHeight = viewportHeight
	return b
}

func (b *Box) FontSize() float64 {
	return b.fontSize
}

func (b *Box) Width() float64 {
	return b.width
}

func (b *Box) Height() float64 {
	return b.height
}

func (b *Box) ViewportWidth() float64 {
	return b.viewportWidth
}

func (b *Box) ViewportHeight() float64 {
	return b.viewportHeight
}
