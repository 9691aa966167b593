package ui

// Base holds the size and focus state every panel tracks. Panels embed
// it so the root model can address them uniformly when the window
// resizes or tab moves the focus between the cards and the library.
//
//	type Model struct {
//	    ui.Base
//	    cards  []filter.Card
//	    active int
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetSize records the panel dimensions set by the root layout.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the panel dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the panel width.
func (b Base) Width() int {
	return b.width
}

// Height returns the panel height.
func (b Base) Height() int {
	return b.height
}

// SetFocused marks the panel as the one receiving navigation keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the panel has the focus.
func (b Base) IsFocused() bool {
	return b.focused
}
