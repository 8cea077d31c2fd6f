// Package bookshelf tracks which service spine is hovered and derives how
// each spine is drawn.
package bookshelf

import (
	"errors"
	"fmt"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

var (
	ErrIndexOutOfRange = errors.New("spine index out of range")
	ErrUnknownDomain   = errors.New("unknown spine domain")
)

// HoverShadowAlpha is the alpha of the glow under a hovered spine.
var HoverShadowAlpha = styles.AlphaByte("25")

// MaxRows is the height in rows of the tallest possible spine.
const MaxRows = 8

// Tracker holds the hover state of one shelf. The zero index is a valid
// spine, so active marks whether anything is hovered.
type Tracker struct {
	items  []catalog.Spine
	index  int
	active bool
}

// Visual is how one spine is drawn for the current hover state.
type Visual struct {
	Fill           styles.Color
	Elevated       bool
	TooltipVisible bool
	Shadow         string
	Rows           int
}

// NewTracker returns a tracker with nothing hovered.
func NewTracker(items []catalog.Spine) *Tracker {
	return &Tracker{items: items}
}

// Len returns the number of spines.
func (t *Tracker) Len() int {
	return len(t.items)
}

// Items returns the spines in shelf order.
func (t *Tracker) Items() []catalog.Spine {
	return t.items
}

// Set hovers index, replacing any previous hover.
func (t *Tracker) Set(index int) error {
	if err := t.check(index); err != nil {
		return err
	}
	t.index = index
	t.active = true
	return nil
}

// Clear drops the hover. Clearing an empty tracker does nothing.
func (t *Tracker) Clear() {
	t.index = 0
	t.active = false
}

// Hovered returns the hovered index.
func (t *Tracker) Hovered() (int, bool) {
	return t.index, t.active
}

// Current returns the hovered spine.
func (t *Tracker) Current() (catalog.Spine, bool) {
	if !t.active {
		return catalog.Spine{}, false
	}
	return t.items[t.index], true
}

// Next moves the hover one spine right, starting at the first spine.
func (t *Tracker) Next() {
	if len(t.items) == 0 {
		return
	}
	if !t.active {
		_ = t.Set(0)
		return
	}
	_ = t.Set((t.index + 1) % len(t.items))
}

// Prev moves the hover one spine left, starting at the last spine.
func (t *Tracker) Prev() {
	if len(t.items) == 0 {
		return
	}
	if !t.active {
		_ = t.Set(len(t.items) - 1)
		return
	}
	_ = t.Set((t.index - 1 + len(t.items)) % len(t.items))
}

// IsHovered reports whether index is the hovered spine.
func (t *Tracker) IsHovered(index int) bool {
	return t.active && t.index == index
}

// VisualFor derives the drawing of spine index from the hover state.
func (t *Tracker) VisualFor(index int, domains catalog.DomainColors, tokens styles.ThemeTokens) (Visual, error) {
	if err := t.check(index); err != nil {
		return Visual{}, err
	}
	spine := t.items[index]
	base, ok := domains[spine.Domain]
	if !ok {
		return Visual{}, fmt.Errorf("%w: %q", ErrUnknownDomain, spine.Domain)
	}

	hovered := t.IsHovered(index)
	v := Visual{
		Elevated:       hovered,
		TooltipVisible: hovered,
		Rows:           Rows(spine.Height),
	}
	if hovered {
		v.Fill = base.WithAlpha(1)
		v.Shadow = base.WithAlpha(HoverShadowAlpha).String()
	} else {
		v.Fill = base.WithAlpha(tokens.SpineAlpha)
		v.Shadow = tokens.SpineRestShadow
	}
	return v, nil
}

// Rows scales a spine height (0..100) to terminal rows, never below one.
func Rows(height int) int {
	rows := (height*MaxRows + 50) / 100
	switch {
	case rows < 1:
		return 1
	case rows > MaxRows:
		return MaxRows
	default:
		return rows
	}
}

func (t *Tracker) check(index int) error {
	if index < 0 || index >= len(t.items) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(t.items))
	}
	return nil
}
