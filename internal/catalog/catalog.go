// Package catalog provides the static page content: services, domain colors,
// the scripted terminal session, commands, and credits.
package catalog

import (
	"errors"
	"sort"

	"github.com/nondualworks/docspine-landing/internal/playback"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

// ErrInvalidCatalog wraps every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// DomainColors maps a domain category to its base color.
type DomainColors map[string]styles.Color

// Names returns the domain names in sorted order.
func (d DomainColors) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog is the validated, immutable page content.
type Catalog struct {
	Product    string
	License    string
	Owner      Link
	Nav        []Link
	Footer     []Link
	Hero       Hero
	Spines     []Spine
	Domains    DomainColors
	Diataxis   DomainColors
	Philosophy Philosophy
	Spec       Section
	Layers     []Layer
	CLI        CLISection
	Script     []playback.Line
	Commands   []Command
	Why        Why
	Credits    Section
	Creditors  []Credit
	Source     string
}

// Link is a pass-through navigation anchor.
type Link struct {
	Label    string
	URL      string
	External bool
}

// Hero is the opening section.
type Hero struct {
	Eyebrow   string
	Headline  []string
	Body      string
	Primary   Link
	Secondary Link
}

// Spine is one service on the bookshelf.
type Spine struct {
	Name   string
	Domain string
	Height int
	Docs   int
}

// Section is an eyebrow, a heading, and optional body copy.
type Section struct {
	Eyebrow string
	Heading string
	Body    string
}

// Philosophy adds the pull quote.
type Philosophy struct {
	Section
	Quote string
}

// Layer is one of the three Docspine contract layers.
type Layer struct {
	Number      string
	Title       string
	Description string
	Color       styles.Color
	Link        *Link
}

// CLISection introduces the reference CLI.
type CLISection struct {
	Section
	Badge       string
	WindowTitle string
}

// Command is one CLI subcommand teaser.
type Command struct {
	Name        string
	Description string
}

// Comparison is one side of the before/after panel.
type Comparison struct {
	Label    string
	Question string
	Answer   string
}

// Why contrasts unstructured docs with Docspine.
type Why struct {
	Section
	Without Comparison
	With    Comparison
}

// Credit names prior work the product composes.
type Credit struct {
	Name        string
	Author      string
	URL         string
	Description string
	Color       styles.Color
}

// SpineIndex returns the position of a spine by name.
func (c *Catalog) SpineIndex(name string) (int, bool) {
	for i, spine := range c.Spines {
		if spine.Name == name {
			return i, true
		}
	}
	return -1, false
}

// ShelfSummary counts services and distinct domains in use.
func (c *Catalog) ShelfSummary() (services, domains int) {
	seen := make(map[string]struct{}, len(c.Domains))
	for _, spine := range c.Spines {
		seen[spine.Domain] = struct{}{}
	}
	return len(c.Spines), len(seen)
}
