package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nondualworks/docspine-landing/internal/playback"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

type fileCatalog struct {
	Product    string            `yaml:"product" toml:"product"`
	License    string            `yaml:"license" toml:"license"`
	Owner      fileLink          `yaml:"owner" toml:"owner"`
	Nav        []fileLink        `yaml:"nav" toml:"nav"`
	Footer     []fileLink        `yaml:"footer" toml:"footer"`
	Hero       fileHero          `yaml:"hero" toml:"hero"`
	Spines     []fileSpine       `yaml:"spines" toml:"spines"`
	Domains    map[string]string `yaml:"domains" toml:"domains"`
	Diataxis   map[string]string `yaml:"diataxis" toml:"diataxis"`
	Philosophy fileSection       `yaml:"philosophy" toml:"philosophy"`
	Spec       fileSection       `yaml:"spec" toml:"spec"`
	Layers     []fileLayer       `yaml:"layers" toml:"layers"`
	CLI        fileSection       `yaml:"cli" toml:"cli"`
	Script     []fileLine        `yaml:"script" toml:"script"`
	Commands   []fileCommand     `yaml:"commands" toml:"commands"`
	Why        fileWhy           `yaml:"why" toml:"why"`
	Credits    fileSection       `yaml:"credits" toml:"credits"`
	Creditors  []fileCredit      `yaml:"creditors" toml:"creditors"`
}

type fileLink struct {
	Label    string `yaml:"label" toml:"label"`
	URL      string `yaml:"url" toml:"url"`
	External bool   `yaml:"external,omitempty" toml:"external,omitempty"`
}

type fileHero struct {
	Eyebrow   string   `yaml:"eyebrow" toml:"eyebrow"`
	Headline  []string `yaml:"headline" toml:"headline"`
	Body      string   `yaml:"body" toml:"body"`
	Primary   fileLink `yaml:"primary" toml:"primary"`
	Secondary fileLink `yaml:"secondary" toml:"secondary"`
}

type fileSpine struct {
	Name   string `yaml:"name" toml:"name"`
	Domain string `yaml:"domain" toml:"domain"`
	Height int    `yaml:"height" toml:"height"`
	Docs   int    `yaml:"docs" toml:"docs"`
}

type fileSection struct {
	Eyebrow string `yaml:"eyebrow" toml:"eyebrow"`
	Heading string `yaml:"heading" toml:"heading"`
	Body    string `yaml:"body,omitempty" toml:"body,omitempty"`
	Quote   string `yaml:"quote,omitempty" toml:"quote,omitempty"`
	Badge   string `yaml:"badge,omitempty" toml:"badge,omitempty"`
	Window  string `yaml:"window,omitempty" toml:"window,omitempty"`
}

type fileLayer struct {
	Number      string    `yaml:"number" toml:"number"`
	Title       string    `yaml:"title" toml:"title"`
	Description string    `yaml:"description" toml:"description"`
	Color       string    `yaml:"color" toml:"color"`
	Link        *fileLink `yaml:"link,omitempty" toml:"link,omitempty"`
}

type fileLine struct {
	Delay    string        `yaml:"delay" toml:"delay"`
	Prefix   *string       `yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	Gap      bool          `yaml:"gap,omitempty" toml:"gap,omitempty"`
	Text     string        `yaml:"text,omitempty" toml:"text,omitempty"`
	Segments []fileSegment `yaml:"segments,omitempty" toml:"segments,omitempty"`
}

type fileSegment struct {
	Role string `yaml:"role" toml:"role"`
	Text string `yaml:"text" toml:"text"`
}

type fileCommand struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
}

type fileComparison struct {
	Label    string `yaml:"label" toml:"label"`
	Question string `yaml:"question" toml:"question"`
	Answer   string `yaml:"answer" toml:"answer"`
}

type fileWhy struct {
	Eyebrow string         `yaml:"eyebrow" toml:"eyebrow"`
	Heading string         `yaml:"heading" toml:"heading"`
	Without fileComparison `yaml:"without" toml:"without"`
	With    fileComparison `yaml:"with" toml:"with"`
}

type fileCredit struct {
	Name        string `yaml:"name" toml:"name"`
	Author      string `yaml:"author" toml:"author"`
	URL         string `yaml:"url" toml:"url"`
	Description string `yaml:"description" toml:"description"`
	Color       string `yaml:"color" toml:"color"`
}

// Load reads a catalog override from disk. The format follows the extension.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	cat, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	cat.Source = path
	return cat, nil
}

// LoadOrBuiltin loads the override at path, or the builtin catalog when path is empty.
func LoadOrBuiltin(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin()
	}
	return Load(path)
}

// Parse decodes and validates catalog data. ext is ".yaml", ".yml" or ".toml".
func Parse(data []byte, ext string) (*Catalog, error) {
	var raw fileCatalog
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, invalid("decode yaml: %v", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, invalid("decode toml: %v", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	return normalize(raw)
}

func normalize(raw fileCatalog) (*Catalog, error) {
	cat := &Catalog{
		Product: strings.TrimSpace(raw.Product),
		License: strings.TrimSpace(raw.License),
		Owner:   convertLink(raw.Owner),
		Nav:     convertLinks(raw.Nav),
		Footer:  convertLinks(raw.Footer),
		Hero: Hero{
			Eyebrow:   strings.TrimSpace(raw.Hero.Eyebrow),
			Headline:  raw.Hero.Headline,
			Body:      strings.TrimSpace(raw.Hero.Body),
			Primary:   convertLink(raw.Hero.Primary),
			Secondary: convertLink(raw.Hero.Secondary),
		},
		Philosophy: Philosophy{Section: convertSection(raw.Philosophy), Quote: strings.TrimSpace(raw.Philosophy.Quote)},
		Spec:       convertSection(raw.Spec),
		CLI: CLISection{
			Section:     convertSection(raw.CLI),
			Badge:       strings.TrimSpace(raw.CLI.Badge),
			WindowTitle: strings.TrimSpace(raw.CLI.Window),
		},
		Why: Why{
			Section: Section{Eyebrow: strings.TrimSpace(raw.Why.Eyebrow), Heading: strings.TrimSpace(raw.Why.Heading)},
			Without: Comparison(raw.Why.Without),
			With:    Comparison(raw.Why.With),
		},
		Credits: convertSection(raw.Credits),
	}
	if cat.Product == "" {
		return nil, invalid("product name is required")
	}

	var err error
	if cat.Domains, err = parseColorTable("domain", raw.Domains); err != nil {
		return nil, err
	}
	if cat.Diataxis, err = parseColorTable("diataxis", raw.Diataxis); err != nil {
		return nil, err
	}

	if len(raw.Spines) == 0 {
		return nil, invalid("at least one spine is required")
	}
	seen := make(map[string]struct{}, len(raw.Spines))
	for i, s := range raw.Spines {
		spine := Spine{
			Name:   strings.TrimSpace(s.Name),
			Domain: strings.TrimSpace(s.Domain),
			Height: s.Height,
			Docs:   s.Docs,
		}
		if spine.Name == "" {
			return nil, invalid("spine %d: name is required", i+1)
		}
		if _, dup := seen[spine.Name]; dup {
			return nil, invalid("duplicate spine %q", spine.Name)
		}
		seen[spine.Name] = struct{}{}
		if _, ok := cat.Domains[spine.Domain]; !ok {
			return nil, invalid("spine %q: unknown domain %q", spine.Name, spine.Domain)
		}
		if spine.Height <= 0 {
			return nil, invalid("spine %q: height must be greater than 0", spine.Name)
		}
		if spine.Docs < 0 {
			return nil, invalid("spine %q: docs must not be negative", spine.Name)
		}
		cat.Spines = append(cat.Spines, spine)
	}

	for i, l := range raw.Layers {
		color, ok := cat.Diataxis[strings.TrimSpace(l.Color)]
		if !ok {
			return nil, invalid("layer %d: unknown color %q", i+1, l.Color)
		}
		layer := Layer{
			Number:      strings.TrimSpace(l.Number),
			Title:       strings.TrimSpace(l.Title),
			Description: strings.TrimSpace(l.Description),
			Color:       color,
		}
		if l.Link != nil {
			link := convertLink(*l.Link)
			layer.Link = &link
		}
		cat.Layers = append(cat.Layers, layer)
	}

	if len(raw.Script) == 0 {
		return nil, invalid("at least one script line is required")
	}
	for i, l := range raw.Script {
		line, err := normalizeLine(l)
		if err != nil {
			return nil, invalid("script line %d: %v", i+1, err)
		}
		cat.Script = append(cat.Script, line)
	}

	for _, c := range raw.Commands {
		cat.Commands = append(cat.Commands, Command{Name: strings.TrimSpace(c.Name), Description: strings.TrimSpace(c.Description)})
	}

	for i, c := range raw.Creditors {
		color, ok := cat.Diataxis[strings.TrimSpace(c.Color)]
		if !ok {
			return nil, invalid("credit %d: unknown color %q", i+1, c.Color)
		}
		cat.Creditors = append(cat.Creditors, Credit{
			Name:        strings.TrimSpace(c.Name),
			Author:      strings.TrimSpace(c.Author),
			URL:         strings.TrimSpace(c.URL),
			Description: strings.TrimSpace(c.Description),
			Color:       color,
		})
	}

	return cat, nil
}

func normalizeLine(l fileLine) (playback.Line, error) {
	delay, err := time.ParseDuration(strings.TrimSpace(l.Delay))
	if err != nil {
		return playback.Line{}, fmt.Errorf("invalid delay: %w", err)
	}
	if delay < 0 {
		return playback.Line{}, fmt.Errorf("delay must not be negative")
	}

	line := playback.Line{Delay: delay, Prefix: playback.DefaultPrefix, GapBefore: l.Gap}
	if l.Prefix != nil {
		line.Prefix = *l.Prefix
	}

	if l.Text != "" && len(l.Segments) > 0 {
		return playback.Line{}, fmt.Errorf("text and segments are mutually exclusive")
	}
	if l.Text != "" {
		line.Segments = []playback.Segment{{Role: playback.RolePlain, Text: l.Text}}
		return line, nil
	}
	if len(l.Segments) == 0 {
		return playback.Line{}, fmt.Errorf("line content is required")
	}
	for _, seg := range l.Segments {
		role := playback.Role(strings.ToLower(strings.TrimSpace(seg.Role)))
		if role == "" {
			role = playback.RolePlain
		}
		if !role.Valid() {
			return playback.Line{}, fmt.Errorf("unknown segment role %q", seg.Role)
		}
		line.Segments = append(line.Segments, playback.Segment{Role: role, Text: seg.Text})
	}
	return line, nil
}

func parseColorTable(kind string, raw map[string]string) (DomainColors, error) {
	if len(raw) == 0 {
		return nil, invalid("%s colors are required", kind)
	}
	table := make(DomainColors, len(raw))
	for name, value := range raw {
		color, err := styles.ParseColor(value)
		if err != nil {
			return nil, invalid("%s %q: %v", kind, name, err)
		}
		table[strings.TrimSpace(name)] = color
	}
	return table, nil
}

func convertLinks(raw []fileLink) []Link {
	links := make([]Link, 0, len(raw))
	for _, l := range raw {
		links = append(links, convertLink(l))
	}
	return links
}

func convertLink(l fileLink) Link {
	return Link{Label: strings.TrimSpace(l.Label), URL: strings.TrimSpace(l.URL), External: l.External}
}

func convertSection(s fileSection) Section {
	return Section{
		Eyebrow: strings.TrimSpace(s.Eyebrow),
		Heading: strings.TrimSpace(s.Heading),
		Body:    strings.TrimSpace(s.Body),
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}
