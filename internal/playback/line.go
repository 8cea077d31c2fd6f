package playback

import (
	"strings"
	"time"
)

// DefaultPrefix is the marker drawn before a command line.
const DefaultPrefix = "$"

// Role selects how a segment of a line is colored.
type Role string

const (
	RolePlain    Role = "plain"
	RoleMuted    Role = "muted"
	RoleBright   Role = "bright"
	RoleEmphasis Role = "emphasis"
)

// Valid reports whether the role is one the renderer knows.
func (r Role) Valid() bool {
	switch r {
	case RolePlain, RoleMuted, RoleBright, RoleEmphasis:
		return true
	default:
		return false
	}
}

// Segment is a run of text sharing one role.
type Segment struct {
	Role Role
	Text string
}

// Line is one scripted terminal line. Delay is absolute from schedule time,
// not relative to the previous line.
type Line struct {
	Delay     time.Duration
	Prefix    string
	Segments  []Segment
	GapBefore bool
}

// Text joins the segments without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// HasPrefix reports whether a leading marker is drawn.
func (l Line) HasPrefix() bool {
	return l.Prefix != ""
}
