package bookshelf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

func shelf(t *testing.T) (*Tracker, *catalog.Catalog) {
	t.Helper()
	cat := catalog.MustBuiltin()
	return NewTracker(cat.Spines), cat
}

func elevatedCount(t *testing.T, tr *Tracker, cat *catalog.Catalog, tokens styles.ThemeTokens) int {
	t.Helper()
	count := 0
	for i := 0; i < tr.Len(); i++ {
		v, err := tr.VisualFor(i, cat.Domains, tokens)
		require.NoError(t, err)
		if v.Elevated {
			count++
		}
		assert.Equal(t, v.Elevated, v.TooltipVisible)
	}
	return count
}

func TestAtMostOneElevated(t *testing.T) {
	tr, cat := shelf(t)
	tokens := styles.MustResolve(styles.ThemeDark)
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 500; step++ {
		if rng.Intn(4) == 0 {
			tr.Clear()
		} else {
			require.NoError(t, tr.Set(rng.Intn(tr.Len())))
		}
		assert.LessOrEqual(t, elevatedCount(t, tr, cat, tokens), 1)
	}
}

func TestSetReplacesHover(t *testing.T) {
	tr, _ := shelf(t)

	require.NoError(t, tr.Set(2))
	require.NoError(t, tr.Set(5))

	idx, ok := tr.Hovered()
	assert.True(t, ok)
	assert.Equal(t, 5, idx)
	assert.False(t, tr.IsHovered(2))
}

func TestClearIsIdempotent(t *testing.T) {
	tr, _ := shelf(t)
	require.NoError(t, tr.Set(3))

	tr.Clear()
	_, onceActive := tr.Hovered()
	once := *tr
	tr.Clear()

	_, twiceActive := tr.Hovered()
	assert.False(t, onceActive)
	assert.False(t, twiceActive)
	assert.Equal(t, once, *tr)
}

func TestSetOutOfRange(t *testing.T) {
	tr, _ := shelf(t)
	require.NoError(t, tr.Set(1))

	for _, idx := range []int{-1, tr.Len(), 99} {
		err := tr.Set(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	got, ok := tr.Hovered()
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestVisualForFill(t *testing.T) {
	tr, cat := shelf(t)
	dark := styles.MustResolve(styles.ThemeDark)
	light := styles.MustResolve(styles.ThemeLight)
	require.NoError(t, tr.Set(0))

	hovered, err := tr.VisualFor(0, cat.Domains, dark)
	require.NoError(t, err)
	assert.Equal(t, cat.Domains["checkout"].Hex, hovered.Fill.Hex)
	assert.Equal(t, 1.0, hovered.Fill.Alpha)
	assert.Equal(t, "#fbbf2425", hovered.Shadow)

	restDark, err := tr.VisualFor(1, cat.Domains, dark)
	require.NoError(t, err)
	restLight, err := tr.VisualFor(1, cat.Domains, light)
	require.NoError(t, err)

	assert.Greater(t, restDark.Fill.Alpha, restLight.Fill.Alpha)
	assert.Equal(t, dark.SpineRestShadow, restDark.Shadow)
	assert.False(t, restDark.Elevated)
}

func TestVisualForErrors(t *testing.T) {
	tr := NewTracker([]catalog.Spine{{Name: "orphan", Domain: "nowhere", Height: 40}})
	tokens := styles.MustResolve(styles.ThemeDark)

	_, err := tr.VisualFor(0, catalog.DomainColors{}, tokens)
	assert.ErrorIs(t, err, ErrUnknownDomain)

	_, err = tr.VisualFor(4, catalog.DomainColors{}, tokens)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNextPrevWrap(t *testing.T) {
	tr, _ := shelf(t)

	tr.Prev()
	idx, _ := tr.Hovered()
	assert.Equal(t, tr.Len()-1, idx)

	tr.Next()
	idx, _ = tr.Hovered()
	assert.Equal(t, 0, idx)

	tr.Clear()
	tr.Next()
	idx, _ = tr.Hovered()
	assert.Equal(t, 0, idx)
}

func TestRows(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{0, 1},
		{45, 4},
		{50, 4},
		{92, 7},
		{100, MaxRows},
		{400, MaxRows},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rows(tt.height), "height %d", tt.height)
	}
}
