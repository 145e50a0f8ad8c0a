package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func flatCategories() []Category {
	return []Category{
		{ID: "a", Name: "Engines", SortOrder: 2},
		{ID: "b", Name: "Outboard", ParentID: strPtr("a"), SortOrder: 1},
		{ID: "c", Name: "Four Stroke", ParentID: strPtr("b"), SortOrder: 0},
		{ID: "d", Name: "Two Stroke", ParentID: strPtr("b"), SortOrder: 1},
		{ID: "e", Name: "Deck Hardware", SortOrder: 1},
	}
}

func TestBuildTree(t *testing.T) {
	roots := BuildTree(flatCategories())

	require.Len(t, roots, 2)
	// Roots come back in sort order, not input order.
	assert.Equal(t, "Deck Hardware", roots[0].Name)
	assert.Equal(t, "Engines", roots[1].Name)

	engines := roots[1]
	require.Len(t, engines.Children, 1)
	outboard := engines.Children[0]
	require.Len(t, outboard.Children, 2)
	assert.Equal(t, "Four Stroke", outboard.Children[0].Name)
	assert.Equal(t, "Two Stroke", outboard.Children[1].Name)

	// Leaves carry an empty slice, not nil, so they serialize as [].
	assert.NotNil(t, outboard.Children[0].Children)
	assert.Empty(t, outboard.Children[0].Children)
}

func TestBuildTree_OrphanBecomesRoot(t *testing.T) {
	cats := []Category{
		{ID: "a", Name: "Engines"},
		{ID: "x", Name: "Orphan", ParentID: strPtr("gone")},
	}

	roots := BuildTree(cats)
	require.Len(t, roots, 2)
}

func TestBuildTree_Empty(t *testing.T) {
	assert.Empty(t, BuildTree(nil))
}

func TestPath(t *testing.T) {
	path, err := Path(flatCategories(), "c")
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, "Engines", path[0].Name)
	assert.Equal(t, "Outboard", path[1].Name)
	assert.Equal(t, "Four Stroke", path[2].Name)
}

func TestPath_Root(t *testing.T) {
	path, err := Path(flatCategories(), "a")
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, "Engines", path[0].Name)
}

func TestPath_MissingID(t *testing.T) {
	_, err := Path(flatCategories(), "nope")
	assert.ErrorIs(t, err, ErrCategoryMissing)
}

func TestPath_MissingAncestorTruncates(t *testing.T) {
	cats := []Category{
		{ID: "b", Name: "Outboard", ParentID: strPtr("gone")},
	}
	path, err := Path(cats, "b")
	require.NoError(t, err)
	require.Len(t, path, 1)
}

func TestPath_CycleDetected(t *testing.T) {
	cats := []Category{
		{ID: "a", ParentID: strPtr("b")},
		{ID: "b", ParentID: strPtr("a")},
	}
	_, err := Path(cats, "a")
	assert.ErrorIs(t, err, ErrCycleDetected)
}
