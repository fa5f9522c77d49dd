package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionKeepsInsertionOrder(t *testing.T) {
	var c Collection[SectionID, Section]
	c.Set("b", Section{ID: "b", Name: "Beta"})
	c.Set("a", Section{ID: "a", Name: "Alpha"})
	c.Set("c", Section{ID: "c", Name: "Gamma"})

	assert.Equal(t, []SectionID{"b", "a", "c"}, c.Keys())
	assert.Equal(t, 3, c.Len())

	// overwriting keeps its slot
	c.Set("b", Section{ID: "b", Name: "Beta 2"})
	assert.Equal(t, []SectionID{"b", "a", "c"}, c.Keys())
	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "Beta 2", got.Name)
}

func TestCollectionDelete(t *testing.T) {
	var c Collection[StudentID, Student]
	c.Set("1", Student{ID: "1"})
	c.Set("2", Student{ID: "2"})
	c.Set("3", Student{ID: "3"})

	assert.True(t, c.Delete("2"))
	assert.False(t, c.Delete("2"))
	assert.False(t, c.Has("2"))
	assert.Equal(t, []StudentID{"1", "3"}, c.Keys())

	values := c.Values()
	require.Len(t, values, 2)
	assert.Equal(t, StudentID("3"), values[1].ID)
}

func TestCollectionZeroValue(t *testing.T) {
	var c Collection[OfferingID, Offering]
	_, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, c.Values())
	assert.False(t, c.Any(func(Offering) bool { return true }))
}

func TestSnapshotCloneIsIndependent(t *testing.T) {
	snap := NewSnapshot()
	snap.Sections.Set("s1", Section{ID: "s1", Name: "A"})
	snap.Catalog.Set("c1", CatalogEntry{ID: "c1", Code: "MAT101", Name: "Calculus"})

	clone := snap.Clone()
	clone.Sections.Set("s1", Section{ID: "s1", Name: "changed"})
	clone.Sections.Set("s2", Section{ID: "s2", Name: "B"})
	clone.Catalog.Delete("c1")

	orig, _ := snap.Sections.Get("s1")
	assert.Equal(t, "A", orig.Name)
	assert.Equal(t, 1, snap.Sections.Len())
	assert.True(t, snap.Catalog.Has("c1"))
	assert.False(t, snap.IsEmpty())
	assert.True(t, NewSnapshot().IsEmpty())
}
