package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/roster"
)

func TestEngine_ParameterChangesRederive(t *testing.T) {
	e := NewEngine(sampleBase(), nil)
	require.Equal(t, 5, e.View().Len())

	assert.True(t, e.SetSearch("Konoha"))
	assert.False(t, e.SetSearch("Konoha"))
	assert.Equal(t, []string{"Naruto", "Sasuke", "RockLee"}, names(e.View()))

	e.ToggleHealth(roster.Healthy)
	assert.Equal(t, []string{"Naruto", "RockLee"}, names(e.View()))

	assert.Equal(t, SortAscending, e.CycleSort())
	assert.Equal(t, []string{"RockLee", "Naruto"}, names(e.View()))

	assert.Equal(t, SortDescending, e.CycleSort())
	assert.Equal(t, []string{"Naruto", "RockLee"}, names(e.View()))
	assert.Equal(t, SortNone, e.CycleSort())

	e.SetHealth(0)
	e.SetSearch("")
	assert.Equal(t, 5, e.View().Len())

	e.SetSort(SortDescending)
	first, _ := e.View().At(0)
	assert.Equal(t, "Naruto", first.Name)
}

func TestEngine_SelectionSurvivesFiltering(t *testing.T) {
	e := NewEngine(sampleBase(), nil)
	e.Toggle("3")
	e.SetSearch("Konoha")

	assert.Equal(t, 1, e.Selected())
	assert.Equal(t, 0, e.SelectedInView())
	assert.True(t, e.IsSelected("3"))

	e.ToggleAll()
	assert.Equal(t, 4, e.Selected())
	assert.Equal(t, 3, e.SelectedInView())
	assert.True(t, e.AllVisibleSelected())

	e.ToggleAll()
	assert.Equal(t, 0, e.Selected())
}

func TestEngine_MarkViewed(t *testing.T) {
	sink := &recordingSink{}
	e := NewEngine(sampleBase(), sink)
	e.Toggle("1")
	e.Toggle("2")

	assert.Equal(t, 2, e.MarkViewed(true))
	assert.Equal(t, []string{"1", "2"}, sink.ids)
	assert.Equal(t, 0, e.Selected())

	for _, c := range e.Collection() {
		assert.Equal(t, c.ID == "1" || c.ID == "2", c.Viewed, c.Name)
	}
	row, _ := e.View().At(0)
	assert.True(t, row.Viewed, "view reflects the new flags")

	e.Toggle("1")
	e.MarkViewed(false)
	assert.False(t, e.Collection()[0].Viewed)
	assert.False(t, sink.viewed)
}

func TestEngine_CopiesAreIndependent(t *testing.T) {
	base := sampleBase()
	e := NewEngine(base, nil)
	base[0].Name = "Changed"

	e.Toggle("1")
	p := e.Params()
	p.Selected["2"] = struct{}{}
	assert.Equal(t, 1, e.Selected())

	coll := e.Collection()
	coll[1].Name = "Changed"
	assert.Equal(t, "Naruto", e.Collection()[0].Name)
	assert.Equal(t, "Sasuke", e.Collection()[1].Name)
}

func TestEngine_EmptyCollection(t *testing.T) {
	e := NewEngine(nil, nil)
	assert.Equal(t, 0, e.Total())
	assert.True(t, e.View().Empty())
	assert.False(t, e.AllVisibleSelected())

	e.ToggleAll()
	assert.Equal(t, 0, e.Selected())
}
