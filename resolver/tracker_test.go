package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerRegisterCountsMonotonically(t *testing.T) {
	tr := newComponentTracker()

	assert.Equal(t, 1, tr.register("Foo", "root.a"))
	assert.Equal(t, 2, tr.register("Foo", "root.b"))
	assert.Equal(t, 3, tr.register("Foo", "root.c"))
	assert.Equal(t, 1, tr.register("Bar", "root.d"))

	assert.Equal(t, 2, tr.uniqueComponents())
}

func TestTrackerFirstOccurrenceNeverOverwritten(t *testing.T) {
	tr := newComponentTracker()
	tr.register("Foo", "root.first")
	tr.register("Foo", "root.second")

	first, ok := tr.firstOccurrence("Foo")
	assert.True(t, ok)
	assert.Equal(t, "root.first", first)

	_, ok = tr.firstOccurrence("Unknown")
	assert.False(t, ok)
}

func TestTrackerRecordsAllPaths(t *testing.T) {
	tr := newComponentTracker()
	tr.register("Foo", "root.a")
	tr.register("Foo", "root.b")

	assert.Equal(t, []string{"root.a", "root.b"}, tr.pathsByName["Foo"])
}

func TestOwningComponentWalksOutward(t *testing.T) {
	tr := newComponentTracker()
	tr.register("Screen", "root")
	tr.register("Card", "root.properties.card")

	name, first, ok := tr.owningComponent("root.properties.card.content.items[0]")
	assert.True(t, ok)
	assert.Equal(t, "Card", name)
	assert.Equal(t, "root.properties.card", first)

	// Outside any component's first expansion it falls back to the root.
	name, first, ok = tr.owningComponent("root.properties.other")
	assert.True(t, ok)
	assert.Equal(t, "Screen", name)
	assert.Equal(t, "root", first)
}

func TestOwningComponentMayFindNothing(t *testing.T) {
	tr := newComponentTracker()
	tr.register("Card", "root.properties.card")

	_, _, ok := tr.owningComponent("root.properties.other")
	assert.False(t, ok, "best-effort lookup is allowed to return nothing")
}
