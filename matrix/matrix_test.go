// Contract tests exercised over both variants: everything here must hold
// for ListMatrix and SetMatrix alike.

package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eisenhower/matrix"
	"github.com/katalvlaran/eisenhower/quadrant"
)

// variants enumerates fresh instances of both matrix kinds for contract
// tests.
var variants = []struct {
	name string
	make func() matrix.Matrix[string]
}{
	{"List", func() matrix.Matrix[string] { return matrix.NewList[string]() }},
	{"Set", func() matrix.Matrix[string] { return matrix.NewSet[string]() }},
}

// mustAdd inserts a task and fails the test on error or unchanged matrix.
func mustAdd(t *testing.T, m matrix.Matrix[string], task string, q quadrant.Quadrant) {
	t.Helper()
	changed, err := m.Add(task, q)
	require.NoError(t, err)
	require.True(t, changed, "Add(%q, %v)", task, q)
}

// TestMatrix_UnknownQuadrant verifies the quadrant guard on every
// quadrant-taking operation.
func TestMatrix_UnknownQuadrant(t *testing.T) {
	bad := quadrant.Quadrant(9)
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()

			_, err := m.Add("x", bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.AddAll(bad, []string{"x"})
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.AddIfAbsentInQuadrant("x", bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.AddIfAbsentInMatrix("x", bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.Tasks(bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.TasksSorted(bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.ContainsIn("x", bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.Remove("x", bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.RemoveOccurrences("x", bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.ClearQuadrant(bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)
			_, err = m.QuadrantSize(bad)
			assert.ErrorIs(t, err, matrix.ErrUnknownQuadrant)

			assert.Zero(t, m.Size(), "failed calls must not mutate")
		})
	}
}

// TestMatrix_NilArguments verifies the nil guards for slices, maps, and
// comparators.
func TestMatrix_NilArguments(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()

			_, err := m.AddAll(quadrant.DoItNow, nil)
			assert.ErrorIs(t, err, matrix.ErrNilTasks)

			_, err = m.AddAllFromMap(nil)
			assert.ErrorIs(t, err, matrix.ErrNilMap)

			_, err = m.TasksSortedFunc(quadrant.DoItNow, nil)
			assert.ErrorIs(t, err, matrix.ErrNilComparator)

			_, err = m.AllTasksSortedFunc(quadrant.ImportanceOverUrgency, nil)
			assert.ErrorIs(t, err, matrix.ErrNilComparator)

			_, err = m.AllTasksSortedBy(quadrant.ImportanceOverUrgency, nil)
			assert.ErrorIs(t, err, matrix.ErrNilMap)
		})
	}
}

// TestMatrix_AddAllFromMap covers the empty no-op, the completeness check,
// the nil-slice check, and a successful full-map insert.
func TestMatrix_AddAllFromMap(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()

			changed, err := m.AddAllFromMap(map[quadrant.Quadrant][]string{})
			require.NoError(t, err)
			assert.False(t, changed, "empty map is a guarded no-op")

			_, err = m.AddAllFromMap(map[quadrant.Quadrant][]string{
				quadrant.DoItNow: {"a"},
			})
			assert.ErrorIs(t, err, matrix.ErrMissingQuadrant)
			assert.Zero(t, m.Size(), "validation precedes mutation")

			_, err = m.AddAllFromMap(map[quadrant.Quadrant][]string{
				quadrant.DoItNow:              {"a"},
				quadrant.ScheduleIt:           nil,
				quadrant.DelegateOrOptimizeIt: {},
				quadrant.EliminateIt:          {},
			})
			assert.ErrorIs(t, err, matrix.ErrNilTasks)
			assert.Zero(t, m.Size())

			changed, err = m.AddAllFromMap(map[quadrant.Quadrant][]string{
				quadrant.DoItNow:              {"a"},
				quadrant.ScheduleIt:           {"b", "c"},
				quadrant.DelegateOrOptimizeIt: {},
				quadrant.EliminateIt:          {"d"},
			})
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, 4, m.Size())

			ok, err := m.ContainsIn("c", quadrant.ScheduleIt)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

// TestMatrix_ByFlags checks the flag-based insert and membership forms
// against Classify.
func TestMatrix_ByFlags(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()

			changed, err := m.AddByFlags("taxes", true, true)
			require.NoError(t, err)
			assert.True(t, changed)

			changed, err = m.AddAllByFlags(false, true, []string{"vacation"})
			require.NoError(t, err)
			assert.True(t, changed)

			ok, err := m.ContainsIn("taxes", quadrant.DoItNow)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, m.ContainsByFlags("vacation", false, true))
			assert.False(t, m.ContainsByFlags("vacation", true, true))
		})
	}
}

// TestMatrix_TwoLevelSort verifies per-quadrant sorting followed by
// policy-ordered concatenation, including empty quadrants.
func TestMatrix_TwoLevelSort(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()
			mustAdd(t, m, "B", quadrant.DoItNow)
			mustAdd(t, m, "A", quadrant.DoItNow)
			mustAdd(t, m, "C", quadrant.ScheduleIt)

			got, err := m.AllTasksSorted(quadrant.ImportanceOverUrgency)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, got)

			// DelegateOrOptimizeIt is empty: the urgency policy yields the
			// same flattening here.
			got, err = m.AllTasksSorted(quadrant.UrgencyOverImportance)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, got)

			// Stored order is untouched by sorted retrieval.
			tasks, err := m.Tasks(quadrant.DoItNow)
			require.NoError(t, err)
			assert.Equal(t, []string{"B", "A"}, tasks)
		})
	}
}

// TestMatrix_TwoLevelSort_PolicyOrder populates all four quadrants so the
// two policies produce different flattenings.
func TestMatrix_TwoLevelSort_PolicyOrder(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()
			mustAdd(t, m, "do", quadrant.DoItNow)
			mustAdd(t, m, "schedule", quadrant.ScheduleIt)
			mustAdd(t, m, "delegate", quadrant.DelegateOrOptimizeIt)
			mustAdd(t, m, "eliminate", quadrant.EliminateIt)

			byImportance, err := m.AllTasksSorted(quadrant.ImportanceOverUrgency)
			require.NoError(t, err)
			assert.Equal(t, []string{"do", "schedule", "delegate", "eliminate"}, byImportance)

			byUrgency, err := m.AllTasksSorted(quadrant.UrgencyOverImportance)
			require.NoError(t, err)
			assert.Equal(t, []string{"do", "delegate", "schedule", "eliminate"}, byUrgency)

			_, err = m.AllTasksSorted(quadrant.Ordering(3))
			assert.ErrorIs(t, err, quadrant.ErrUnknownOrdering)
		})
	}
}

// TestMatrix_AllTasksSortedBy covers the per-quadrant comparator map form
// and its completeness failure.
func TestMatrix_AllTasksSortedBy(t *testing.T) {
	asc := func(a, b string) int { return strings.Compare(a, b) }
	desc := func(a, b string) int { return strings.Compare(b, a) }

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()
			mustAdd(t, m, "a1", quadrant.DoItNow)
			mustAdd(t, m, "a2", quadrant.DoItNow)
			mustAdd(t, m, "b1", quadrant.ScheduleIt)
			mustAdd(t, m, "b2", quadrant.ScheduleIt)

			incomplete := map[quadrant.Quadrant]matrix.CompareFunc[string]{
				quadrant.DoItNow: asc,
			}
			_, err := m.AllTasksSortedBy(quadrant.ImportanceOverUrgency, incomplete)
			assert.ErrorIs(t, err, matrix.ErrMissingComparator)

			full := map[quadrant.Quadrant]matrix.CompareFunc[string]{
				quadrant.DoItNow:              asc,
				quadrant.ScheduleIt:           desc,
				quadrant.DelegateOrOptimizeIt: asc,
				quadrant.EliminateIt:          asc,
			}
			got, err := m.AllTasksSortedBy(quadrant.ImportanceOverUrgency, full)
			require.NoError(t, err)
			assert.Equal(t, []string{"a1", "a2", "b2", "b1"}, got,
				"DoItNow ascending, ScheduleIt descending")
		})
	}
}

// TestMatrix_SortStability verifies the tie-break rule of every sorted
// retrieval: distinct tasks that compare equal keep their insertion order.
func TestMatrix_SortStability(t *testing.T) {
	type entry struct {
		key  int
		name string
	}
	byKey := func(a, b entry) int { return a.key - b.key }

	// Interleaved keys: under byKey the 1-entries tie among themselves, as
	// do the 2-entries, so the sorted result is fixed only by stability.
	inserted := []entry{
		{2, "second-a"}, {1, "first-a"}, {2, "second-b"}, {1, "first-b"}, {1, "first-c"},
	}
	wantSorted := []entry{
		{1, "first-a"}, {1, "first-b"}, {1, "first-c"}, {2, "second-a"}, {2, "second-b"},
	}

	kinds := []struct {
		name string
		make func() (matrix.Matrix[entry], error)
	}{
		{"List", func() (matrix.Matrix[entry], error) { return matrix.NewListFunc(byKey) }},
		{"Set", func() (matrix.Matrix[entry], error) { return matrix.NewSetFunc(byKey) }},
	}
	for _, kind := range kinds {
		t.Run(kind.name, func(t *testing.T) {
			m, err := kind.make()
			require.NoError(t, err)
			for _, e := range inserted {
				changed, err := m.Add(e, quadrant.ScheduleIt)
				require.NoError(t, err)
				require.True(t, changed)
			}

			sorted, err := m.TasksSorted(quadrant.ScheduleIt)
			require.NoError(t, err)
			assert.Equal(t, wantSorted, sorted)

			flat, err := m.AllTasksSorted(quadrant.ImportanceOverUrgency)
			require.NoError(t, err)
			assert.Equal(t, wantSorted, flat, "two-level sort shares the tie-break")
		})
	}
}

// TestMatrix_AllTasksCollapsesDuplicates checks the union view on both
// variants (a real collapse only on the list kind).
func TestMatrix_AllTasksCollapsesDuplicates(t *testing.T) {
	list := matrix.NewList[string]()
	mustAdd(t, list, "x", quadrant.DoItNow)
	mustAdd(t, list, "x", quadrant.DoItNow)
	mustAdd(t, list, "x", quadrant.EliminateIt)
	mustAdd(t, list, "y", quadrant.ScheduleIt)
	assert.Equal(t, []string{"x", "y"}, list.AllTasks())

	set := matrix.NewSet[string]()
	mustAdd(t, set, "x", quadrant.DoItNow)
	mustAdd(t, set, "y", quadrant.ScheduleIt)
	assert.Equal(t, []string{"x", "y"}, set.AllTasks())
}

// TestMatrix_ClearCopyOnWrite verifies the copy-on-clear invariant: the
// original is untouched and the copy shares no bucket state.
func TestMatrix_ClearCopyOnWrite(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m1 := v.make()
			mustAdd(t, m1, "keep", quadrant.DoItNow)
			mustAdd(t, m1, "drop", quadrant.EliminateIt)

			m2, err := m1.ClearQuadrant(quadrant.EliminateIt)
			require.NoError(t, err)

			ok, err := m1.ContainsIn("drop", quadrant.EliminateIt)
			require.NoError(t, err)
			assert.True(t, ok, "original untouched")

			size, err := m2.QuadrantSize(quadrant.EliminateIt)
			require.NoError(t, err)
			assert.Zero(t, size)
			assert.False(t, m1.Equal(m2))

			// Mutating the copy must not leak into the original.
			mustAdd(t, m2, "fresh", quadrant.DoItNow)
			assert.False(t, m1.Contains("fresh"))

			m3 := m1.ClearAll()
			assert.Zero(t, m3.Size())
			assert.Equal(t, 2, m1.Size())

			m4 := m1.ClearUseless()
			size, err = m4.QuadrantSize(quadrant.EliminateIt)
			require.NoError(t, err)
			assert.Zero(t, size)
			assert.True(t, m4.Contains("keep"))
		})
	}
}

// TestMatrix_CloneIndependence verifies Clone copies content and decouples
// storage.
func TestMatrix_CloneIndependence(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()
			mustAdd(t, m, "a", quadrant.DoItNow)
			mustAdd(t, m, "b", quadrant.ScheduleIt)

			c := m.Clone()
			assert.True(t, m.Equal(c))

			mustAdd(t, c, "c", quadrant.EliminateIt)
			assert.False(t, m.Contains("c"))
			assert.False(t, m.Equal(c))
		})
	}
}

// TestMatrix_ToMapAndToGrid verifies the exported views carry all buckets
// and are deep copies.
func TestMatrix_ToMapAndToGrid(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()
			mustAdd(t, m, "q1", quadrant.DoItNow)
			mustAdd(t, m, "q2", quadrant.ScheduleIt)
			mustAdd(t, m, "q3", quadrant.DelegateOrOptimizeIt)
			mustAdd(t, m, "q4", quadrant.EliminateIt)

			byQuadrant := m.ToMap()
			require.Len(t, byQuadrant, quadrant.Count)
			assert.Equal(t, []string{"q2"}, byQuadrant[quadrant.ScheduleIt])

			byQuadrant[quadrant.ScheduleIt][0] = "mutated"
			ok, err := m.ContainsIn("q2", quadrant.ScheduleIt)
			require.NoError(t, err)
			assert.True(t, ok, "ToMap must be a deep copy")

			grid := m.ToGrid()
			// Row 0 urgent, col 0 important.
			assert.Equal(t, []string{"q1"}, grid[0][0])
			assert.Equal(t, []string{"q2"}, grid[1][0])
			assert.Equal(t, []string{"q3"}, grid[0][1])
			assert.Equal(t, []string{"q4"}, grid[1][1])

			grid[0][0][0] = "mutated"
			ok, err = m.ContainsIn("q1", quadrant.DoItNow)
			require.NoError(t, err)
			assert.True(t, ok, "ToGrid must be a deep copy")
		})
	}
}

// TestMatrix_TasksIsCopy verifies the unsorted view shares no storage.
func TestMatrix_TasksIsCopy(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()
			mustAdd(t, m, "a", quadrant.DoItNow)

			tasks, err := m.Tasks(quadrant.DoItNow)
			require.NoError(t, err)
			tasks[0] = "mutated"

			ok, err := m.ContainsIn("a", quadrant.DoItNow)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

// TestMatrix_RemoveEverywhere pins the chosen semantics: true iff at least
// one quadrant changed.
func TestMatrix_RemoveEverywhere(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			m := v.make()
			mustAdd(t, m, "solo", quadrant.ScheduleIt)

			assert.True(t, m.RemoveEverywhere("solo"), "one quadrant changed")
			assert.False(t, m.RemoveEverywhere("solo"), "nothing left to remove")
			assert.False(t, m.RemoveEverywhere("never-added"))
		})
	}
}

// TestMatrix_EqualAcrossKinds verifies Equal distinguishes variant kinds.
func TestMatrix_EqualAcrossKinds(t *testing.T) {
	list := matrix.NewList[string]()
	set := matrix.NewSet[string]()
	mustAdd(t, list, "a", quadrant.DoItNow)
	mustAdd(t, set, "a", quadrant.DoItNow)

	assert.False(t, list.Equal(set))
	assert.False(t, set.Equal(list))
}
