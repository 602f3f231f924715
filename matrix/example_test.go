package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/eisenhower/matrix"
	"github.com/katalvlaran/eisenhower/quadrant"
)

// ExampleSetMatrix demonstrates the classical workflow: classify a few
// tasks by urgency and importance, look one up, then flatten the matrix
// into a single priority list.
func ExampleSetMatrix() {
	m := matrix.NewSet[string]()

	_, _ = m.AddByFlags("Pay taxes", true, true)        // urgent & important
	_, _ = m.AddByFlags("Plan vacation", false, true)   // important only
	_, _ = m.AddByFlags("Answer newsletter", true, false)
	_, _ = m.AddByFlags("Sort old files", false, false)

	q, _ := m.QuadrantOf("Pay taxes")
	fmt.Println("Pay taxes:", q)

	flat, _ := m.AllTasksSorted(quadrant.ImportanceOverUrgency)
	for i, task := range flat {
		fmt.Printf("%d. %s\n", i+1, task)
	}

	// Output:
	// Pay taxes: DoItNow
	// 1. Pay taxes
	// 2. Plan vacation
	// 3. Answer newsletter
	// 4. Sort old files
}

// ExampleListMatrix_AllTasksSorted shows the two-level sort on the
// duplicate-permitting variant: tasks sort within each quadrant, then the
// quadrants concatenate in policy order.
func ExampleListMatrix_AllTasksSorted() {
	m := matrix.NewList[string]()

	_, _ = m.Add("fix build", quadrant.DoItNow)
	_, _ = m.Add("answer mail", quadrant.DoItNow)
	_, _ = m.Add("write design note", quadrant.ScheduleIt)
	_, _ = m.Add("expense report", quadrant.DelegateOrOptimizeIt)

	byImportance, _ := m.AllTasksSorted(quadrant.ImportanceOverUrgency)
	fmt.Println(byImportance)

	byUrgency, _ := m.AllTasksSorted(quadrant.UrgencyOverImportance)
	fmt.Println(byUrgency)

	// Output:
	// [answer mail fix build write design note expense report]
	// [answer mail fix build expense report write design note]
}

// ExampleMatrix_ClearQuadrant demonstrates the copy-on-clear contract:
// clearing yields an independent matrix and leaves the original intact.
func ExampleMatrix_ClearQuadrant() {
	m := matrix.NewList[string]()
	_, _ = m.Add("doomscrolling", quadrant.EliminateIt)
	_, _ = m.Add("ship release", quadrant.DoItNow)

	cleared, _ := m.ClearQuadrant(quadrant.EliminateIt)

	before, _ := m.QuadrantSize(quadrant.EliminateIt)
	after, _ := cleared.QuadrantSize(quadrant.EliminateIt)
	fmt.Println("original:", before, "cleared:", after)

	// Output:
	// original: 1 cleared: 0
}
