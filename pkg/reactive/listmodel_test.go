package reactive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type task struct {
	Name     string
	Priority int
	Done     bool
}

func taskName(t task) string { return t.Name }

func names(xs []task) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.Name
	}
	return out
}

func TestListModel_AddReplacesByKey(t *testing.T) {
	m := NewListModel(taskName,
		task{Name: "breakfast", Priority: 8, Done: true},
		task{Name: "lunch", Priority: 6},
		task{Name: "breakfast", Priority: 9},
	)
	require.Equal(t, 2, m.Len())
	got, ok := m.TryFindByKey("breakfast")
	require.True(t, ok)
	assert.Equal(t, 9, got.Priority, "a later duplicate wins in place")

	before := m.Items()
	m.Add(task{Name: "dinner", Priority: 3})
	m.Add(task{Name: "lunch", Priority: 1})

	if diff := cmp.Diff([]string{"breakfast", "lunch", "dinner"}, names(m.Items())); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	lunch, _ := m.TryFindByKey("lunch")
	assert.Equal(t, 1, lunch.Priority)
	assert.Equal(t, []string{"breakfast", "lunch"}, names(before), "earlier reads are not mutated")
	assert.Equal(t, 6, before[1].Priority)
}

func TestListModel_Remove(t *testing.T) {
	st, s := newScheduler()
	m := NewListModel(taskName, task{Name: "a"}, task{Name: "b", Done: true}, task{Name: "c", Done: true})
	got := record(s, m.LengthView())
	st.RunPending()

	m.RemoveByKey("a")
	st.RunPending()
	m.RemoveByKey("missing")
	st.RunPending()
	m.RemoveBy(func(x task) bool { return x.Done })
	st.RunPending()
	m.RemoveBy(func(x task) bool { return x.Done })
	st.RunPending()

	assert.Equal(t, []int{3, 2, 0}, *got, "no-op removals do not notify")
	assert.False(t, m.ContainsKey("b"))

	m.Add(task{Name: "d"})
	m.Remove(task{Name: "d", Priority: 99})
	assert.Equal(t, 0, m.Len())
}

func TestListModel_UpdateBy(t *testing.T) {
	st, s := newScheduler()
	m := NewListModel(taskName, task{Name: "a"}, task{Name: "b"})
	got := record(s, m.FindByKeyView("b"))
	st.RunPending()

	m.UpdateBy("b", func(x task) (task, bool) {
		x.Done = true
		return x, true
	})
	m.UpdateBy("b", func(x task) (task, bool) { return x, false })
	m.UpdateBy("zzz", func(x task) (task, bool) { return x, true })
	st.RunPending()

	require.Len(t, *got, 2)
	assert.False(t, (*got)[0].Value.Done)
	assert.True(t, (*got)[1].Value.Done)
	assert.True(t, (*got)[1].OK)

	m.UpdateAll(func(x task) (task, bool) {
		x.Priority = 5
		return x, true
	})
	for _, x := range m.Items() {
		assert.Equal(t, 5, x.Priority)
	}

	m.RemoveByKey("b")
	st.RunPending()
	assert.False(t, (*got)[len(*got)-1].OK)
}

func TestListModel_Lens(t *testing.T) {
	m := NewListModel(taskName, task{Name: "a", Priority: 1}, task{Name: "b", Priority: 2})
	p := Lens(m.Lens("b"), func(x task) int { return x.Priority }, func(x task, n int) task {
		x.Priority = n
		return x
	})
	assert.Equal(t, 2, p.Get())
	p.Set(7)
	b, _ := m.TryFindByKey("b")
	assert.Equal(t, 7, b.Priority)

	missing := m.Lens("nope")
	assert.Equal(t, task{}, missing.Get())
	missing.Set(task{Name: "nope"})
	assert.Equal(t, 2, m.Len())
}

func TestListModel_SetAndClear(t *testing.T) {
	m := NewListModel[string, task](taskName)
	assert.Equal(t, 0, m.Len())
	m.Set([]task{{Name: "x"}, {Name: "y"}, {Name: "x", Priority: 4}})
	assert.Equal(t, []string{"x", "y"}, names(m.Items()))
	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "q", m.Key(task{Name: "q"}))
}
