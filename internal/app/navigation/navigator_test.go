package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navkit/internal/app/errors"
)

// fixture returns home A and content nodes B, C, D
func fixture() (a, b, c, d *BasicNode) {
	return NewNode("A", "a.png"), NewNode("B", "b.png"), NewNode("C", "c.png"), NewNode("D", "d.png")
}

func titles(nodes []Node) []string {
	result := make([]string, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, n.Title())
	}

	return result
}

func Test_New(t *testing.T) {
	a, b, c, _ := fixture()

	t.Run("Without content", func(t *testing.T) {
		nav := New(a)

		assert.Equal(t, Node(a), nav.Home())
		assert.Equal(t, Node(a), nav.CurrentNode())
		assert.Empty(t, nav.Content())
		assert.Equal(t, -1, nav.CurrentNodeIndex())
	})

	t.Run("With content copies the slice", func(t *testing.T) {
		initial := []Node{b, c}
		nav := New(a, WithContent(initial))
		initial[0] = c

		assert.Equal(t, []string{"B", "C"}, titles(nav.Content()))
		assert.Equal(t, Node(a), nav.CurrentNode())
	})
}

func Test_Controller_Content_IsDefensiveCopy(t *testing.T) {
	a, b, c, _ := fixture()
	nav := New(a, WithContent([]Node{b, c}))

	content := nav.Content()
	content[0] = c

	assert.Equal(t, []string{"B", "C"}, titles(nav.Content()))
}

func Test_Controller_ContentAt(t *testing.T) {
	a, b, c, d := fixture()
	nav := New(a, WithContent([]Node{b, c, d}))

	for i, expected := range nav.Content() {
		node, err := nav.ContentAt(i)
		require.NoError(t, err)
		assert.Equal(t, expected, node)
	}

	for _, index := range []int{-1, 3, 100} {
		node, err := nav.ContentAt(index)
		assert.Nil(t, node)
		assert.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	}
}

func Test_Controller_SetHome(t *testing.T) {
	a, b, c, _ := fixture()
	nav := New(a, WithContent([]Node{b}))
	nav.Nav(b)

	nav.SetHome(c)

	assert.Equal(t, Node(c), nav.Home())
	assert.Equal(t, Node(b), nav.CurrentNode())
	assert.Equal(t, []string{"B"}, titles(nav.Content()))
}

func Test_Controller_InsertContent(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected []string
	}{
		{name: "Negative index inserts first", index: -5, expected: []string{"X", "B", "C", "D"}},
		{name: "Zero index inserts first", index: 0, expected: []string{"X", "B", "C", "D"}},
		{name: "Middle index", index: 1, expected: []string{"B", "X", "C", "D"}},
		{name: "Length index appends", index: 3, expected: []string{"B", "C", "D", "X"}},
		{name: "Oversized index appends once", index: 1000, expected: []string{"B", "C", "D", "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c, d := fixture()
			nav := New(a, WithContent([]Node{b, c, d}))

			nav.InsertContent(tt.index, NewNode("X", ""))

			assert.Equal(t, tt.expected, titles(nav.Content()))
		})
	}
}

func Test_Controller_InsertContent_ShiftsCurrentIndex(t *testing.T) {
	a, b, c, _ := fixture()
	nav := New(a, WithContent([]Node{b, c}))
	nav.Nav(c)

	nav.InsertContent(0, NewNode("X", ""))

	assert.Equal(t, Node(c), nav.CurrentNode())
	assert.Equal(t, 2, nav.CurrentNodeIndex())
}

func Test_Controller_AddContent(t *testing.T) {
	a, b, c, _ := fixture()
	nav := New(a, WithContent([]Node{b}))

	nav.AddContent(c)

	content := nav.Content()
	assert.Len(t, content, 2)
	assert.Equal(t, Node(c), content[len(content)-1])
}

func Test_Controller_AddAllContent(t *testing.T) {
	a, b, c, d := fixture()
	nav := New(a, WithContent([]Node{b}))

	nav.AddAllContent([]Node{d, c})

	assert.Equal(t, []string{"B", "D", "C"}, titles(nav.Content()))
}

func Test_Controller_Nav(t *testing.T) {
	a, b, c, d := fixture()
	nav := New(a, WithContent([]Node{b, c}))

	assert.True(t, nav.Nav(c))
	assert.Equal(t, Node(c), nav.CurrentNode())
	assert.Equal(t, 1, nav.CurrentNodeIndex())

	assert.False(t, nav.Nav(d))
	assert.Equal(t, Node(c), nav.CurrentNode())

	twin := NewNode("B", "b.png")
	assert.False(t, nav.Nav(twin), "equal attributes are not identity")
	assert.Equal(t, Node(c), nav.CurrentNode())
}

func Test_Controller_Nav_DuplicatesUseFirstOccurrence(t *testing.T) {
	a, b, c, _ := fixture()
	nav := New(a, WithContent([]Node{c, b, c}))

	require.True(t, nav.Nav(c))
	assert.Equal(t, 0, nav.CurrentNodeIndex())
}

func Test_Controller_NavIndex(t *testing.T) {
	tests := []struct {
		name        string
		homeInList  bool
		index       int
		expectedOK  bool
		expectedErr error
		expected    string
	}{
		{name: "First", index: 0, expectedOK: true, expected: "B"},
		{name: "Last", index: 2, expectedOK: true, expected: "D"},
		{name: "Home when absent is a no-op", index: -1, expectedOK: false, expected: "C"},
		{name: "Home when present", homeInList: true, index: -1, expectedOK: true, expected: "A"},
		{name: "Below -1", index: -2, expectedErr: errors.ErrIndexOutOfRange, expected: "C"},
		{name: "Past the end", index: 3, expectedErr: errors.ErrIndexOutOfRange, expected: "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c, d := fixture()
			nav := New(a, WithContent([]Node{b, c, d}))
			if tt.homeInList {
				nav.AddContent(a)
			}

			nav.Nav(c)

			ok, err := nav.NavIndex(tt.index)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, nav.CurrentNode().Title())
		})
	}
}

func Test_Controller_NavHome(t *testing.T) {
	t.Run("Strict policy with home outside content", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, c}))
		nav.Nav(b)

		assert.False(t, nav.NavHome())
		assert.Equal(t, Node(b), nav.CurrentNode())
	})

	t.Run("Strict policy with home in content", func(t *testing.T) {
		a, b, _, _ := fixture()
		nav := New(a, WithContent([]Node{a, b}))
		nav.Nav(b)

		assert.True(t, nav.NavHome())
		assert.Equal(t, Node(a), nav.CurrentNode())
		assert.Equal(t, 0, nav.CurrentNodeIndex())
	})

	t.Run("Implicit policy with home outside content", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, c}), WithHomePolicy(HomePolicyImplicit))
		nav.Nav(c)

		assert.True(t, nav.NavHome())
		assert.Equal(t, Node(a), nav.CurrentNode())
		assert.Equal(t, -1, nav.CurrentNodeIndex())
	})
}

func Test_Controller_NavNext_Cycle(t *testing.T) {
	a, b, c, d := fixture()
	nav := New(a, WithContent([]Node{b, c, d}))
	require.True(t, nav.Nav(b))

	expected := []string{"C", "D", "B"}
	for _, title := range expected {
		require.NoError(t, nav.NavNext())
		assert.Equal(t, title, nav.CurrentNode().Title())
	}
}

func Test_Controller_NavPrev_Wraps(t *testing.T) {
	a, b, c, d := fixture()
	nav := New(a, WithContent([]Node{b, c, d}))
	require.True(t, nav.Nav(b))

	require.NoError(t, nav.NavPrev())
	assert.Equal(t, Node(d), nav.CurrentNode())
	assert.Equal(t, 2, nav.CurrentNodeIndex())

	require.NoError(t, nav.NavPrev())
	assert.Equal(t, Node(c), nav.CurrentNode())
}

func Test_Controller_Step_FromOutsideContent(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		next     bool
		expected int
	}{
		{name: "Next lands on first", size: 3, next: true, expected: 0},
		{name: "Prev follows modular arithmetic", size: 3, next: false, expected: 1},
		{name: "Prev on single node", size: 1, next: false, expected: 0},
		{name: "Prev on two nodes", size: 2, next: false, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := NewNode("Home", "")
			nodes := make([]Node, 0, tt.size)
			for i := 0; i < tt.size; i++ {
				nodes = append(nodes, NewNode("N", ""))
			}

			nav := New(home, WithContent(nodes))
			require.Equal(t, -1, nav.CurrentNodeIndex())

			if tt.next {
				require.NoError(t, nav.NavNext())
			} else {
				require.NoError(t, nav.NavPrev())
			}

			assert.Equal(t, tt.expected, nav.CurrentNodeIndex())
		})
	}
}

func Test_Controller_Step_EmptyContent(t *testing.T) {
	a, _, _, _ := fixture()
	nav := New(a)

	assert.ErrorIs(t, nav.NavNext(), errors.ErrInvalidState)
	assert.ErrorIs(t, nav.NavPrev(), errors.ErrInvalidState)
	assert.Equal(t, Node(a), nav.CurrentNode())
}

func Test_Controller_RemoveContent(t *testing.T) {
	t.Run("Absent node", func(t *testing.T) {
		a, b, c, d := fixture()
		nav := New(a, WithContent([]Node{b, c}))
		nav.Nav(c)

		assert.False(t, nav.RemoveContent(d))
		assert.Equal(t, []string{"B", "C"}, titles(nav.Content()))
		assert.Equal(t, Node(c), nav.CurrentNode())
	})

	t.Run("Absent current node leaves current alone", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, c}))
		nav.Nav(b)
		require.True(t, nav.RemoveContent(b))
		require.Equal(t, Node(b), nav.CurrentNode())

		nav.AddContent(a)
		assert.False(t, nav.RemoveContent(b))
		assert.Equal(t, Node(b), nav.CurrentNode())
	})

	t.Run("Non-current node", func(t *testing.T) {
		a, b, c, d := fixture()
		nav := New(a, WithContent([]Node{b, c, d}))
		nav.Nav(d)

		assert.True(t, nav.RemoveContent(b))
		assert.Equal(t, []string{"C", "D"}, titles(nav.Content()))
		assert.Equal(t, Node(d), nav.CurrentNode())
		assert.Equal(t, 1, nav.CurrentNodeIndex())
	})

	t.Run("Current node with home in content", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{a, b, c}))
		nav.Nav(b)

		assert.True(t, nav.RemoveContent(b))
		assert.Equal(t, Node(a), nav.CurrentNode())
		assert.Equal(t, 0, nav.CurrentNodeIndex())
	})

	t.Run("Current node with home outside content", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, c}))
		nav.Nav(b)

		assert.True(t, nav.RemoveContent(b))
		assert.Equal(t, Node(b), nav.CurrentNode())
		assert.Equal(t, -1, nav.CurrentNodeIndex())
	})

	t.Run("Current node with implicit home", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, c}), WithHomePolicy(HomePolicyImplicit))
		nav.Nav(b)

		assert.True(t, nav.RemoveContent(b))
		assert.Equal(t, Node(a), nav.CurrentNode())
	})

	t.Run("Removes first occurrence only", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, c, b}))

		assert.True(t, nav.RemoveContent(b))
		assert.Equal(t, []string{"C", "B"}, titles(nav.Content()))
	})
}

func Test_Controller_RemoveContentAt(t *testing.T) {
	a, b, c, d := fixture()
	nav := New(a, WithContent([]Node{a, b, c, d}))
	nav.Nav(c)

	require.NoError(t, nav.RemoveContentAt(2))
	assert.Equal(t, []string{"A", "B", "D"}, titles(nav.Content()))
	assert.Equal(t, Node(a), nav.CurrentNode())

	for _, index := range []int{-1, 3} {
		err := nav.RemoveContentAt(index)
		assert.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	}

	assert.Len(t, nav.Content(), 3)
}

func Test_Controller_RemoveAllContent(t *testing.T) {
	t.Run("Home in content", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, a, c}))
		nav.Nav(b)

		nav.RemoveAllContent()

		assert.Empty(t, nav.Content())
		assert.Equal(t, Node(a), nav.CurrentNode())
	})

	t.Run("Home outside content", func(t *testing.T) {
		a, b, c, _ := fixture()
		nav := New(a, WithContent([]Node{b, c}))
		nav.Nav(c)

		nav.RemoveAllContent()

		assert.Empty(t, nav.Content())
		assert.Equal(t, Node(c), nav.CurrentNode())
		assert.Equal(t, -1, nav.CurrentNodeIndex())
	})

	t.Run("Duplicates", func(t *testing.T) {
		a, b, _, _ := fixture()
		nav := New(a, WithContent([]Node{b, b, b}))

		nav.RemoveAllContent()

		assert.Empty(t, nav.Content())
	})
}

func Test_Controller_Exit(t *testing.T) {
	t.Run("Without hook", func(t *testing.T) {
		a, _, _, _ := fixture()
		assert.NoError(t, New(a).Exit())
	})

	t.Run("Invokes hook and returns its error", func(t *testing.T) {
		a, _, _, _ := fixture()
		calls := 0
		hookErr := errors.New("shutdown refused")

		nav := New(a, WithShutdownHook(func() error {
			calls++
			return hookErr
		}))

		assert.ErrorIs(t, nav.Exit(), hookErr)
		assert.Equal(t, 1, calls)
		assert.Equal(t, Node(a), nav.CurrentNode())
	})
}

func Test_Controller_Scenario(t *testing.T) {
	a, b, c, d := fixture()
	nav := New(a, WithContent([]Node{b, c, d}))

	assert.Equal(t, Node(a), nav.CurrentNode())

	assert.True(t, nav.Nav(c))
	assert.Equal(t, 1, nav.CurrentNodeIndex())

	require.NoError(t, nav.NavNext())
	assert.Equal(t, Node(d), nav.CurrentNode())
	assert.Equal(t, 2, nav.CurrentNodeIndex())

	require.NoError(t, nav.NavNext())
	assert.Equal(t, Node(b), nav.CurrentNode())
	assert.Equal(t, 0, nav.CurrentNodeIndex())

	// home is not in content, so the redirect is a no-op and B stays current
	assert.True(t, nav.RemoveContent(b))
	assert.Equal(t, Node(b), nav.CurrentNode())
	assert.Equal(t, -1, nav.CurrentNodeIndex())
	assert.Equal(t, []string{"C", "D"}, titles(nav.Content()))

	require.NoError(t, nav.NavNext())
	assert.Equal(t, Node(c), nav.CurrentNode())
}

func Test_Controller_ImplementsNavigable(t *testing.T) {
	var _ Navigable = (*Controller)(nil)
}
