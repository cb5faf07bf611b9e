package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dylanshade/style-organizer/internal/models"
)

func styles(names ...string) []models.Style {
	out := make([]models.Style, len(names))
	for i, n := range names {
		out[i] = models.Style{Name: n, Prompt: "p-" + n, NegativePrompt: "n-" + n}
	}
	return out
}

func names(rows []models.Style) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestLoadReplacesContents(t *testing.T) {
	s := New()
	s.Load(styles("a", "b"))
	s.Load(styles("c"))
	require.Equal(t, []string{"c"}, names(s.Rows()))
}

func TestLoadCopiesInput(t *testing.T) {
	rows := styles("a")
	s := New()
	s.Load(rows)
	rows[0].Name = "mutated"

	got, ok := s.At(0)
	require.True(t, ok)
	require.Equal(t, "a", got.Name)
}

func TestInsert(t *testing.T) {
	x := models.Style{Name: "x"}

	tests := []struct {
		name    string
		pos     Position
		want    []string
		wantIdx int
	}{
		{name: "append", pos: AppendPosition(), want: []string{"a", "b", "c", "x"}, wantIdx: 3},
		{name: "above first", pos: AbovePosition(0), want: []string{"x", "a", "b", "c"}, wantIdx: 0},
		{name: "above middle", pos: AbovePosition(1), want: []string{"a", "x", "b", "c"}, wantIdx: 1},
		{name: "below middle", pos: BelowPosition(1), want: []string{"a", "b", "x", "c"}, wantIdx: 2},
		{name: "below last", pos: BelowPosition(2), want: []string{"a", "b", "c", "x"}, wantIdx: 3},
		{name: "no anchor above", pos: Position{Placement: Above, Anchor: NoAnchor}, want: []string{"a", "b", "c", "x"}, wantIdx: 3},
		{name: "anchor out of range", pos: BelowPosition(9), want: []string{"a", "b", "c", "x"}, wantIdx: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Load(styles("a", "b", "c"))
			idx := s.Insert(x, tt.pos)
			require.Equal(t, tt.wantIdx, idx)
			require.Equal(t, tt.want, names(s.Rows()))
		})
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	s := New()
	require.Equal(t, 0, s.Insert(models.Separator(), AbovePosition(0)))
	require.Equal(t, []models.Style{models.Separator()}, s.Rows())
}

func TestRemove(t *testing.T) {
	s := New()
	s.Load(styles("a", "b", "c"))

	require.False(t, s.Remove(-1))
	require.False(t, s.Remove(3))
	require.Equal(t, 3, s.Len())

	require.True(t, s.Remove(1))
	require.Equal(t, []string{"a", "c"}, names(s.Rows()))
}

func TestUpdateKeepsPosition(t *testing.T) {
	s := New()
	s.Load(styles("a", "b", "c"))

	require.True(t, s.Update(1, models.Style{Name: "B", Prompt: "new"}))
	require.Equal(t, []string{"a", "B", "c"}, names(s.Rows()))
	require.False(t, s.Update(5, models.Style{}))
}

// Every move of i to j must leave the moved record at j and keep the
// relative order of all other records.
func TestReorderPreservesRelativeOrder(t *testing.T) {
	base := styles("a", "b", "c", "d", "e")

	for from := range base {
		for to := range base {
			t.Run(fmt.Sprintf("%d_to_%d", from, to), func(t *testing.T) {
				s := New()
				s.Load(base)
				require.True(t, s.Reorder(from, to))

				got := s.Rows()
				require.Len(t, got, len(base))
				require.Equal(t, base[from], got[to])
				require.ElementsMatch(t, base, got)

				var rest, wantRest []models.Style
				for i, r := range got {
					if i != to {
						rest = append(rest, r)
					}
				}
				for i, r := range base {
					if i != from {
						wantRest = append(wantRest, r)
					}
				}
				require.Equal(t, wantRest, rest)
			})
		}
	}
}

func TestReorderRejectsInvalidIndexes(t *testing.T) {
	s := New()
	s.Load(styles("a", "b"))
	require.False(t, s.Reorder(0, 2))
	require.False(t, s.Reorder(-1, 0))
	require.Equal(t, []string{"a", "b"}, names(s.Rows()))
}
