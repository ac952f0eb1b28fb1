package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/inkwell/richtext"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "sub", "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleContent(t *testing.T) *richtext.Content {
	t.Helper()
	c, err := richtext.FromRaw(richtext.RawContent{Blocks: []richtext.RawBlock{
		{Key: "a", Type: richtext.HeaderOne, Text: "Title"},
		{Key: "b", Type: richtext.UnorderedListItem, Depth: 1, Text: "item",
			InlineStyleRanges: []richtext.RawStyleRange{{Offset: 0, Length: 2, Style: richtext.Bold}}},
	}})
	require.NoError(t, err)
	return c
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	require.NoError(t, s.Save(ctx, "notes", sampleContent(t)))
	got, err := s.Load(ctx, "notes")
	require.NoError(t, err)

	require.Equal(t, 2, got.BlockCount())
	b := got.Blocks()[1]
	require.Equal(t, richtext.UnorderedListItem, b.Type())
	require.Equal(t, 1, b.Depth())
	require.Equal(t, "item", b.Text())
	require.True(t, b.StyleAt(1).Has(richtext.Bold))
	require.False(t, b.StyleAt(2).Has(richtext.Bold))
}

func TestSave_Overwrites(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	require.NoError(t, s.Save(ctx, "n", richtext.ContentFromText("one")))
	require.NoError(t, s.Save(ctx, "n", richtext.ContentFromText("two")))
	got, err := s.Load(ctx, "n")
	require.NoError(t, err)
	require.Equal(t, "two", got.PlainText())

	drafts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
}

func TestSave_RejectsBlankName(t *testing.T) {
	s := openTest(t)
	err := s.Save(context.Background(), "  ", richtext.ContentFromText("x"))
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestLoad_NotFound(t *testing.T) {
	s := openTest(t)
	_, err := s.Load(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, name := range []string{"old", "mid", "new"} {
		require.NoError(t, s.Save(ctx, name, richtext.ContentFromText(name)))
	}
	drafts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	require.Equal(t, []string{"new", "mid", "old"}, []string{drafts[0].Name, drafts[1].Name, drafts[2].Name})
	require.True(t, drafts[0].UpdatedAt.Equal(base.Add(3*time.Minute)))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	require.NoError(t, s.Save(ctx, "gone", richtext.ContentFromText("x")))
	require.NoError(t, s.Delete(ctx, "gone"))
	_, err := s.Load(ctx, "gone")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, "gone"), ErrNotFound)
}
