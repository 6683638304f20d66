package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/recite/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "recite.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSaveAndGetPassage(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	id, err := st.SavePassage(ctx, model.Passage{Name: "intro", Body: "Hello world. Testing now!", SentenceCount: 2})
	require.NoError(t, err)
	assert.NotZero(t, id)

	p, err := st.GetPassage(ctx, "intro")
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Hello world. Testing now!", p.Body)
	assert.Equal(t, 2, p.SentenceCount)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestSavePassageReplacesBody(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return first }

	id1, err := st.SavePassage(ctx, model.Passage{Name: "poem", Body: "One.", SentenceCount: 1})
	require.NoError(t, err)

	st.now = func() time.Time { return first.Add(time.Hour) }
	id2, err := st.SavePassage(ctx, model.Passage{Name: "poem", Body: "One. Two.", SentenceCount: 2})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	p, err := st.GetPassage(ctx, "poem")
	require.NoError(t, err)
	assert.Equal(t, "One. Two.", p.Body)
	assert.Equal(t, first, p.CreatedAt)
	assert.Equal(t, first.Add(time.Hour), p.UpdatedAt)
}

func TestSavePassageRequiresName(t *testing.T) {
	st := openTestStore(t)
	_, err := st.SavePassage(context.Background(), model.Passage{Name: "  ", Body: "x."})
	assert.Error(t, err)
}

func TestListPassagesOrderedByName(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := st.SavePassage(ctx, model.Passage{Name: name, Body: name + ".", SentenceCount: 1})
		require.NoError(t, err)
	}
	passages, err := st.ListPassages(ctx)
	require.NoError(t, err)
	require.Len(t, passages, 3)
	assert.Equal(t, "alpha", passages[0].Name)
	assert.Equal(t, "mid", passages[1].Name)
	assert.Equal(t, "zeta", passages[2].Name)
}

func TestDeletePassage(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	_, err := st.SavePassage(ctx, model.Passage{Name: "gone", Body: "Bye.", SentenceCount: 1})
	require.NoError(t, err)

	require.NoError(t, st.DeletePassage(ctx, "gone"))
	_, err = st.GetPassage(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.DeletePassage(ctx, "gone"), ErrNotFound)
}
