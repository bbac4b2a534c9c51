package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/codetracker/internal/client/client"
	"github.com/dmitrijs2005/codetracker/internal/client/repositories/preferences"
	"github.com/stretchr/testify/require"
)

func TestPreferences_NoticeFlagPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "codes.db")

	db, err := client.InitDatabase(ctx, dsn)
	require.NoError(t, err)

	p := NewPreferencesService(preferences.NewSQLiteRepository(db))
	seen, err := p.NoticeSeen(ctx)
	require.NoError(t, err)
	require.False(t, seen, "first load has no flag")

	require.NoError(t, p.DismissNotice(ctx))
	require.NoError(t, db.Close())

	db, err = client.InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p = NewPreferencesService(preferences.NewSQLiteRepository(db))
	seen, err = p.NoticeSeen(ctx)
	require.NoError(t, err)
	require.True(t, seen)
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk")
}
func (failingRepo) Set(context.Context, string, string) error { return errors.New("disk") }

type staticRepo map[string]string

func (r staticRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := r[key]
	return v, ok, nil
}
func (r staticRepo) Set(_ context.Context, key, value string) error {
	r[key] = value
	return nil
}

func TestPreferences_ErrorsWrapped(t *testing.T) {
	p := NewPreferencesService(failingRepo{})

	_, err := p.NoticeSeen(context.Background())
	require.ErrorContains(t, err, "read notice flag")

	err = p.DismissNotice(context.Background())
	require.ErrorContains(t, err, "save notice flag")
}

func TestPreferences_OnlyOneMeansSeen(t *testing.T) {
	seen, err := NewPreferencesService(staticRepo{NoticeSeenKey: "yes"}).NoticeSeen(context.Background())
	require.NoError(t, err)
	require.False(t, seen)

	repo := staticRepo{}
	require.NoError(t, NewPreferencesService(repo).DismissNotice(context.Background()))
	require.Equal(t, "1", repo[NoticeSeenKey])
}

func TestMemoryPreferences(t *testing.T) {
	m := &MemoryPreferences{}
	seen, _ := m.NoticeSeen(context.Background())
	require.False(t, seen)

	require.NoError(t, m.DismissNotice(context.Background()))
	seen, _ = m.NoticeSeen(context.Background())
	require.True(t, seen)
}
