package form

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/codetracker/internal/client/client"
	"github.com/dmitrijs2005/codetracker/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/codetracker/internal/client/services"
	"github.com/stretchr/testify/require"
)

type countingPrefs struct {
	seen     bool
	reads    int
	writes   int
	readErr  error
	writeErr error
}

func (p *countingPrefs) NoticeSeen(context.Context) (bool, error) {
	p.reads++
	return p.seen, p.readErr
}

func (p *countingPrefs) DismissNotice(context.Context) error {
	p.writes++
	if p.writeErr != nil {
		return p.writeErr
	}
	p.seen = true
	return nil
}

func TestNotice_ShownOnFirstLoadThenNever(t *testing.T) {
	ctx := context.Background()
	prefs := &countingPrefs{}

	f, err := New(ctx, &fakeSubmitter{}, prefs, DefaultOptions())
	require.NoError(t, err)
	require.True(t, f.NoticeVisible())

	require.NoError(t, f.DismissNotice(ctx))
	require.False(t, f.NoticeVisible())
	require.NoError(t, f.DismissNotice(ctx))
	require.Equal(t, 1, prefs.reads)
	require.Equal(t, 1, prefs.writes, "flag is written once")

	f2, err := New(ctx, &fakeSubmitter{}, prefs, DefaultOptions())
	require.NoError(t, err)
	require.False(t, f2.NoticeVisible())
}

func TestNotice_PersistsAcrossReloadsInSQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "codes.db")

	open := func() (*Form, func()) {
		db, err := client.InitDatabase(ctx, dsn)
		require.NoError(t, err)
		f, err := New(ctx, &fakeSubmitter{}, services.NewPreferencesService(preferences.NewSQLiteRepository(db)), DefaultOptions())
		require.NoError(t, err)
		return f, func() { _ = db.Close() }
	}

	f, closeDB := open()
	require.True(t, f.NoticeVisible())
	require.NoError(t, f.DismissNotice(ctx))
	closeDB()

	f, closeDB = open()
	defer closeDB()
	require.False(t, f.NoticeVisible())
}

func TestNotice_ReadErrorShowsNotice(t *testing.T) {
	f, err := New(context.Background(), &fakeSubmitter{}, &countingPrefs{readErr: errors.New("io")}, DefaultOptions())
	require.Error(t, err)
	require.NotNil(t, f)
	require.True(t, f.NoticeVisible())
}

func TestNotice_WriteErrorStillHides(t *testing.T) {
	f, err := New(context.Background(), &fakeSubmitter{}, &countingPrefs{writeErr: errors.New("io")}, DefaultOptions())
	require.NoError(t, err)

	require.Error(t, f.DismissNotice(context.Background()))
	require.False(t, f.NoticeVisible())
}

func TestNew_NilSubmitter(t *testing.T) {
	_, err := New(context.Background(), nil, nil, DefaultOptions())
	require.Error(t, err)
}
