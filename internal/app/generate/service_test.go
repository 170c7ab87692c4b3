package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ether/internal/store"
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
	"github.com/alexisbeaulieu97/ether/internal/tokens/tokenstest"
	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

func newFileStore(t *testing.T) *store.FileStore {
	t.Helper()
	root := t.TempDir()
	return store.New(filepath.Join(root, "base"), filepath.Join(root, "generated"), nil)
}

func seed(t *testing.T, st *store.FileStore, names ...string) {
	t.Helper()
	for _, name := range names {
		tok := tokenstest.Palette()
		tok.Name = name
		tokenstest.WriteJSON(t, st.BaseDir, name, tok)
	}
}

func TestRunGeneratesEveryTheme(t *testing.T) {
	t.Parallel()

	st := newFileStore(t)
	seed(t, st, "eerie", "gray", "zinc")

	summary, err := NewService(st).Run(context.Background(), Request{})
	require.NoError(t, err)
	require.True(t, summary.OK())
	require.Equal(t, 3, summary.Total)
	require.Equal(t, 3, summary.Successful)
	require.Empty(t, summary.Failures)

	for i, name := range []string{"eerie", "gray", "zinc"} {
		require.Equal(t, name, summary.Outcomes[i].Name)
		require.Equal(t, StatusGenerated, summary.Outcomes[i].Status)
		require.FileExists(t, st.OutputPath(name))
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	t.Parallel()

	st := newFileStore(t)
	seed(t, st, "eerie", "zinc")

	broken := tokenstest.Palette()
	broken.Name = "Broken"
	tokenstest.Set(&broken, tokens.AccentPrimary, "not-a-color")
	tokenstest.WriteJSON(t, st.BaseDir, "broken", broken)

	summary, err := NewService(st).Run(context.Background(), Request{Parallel: 2})
	require.NoError(t, err)
	require.False(t, summary.OK())
	require.Equal(t, 3, summary.Total)
	require.Equal(t, 2, summary.Successful)
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, []string{"broken"}, summary.Failures)

	failed := summary.Outcomes[0]
	require.Equal(t, StatusFailed, failed.Status)
	require.Equal(t, []string{"Invalid color for accentPrimary: not-a-color"}, failed.Issues)

	var genErr *apperrors.GenerationError
	require.ErrorAs(t, failed.Err, &genErr)
	require.Equal(t, StageValidate, genErr.Stage)
	require.NoFileExists(t, st.OutputPath("broken"))
	require.FileExists(t, st.OutputPath("zinc"))
}

func TestRunUnknownThemeFails(t *testing.T) {
	t.Parallel()

	st := newFileStore(t)
	seed(t, st, "eerie")

	summary, err := NewService(st).Run(context.Background(), Request{Names: []string{"eerie", "nope", "eerie"}})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Total)
	require.Equal(t, []string{"nope"}, summary.Failures)
	require.ErrorIs(t, summary.Outcomes[1].Err, store.ErrNotFound)
}

func TestRunCleansOrphansAgainstFullListing(t *testing.T) {
	t.Parallel()

	st := newFileStore(t)
	seed(t, st, "eerie", "zinc")
	require.NoError(t, os.MkdirAll(st.OutputDir, 0o755))
	require.NoError(t, os.WriteFile(st.OutputPath("zinc"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(st.OutputPath("retired"), []byte("{}"), 0o644))

	summary, err := NewService(st).Run(context.Background(), Request{Names: []string{"eerie"}})
	require.NoError(t, err)
	require.Equal(t, []string{st.OutputPath("retired")}, summary.Removed)
	require.FileExists(t, st.OutputPath("zinc"))
	require.NoFileExists(t, st.OutputPath("retired"))
}

func TestRunCheckMode(t *testing.T) {
	t.Parallel()

	st := newFileStore(t)
	seed(t, st, "eerie")
	svc := NewService(st)
	ctx := context.Background()

	summary, err := svc.Run(ctx, Request{Check: true})
	require.NoError(t, err)
	require.Equal(t, StatusDrifted, summary.Outcomes[0].Status)
	require.Contains(t, summary.Outcomes[0].Diff, `+  "name": "eerie",`)
	require.NoFileExists(t, st.OutputPath("eerie"))

	_, err = svc.Run(ctx, Request{})
	require.NoError(t, err)

	summary, err = svc.Run(ctx, Request{Check: true})
	require.NoError(t, err)
	require.True(t, summary.OK())
	require.Equal(t, StatusUnchanged, summary.Outcomes[0].Status)
	require.Empty(t, summary.Outcomes[0].Diff)

	path := st.OutputPath("eerie")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(string(data), `"type": "dark"`, `"type": "light"`, 1)), 0o644))

	summary, err = svc.Run(ctx, Request{Check: true})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Drifted)
	require.Contains(t, summary.Outcomes[0].Diff, `-  "type": "light",`)
	require.Contains(t, summary.Outcomes[0].Diff, `+  "type": "dark",`)
}

func TestRunListFailure(t *testing.T) {
	t.Parallel()

	st := store.New(filepath.Join(t.TempDir(), "missing"), t.TempDir(), nil)
	_, err := NewService(st).Run(context.Background(), Request{})
	require.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	st := newFileStore(t)
	seed(t, st, "eerie")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(st).Run(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
}

// slowStore counts concurrent Loads to observe the parallel bound.
type slowStore struct {
	names   []string
	active  atomic.Int32
	peak    atomic.Int32
	mu      sync.Mutex
	written []string
}

func (s *slowStore) List(context.Context) ([]string, error) { return s.names, nil }

func (s *slowStore) Load(_ context.Context, name string) (tokens.BaseTokens, error) {
	n := s.active.Add(1)
	defer s.active.Add(-1)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	tok := tokenstest.Minimal()
	tok.Name = name
	return tok, nil
}

func (s *slowStore) Write(_ context.Context, name string, _ *theme.Theme) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, name)
	return name, nil
}

func (s *slowStore) ReadGenerated(context.Context, string) ([]byte, error) {
	return nil, store.ErrNotFound
}

func (s *slowStore) OutputPath(name string) string { return name }

func (s *slowStore) CleanupOrphans(context.Context, []string) ([]string, error) {
	return nil, errors.New("read-only")
}

func TestRunRespectsParallelLimit(t *testing.T) {
	t.Parallel()

	st := &slowStore{names: []string{"a", "b", "c", "d", "e", "f"}}
	summary, err := NewService(st).Run(context.Background(), Request{Parallel: 2})
	require.NoError(t, err)
	require.Equal(t, 6, summary.Successful)
	require.LessOrEqual(t, st.peak.Load(), int32(2))
	require.ElementsMatch(t, st.names, st.written)
}
