package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	dbStore, err := OpenDBStore(filepath.Join(dir, "state.db"))
	require.NoError(t, err)

	return map[string]Store{
		"mem":  NewMemStore(),
		"file": OpenFileStore(filepath.Join(dir, "state.json")),
		"db":   dbStore,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			s.Set("auth_token", "abc")
			var tok string
			require.True(t, s.Get("auth_token", &tok))
			require.Equal(t, "abc", tok)

			type user struct {
				ID   uint   `json:"id"`
				Name string `json:"name"`
			}
			s.Set("user_data", user{ID: 7, Name: "A B"})
			var u user
			require.True(t, s.Get("user_data", &u))
			require.Equal(t, user{ID: 7, Name: "A B"}, u)

			s.Set("cart_count", 3)
			var n int
			require.True(t, s.Get("cart_count", &n))
			require.Equal(t, 3, n)
		})
	}
}

func TestGetMissingIsAbsent(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			var v string
			require.False(t, s.Get("never_set", &v))
		})
	}
}

func TestSetUnserializableKeepsPriorValue(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			s.Set("k", "prior")
			s.Set("k", make(chan int))

			var v string
			require.True(t, s.Get("k", &v))
			require.Equal(t, "prior", v)
		})
	}
}

func TestCorruptValueReadsAsAbsent(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			s.Set("k", "a string")
			// Wrong target type makes the stored bytes unreadable.
			var n int
			require.False(t, s.Get("k", &n))
		})
	}
}

func TestRemoveAndClear(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			s.Set("a", 1)
			s.Set("b", 2)

			s.Remove("a")
			var v int
			require.False(t, s.Get("a", &v))
			require.True(t, s.Get("b", &v))

			s.Remove("a") // no-op on a missing key

			s.Clear()
			require.False(t, s.Get("b", &v))
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := OpenFileStore(path)
	s.Set("auth_token", "persisted")

	reopened := OpenFileStore(path)
	var tok string
	require.True(t, reopened.Get("auth_token", &tok))
	require.Equal(t, "persisted", tok)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := OpenFileStore(path)
	var v string
	require.False(t, s.Get("auth_token", &v))

	// And it is writable again after the bad load.
	s.Set("auth_token", "fresh")
	require.True(t, s.Get("auth_token", &v))
	require.Equal(t, "fresh", v)
}

func TestTokenHelper(t *testing.T) {
	s := NewMemStore()
	require.Equal(t, "", Token(s))

	s.Set(KeyAuthToken, "tok-1")
	require.Equal(t, "tok-1", Token(s))

	s.Clear()
	require.Equal(t, "", Token(s))
}
