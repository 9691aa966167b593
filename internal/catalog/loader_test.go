package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const listingPage = `<html><body><pre>
<a href="../">../</a>
<a href="Nova%20-%20Drift.mp3">Nova - Drift.mp3</a>
<a href="Loner.mp3">Loner.mp3</a>
<a href="cover.jpg">cover.jpg</a>
<a href="Nova%20-%20Tides%20-%20Live.mp3">Nova - Tides - Live.mp3</a>
</pre></body></html>`

func TestLoader_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/songs/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, "songs", t.TempDir())
	c, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	require.Equal(t, Track{File: "Nova - Drift.mp3", Display: "Drift", Artist: "Nova"}, *c.Track(0))
	require.Equal(t, Track{File: "Loner.mp3", Display: "Loner", Artist: "Unknown Artist"}, *c.Track(1))
	require.Equal(t, Track{File: "Nova - Tides - Live.mp3", Display: "Tides - Live", Artist: "Nova"}, *c.Track(2))
}

func TestLoader_Load_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, "songs", t.TempDir())
	_, err := l.Load(context.Background())
	require.ErrorIs(t, err, ErrTransport)
}

func TestLoader_Load_Unreachable(t *testing.T) {
	l := NewLoader("http://127.0.0.1:1", "songs", t.TempDir())
	_, err := l.Load(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Errorf("err = %v, want ErrTransport", err)
	}
}

func TestLoader_Fetch_CachesFile(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	l := NewLoader(srv.URL, "songs", cacheDir)

	path, err := l.Fetch(context.Background(), "Nova - Drift.mp3")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cacheDir, "Nova - Drift.mp3"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "mp3-bytes", string(data))

	// Second fetch is served from cache.
	_, err = l.Fetch(context.Background(), "Nova - Drift.mp3")
	require.NoError(t, err)
	require.Equal(t, 1, hits)
}

func TestLoader_Fetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	l := NewLoader(srv.URL, "songs", t.TempDir())
	_, err := l.Fetch(context.Background(), "missing.mp3")
	require.Error(t, err)
}
