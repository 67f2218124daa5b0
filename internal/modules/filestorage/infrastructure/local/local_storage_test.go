package local

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage_EndToEnd(t *testing.T) {
	base := t.TempDir()
	ls, err := NewLocalStorage(base, "http://localhost:3000/uploads/")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, ls.PutObject(ctx, "Home/Hero-Banner.png", bytes.NewBufferString("one"), "image/png"))
	require.NoError(t, ls.PutObject(ctx, "Home/Footer.png", bytes.NewBufferString("two"), "image/png"))
	require.NoError(t, ls.PutObject(ctx, "Icons/Close.png", bytes.NewBufferString("three"), "image/png"))
	require.NoError(t, ls.PutObject(ctx, "readme.txt", bytes.NewBufferString("r"), "text/plain"))

	data, err := os.ReadFile(filepath.Join(base, "Home", "Hero-Banner.png"))
	require.NoError(t, err)
	require.Equal(t, "one", string(data))

	// overwrite
	require.NoError(t, ls.PutObject(ctx, "Home/Hero-Banner.png", bytes.NewBufferString("1"), "image/png"))
	data, err = os.ReadFile(filepath.Join(base, "Home", "Hero-Banner.png"))
	require.NoError(t, err)
	require.Equal(t, "1", string(data))

	listing, err := ls.ListObjects(ctx, "", "/")
	require.NoError(t, err)
	require.Equal(t, []string{"Home", "Icons"}, listing.Folders)
	require.Len(t, listing.Objects, 1)
	require.Equal(t, "readme.txt", listing.Objects[0].Key)

	flat, err := ls.ListObjects(ctx, "", "")
	require.NoError(t, err)
	require.Empty(t, flat.Folders)
	keys := make([]string, 0, len(flat.Objects))
	for _, o := range flat.Objects {
		keys = append(keys, o.Key)
	}
	require.Equal(t, []string{"Home/Footer.png", "Home/Hero-Banner.png", "Icons/Close.png", "readme.txt"}, keys)

	home, err := ls.ListObjects(ctx, "Home/", "/")
	require.NoError(t, err)
	require.Empty(t, home.Folders)
	require.Len(t, home.Objects, 2)

	require.Equal(t, "http://localhost:3000/uploads/Home/Footer.png", ls.PublicURL("Home/Footer.png"))
	require.Equal(t, "http://localhost:3000/uploads/Page%201/a%23b.png", ls.PublicURL("Page 1/a#b.png"))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	err = ls.PutObject(context.Background(), "../outside.png", bytes.NewBufferString("x"), "image/png")
	require.Error(t, err)

	err = ls.PutObject(context.Background(), "", bytes.NewBufferString("x"), "image/png")
	require.Error(t, err)
}
