package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskUpload(t *testing.T) {
	dir := t.TempDir()
	d := NewDisk(dir, "http://localhost:8080")

	url, err := d.Upload(KindFoods, "pizza.jpg", []byte("fake-image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/foods/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	name := url[strings.LastIndexByte(url, '/')+1:]
	data, err := os.ReadFile(filepath.Join(dir, KindFoods, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-image-bytes"), data)
}

func TestDiskUploadNamesNeverCollide(t *testing.T) {
	d := NewDisk(t.TempDir(), "")

	u1, err := d.Upload(KindRiders, "me.png", []byte("a"))
	require.NoError(t, err)
	u2, err := d.Upload(KindRiders, "me.png", []byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, u1, u2)
}

func TestDiskUploadRejections(t *testing.T) {
	d := NewDisk(t.TempDir(), "")

	_, err := d.Upload("documents", "x.pdf", []byte("data"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = d.Upload(KindStores, "empty.png", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindStores))
	assert.True(t, ValidKind(KindFoods))
	assert.True(t, ValidKind(KindRiders))
	assert.False(t, ValidKind("users"))
	assert.False(t, ValidKind(""))
}
