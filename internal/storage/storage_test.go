package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartHeader(t *testing.T, fieldName, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[fieldName][0]
}

func TestUploadAndDelete(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	header := multipartHeader(t, "photo", "me.jpg", []byte("fake-jpeg-bytes"))

	name, err := store.Upload("members", header)
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.Equal(t, ".jpg", filepath.Ext(name))

	path := filepath.Join(store.baseDir, "members", name)
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, store.Delete("members", name))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	header := multipartHeader(t, "photo", "notes.txt", []byte("hello"))

	_, err := store.Upload("members", header)
	assert.Equal(t, ErrUnsupportedType, err)
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	assert.NoError(t, store.Delete("members", "gone.jpg"))
}

func TestDeleteRejectsPathTraversal(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	assert.Error(t, store.Delete("members", "../escape.jpg"))
}
