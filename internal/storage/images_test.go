package storage

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadRequest(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["image"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestSaveValidImage(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fh := uploadRequest(t, "pic.png", pngBytes(t))

	rel, err := store.Save(fh)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(rel, "posts/") || !strings.HasSuffix(rel, ".png") {
		t.Errorf("unexpected stored path %q", rel)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), filepath.FromSlash(rel))); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestSaveRejectsNonImage(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fh := uploadRequest(t, "notes.txt", []byte("definitely not pixels"))

	if _, err := store.Save(fh); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("Save error = %v, want ErrInvalidImage", err)
	}
}
