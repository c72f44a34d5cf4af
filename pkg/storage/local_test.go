package storage_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shashiranjanraj/vyapari/pkg/storage"
)

func boot(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_LOCAL_ROOT", t.TempDir())
	t.Setenv("STORAGE_DISK", "local")
	storage.Connect()
}

func TestPutGetDelete(t *testing.T) {
	boot(t)

	if err := storage.Put("media/1/photo.jpg", []byte("fake-jpeg")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !storage.Exists("media/1/photo.jpg") {
		t.Fatal("file should exist after Put")
	}

	data, err := storage.Get("media/1/photo.jpg")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "fake-jpeg" {
		t.Errorf("Get = %q", data)
	}

	if err := storage.Delete("media/1/photo.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if storage.Exists("media/1/photo.jpg") {
		t.Error("file should be gone after Delete")
	}

	// Deleting a missing file is not an error.
	if err := storage.Delete("media/1/photo.jpg"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestPutStream(t *testing.T) {
	boot(t)

	if err := storage.PutStream("uploads/a.txt", bytes.NewReader([]byte("streamed"))); err != nil {
		t.Fatalf("PutStream: %v", err)
	}

	rc, err := storage.GetStream("uploads/a.txt")
	if err != nil {
		t.Fatalf("GetStream: %v", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		t.Fatalf("read: %v", err)
	}
	if buf.String() != "streamed" {
		t.Errorf("stream content = %q", buf.String())
	}
}

func TestURL(t *testing.T) {
	boot(t)

	url := storage.URL("media/1/photo.jpg")
	if !strings.HasSuffix(url, "/storage/media/1/photo.jpg") {
		t.Errorf("URL = %q", url)
	}
}

func TestUseUnknownDiskPanics(t *testing.T) {
	boot(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unconfigured disk")
		}
	}()
	storage.Use("tape")
}
