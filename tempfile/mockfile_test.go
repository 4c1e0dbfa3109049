package tempfile_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/lanrat/spool/tempfile"
)

func TestMockFileReadWriteSeek(t *testing.T) {
	f := tempfile.Mock(0)

	if _, err := f.Write([]byte("hello world")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello world" {
		t.Fatalf("read back %q", data)
	}

	// reading at the end returns EOF
	if _, err := f.Read(make([]byte, 1)); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	// overwrite in the middle
	if _, err := f.Seek(6, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte("spool")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(f.Bytes(), []byte("hello spool")) {
		t.Fatalf("contents are %q after overwrite", f.Bytes())
	}

	// writes past the end zero-fill the gap
	if _, err := f.Seek(2, io.SeekEnd); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte("!")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(f.Bytes(), []byte("hello spool\x00\x00!")) {
		t.Fatalf("contents are %q after a sparse write", f.Bytes())
	}
}

func TestMockFileSeekErrors(t *testing.T) {
	f := tempfile.Mock(0)
	if _, err := f.Seek(-1, io.SeekStart); err == nil {
		t.Fatal("negative seek position accepted")
	}
	if _, err := f.Seek(0, 42); err == nil {
		t.Fatal("invalid whence accepted")
	}
}

func TestMockFileClose(t *testing.T) {
	f := tempfile.Mock(0)
	if _, err := f.Write([]byte("data")); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if !f.Closed() {
		t.Fatal("Closed reports false after Close")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close returned %v", err)
	}
	if _, err := f.Write([]byte("x")); err == nil {
		t.Fatal("write on a closed mock file accepted")
	}
	if _, err := f.Read(make([]byte, 1)); err == nil {
		t.Fatal("read on a closed mock file accepted")
	}
}

func TestMockProviderRecordsFiles(t *testing.T) {
	provider := &tempfile.MockProvider{}
	for i := 0; i < 3; i++ {
		f, err := provider.Create()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}
	if len(provider.Files) != 3 {
		t.Fatalf("provider recorded %d files, expected 3", len(provider.Files))
	}
	for i, f := range provider.Files {
		if !bytes.Equal(f.Bytes(), []byte{byte(i)}) {
			t.Fatalf("file %d holds %v", i, f.Bytes())
		}
	}
}
