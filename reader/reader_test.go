package reader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func Test_ReadSPC(t *testing.T) {
	t.Run("TooShort", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "short.spc")
		if err := os.WriteFile(filename, make([]byte, 10), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := ReadSPC(filename); err == nil {
			t.Fatalf("Expected an error for a 10 byte file")
		}
	})

	t.Run("SkipsHeader", func(t *testing.T) {
		payload := []byte{0x8F, 0xAA, 0xF4, 0x6F}
		filename := filepath.Join(t.TempDir(), "dump.spc")
		if err := os.WriteFile(filename,
			append(make([]byte, headerSize), payload...), 0644); err != nil {
			t.Fatal(err)
		}

		ram, err := ReadSPC(filename)
		if err != nil {
			t.Fatalf("ReadSPC failed: %s", err)
		}
		if !bytes.Equal(ram, payload) {
			t.Errorf("Expected %d payload bytes. Got %d bytes",
				len(payload), len(ram))
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := ReadSPC("no-such-file.spc"); err == nil {
			t.Fatalf("Expected an error for a missing file")
		}
	})
}
