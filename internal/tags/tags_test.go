package tags

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// minimalMP3 returns one MPEG1 Layer3 frame (128kbps, 44100Hz, stereo).
func minimalMP3() []byte {
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	frame[3] = 0x00
	return frame
}

// createTestMP3 creates a minimal MP3 file with optional tags.
func createTestMP3(t *testing.T, dir string, tags *Tag) string {
	t.Helper()
	path := filepath.Join(dir, "test.mp3")
	if err := os.WriteFile(path, minimalMP3(), 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
	if tags != nil {
		if err := writeMP3Tags(path, tags); err != nil {
			t.Fatalf("failed to write MP3 tags: %v", err)
		}
	}
	return path
}

func TestFormatFromExt(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"song.mp3", FormatMP3},
		{"song.MP3", FormatMP3},
		{"song.m4a", FormatMP4},
		{"song.mp4", FormatMP4},
		{"https://cdn.example.com/a/b/123_320.mp4", FormatMP4},
		{"song.flac", FormatUnknown},
		{"song", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromExt(tt.path); got != tt.want {
				t.Errorf("FormatFromExt(%q) = %q, want %q", tt.path, got, tt.want)
			}
			if got := IsAudioFile(tt.path); got != (tt.want != FormatUnknown) {
				t.Errorf("IsAudioFile(%q) = %v", tt.path, got)
			}
		})
	}
}

func TestIdentify(t *testing.T) {
	ftyp := append([]byte{0, 0, 0, 0x20, 'f', 't', 'y', 'p', 'M', '4', 'A', ' '}, make([]byte, 64)...)
	isom := append([]byte{0, 0, 0, 0x20, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}, make([]byte, 64)...)
	id3 := append([]byte{'I', 'D', '3', 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, minimalMP3()...)

	tests := []struct {
		name    string
		data    []byte
		want    Format
		wantErr bool
	}{
		{"m4a brand", ftyp, FormatMP4, false},
		{"isom brand", isom, FormatMP4, false},
		{"id3 tagged mp3", id3, FormatMP3, false},
		{"raw mp3 frame", minimalMP3(), FormatMP3, false},
		{"text", bytes.Repeat([]byte("hello world "), 20), FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := Identify(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Identify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Identify() = %q, want %q", got, tt.want)
			}
			if pos, _ := r.Seek(0, io.SeekCurrent); pos != 0 {
				t.Errorf("read position = %d, want 0", pos)
			}
		})
	}
}

func TestIdentifyFile_ExtensionFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd.m4a")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x01}, 64), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := IdentifyFile(path)
	if err != nil {
		t.Fatalf("IdentifyFile() error: %v", err)
	}
	if got != FormatMP4 {
		t.Errorf("IdentifyFile() = %q, want MP4", got)
	}
}

func TestIdentifyFile_Missing(t *testing.T) {
	if _, err := IdentifyFile(filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteRead_MP3_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	want := &Tag{
		Title:  "Kesariya",
		Artist: "Arijit Singh",
		Album:  "Brahmastra",
		Genre:  "Soundtrack",
		Date:   "2022",
	}
	path := createTestMP3(t, dir, want)

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got.Title != want.Title {
		t.Errorf("Title = %q, want %q", got.Title, want.Title)
	}
	if got.Artist != want.Artist {
		t.Errorf("Artist = %q, want %q", got.Artist, want.Artist)
	}
	if got.Album != want.Album {
		t.Errorf("Album = %q, want %q", got.Album, want.Album)
	}
	if got.Path != path {
		t.Errorf("Path = %q, want %q", got.Path, path)
	}
}

func TestWrite_MP3_ReplacesExistingTags(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, &Tag{Title: "Old", Artist: "Old", Album: "Old"})

	if err := Write(path, &Tag{Title: "New", Artist: "New"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got.Title != "New" {
		t.Errorf("Title = %q, want New", got.Title)
	}
	if got.Album != "" {
		t.Errorf("Album = %q, want empty", got.Album)
	}
}

func TestWrite_MP3_ID3v22Handling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.mp3")

	// ID3v2.2 header with 10 bytes of padding, which id3v2 cannot open.
	header := []byte{
		'I', 'D', '3', 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0A,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	if err := os.WriteFile(path, append(header, minimalMP3()...), 0o600); err != nil {
		t.Fatalf("create file: %v", err)
	}

	if err := Write(path, &Tag{Title: "Test Title"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got.Title != "Test Title" {
		t.Errorf("Title = %q, want Test Title", got.Title)
	}
}

func TestWrite_NonexistentFile(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "missing.mp3"), &Tag{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, &Tag{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRead_TitleFallbackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, &Tag{Artist: "Someone"})

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got.Title != "test" {
		t.Errorf("Title = %q, want test", got.Title)
	}
}

func TestDetectMimeType(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0}

	if got := detectMimeType(png); got != mimePNG {
		t.Errorf("detectMimeType(png) = %q", got)
	}
	if got := detectMimeType(jpeg); got != mimeJPEG {
		t.Errorf("detectMimeType(jpeg) = %q", got)
	}
	if got := detectMimeType(nil); got != mimeJPEG {
		t.Errorf("detectMimeType(nil) = %q", got)
	}
}
