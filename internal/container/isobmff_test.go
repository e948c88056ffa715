package container

import (
	"bytes"
	"testing"
)

func TestParseBoxesRoundTrip(t *testing.T) {
	var buf []byte
	buf = WriteBox(buf, BoxTypeSignature, nil)
	buf = WriteBox(buf, BoxTypeFileType, []byte("jxl "))
	buf = WriteBox(buf, BoxTypeCodestream, []byte{0xFF, 0x0A, 1, 2, 3})

	boxes, err := ParseBoxes(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boxes) != 3 {
		t.Fatalf("expected 3 boxes, got %d", len(boxes))
	}
	if boxes[0].Type != BoxTypeSignature || boxes[1].Type != BoxTypeFileType || boxes[2].Type != BoxTypeCodestream {
		t.Fatalf("unexpected box types: %+v", boxes)
	}
	if !bytes.Equal(boxes[2].Payload, []byte{0xFF, 0x0A, 1, 2, 3}) {
		t.Fatalf("codestream payload mismatch: %v", boxes[2].Payload)
	}
}

// Signature, ftyp, jxlc boxes parse into a container whose Codestream is
// exactly the jxlc payload.
func TestParseFileSignatureFtypCodestream(t *testing.T) {
	codestream := []byte{0xFF, 0x0A, 0x01, 0x02, 0x03, 0x04}
	data := BuildFile(codestream, []byte("jxl "), nil)

	f, err := ParseFile(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(f.Codestream, codestream) {
		t.Fatalf("codestream mismatch: got %v, want %v", f.Codestream, codestream)
	}
	if len(f.Unknown) != 0 {
		t.Fatalf("expected no unknown boxes, got %d", len(f.Unknown))
	}
}

func TestParseFileMissingCodestream(t *testing.T) {
	var buf []byte
	buf = WriteBox(buf, BoxTypeSignature, nil)
	buf = WriteBox(buf, BoxTypeFileType, []byte("jxl "))
	if _, err := ParseFile(buf); err != ErrMissingCodestream {
		t.Fatalf("expected ErrMissingCodestream, got %v", err)
	}
}

func TestParseFileDuplicateCodestream(t *testing.T) {
	var buf []byte
	buf = WriteBox(buf, BoxTypeCodestream, []byte{1})
	buf = WriteBox(buf, BoxTypeCodestream, []byte{2})
	if _, err := ParseFile(buf); err != ErrDuplicateCodestream {
		t.Fatalf("expected ErrDuplicateCodestream, got %v", err)
	}
}

func TestParseFileWithMetadataAndFrameIndex(t *testing.T) {
	entries := []FrameIndexEntry{
		{FrameNumber: 0, ByteOffset: 100, Duration: 1000},
		{FrameNumber: 1, ByteOffset: 500, Duration: 1000},
	}
	f := &File{
		Exif:       []byte("exif-bytes"),
		XML:        []byte("<xml/>"),
		FrameIndex: entries,
	}
	data := BuildFile([]byte{0xFF, 0x0A}, []byte("jxl "), f)

	got, err := ParseFile(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got.Exif, f.Exif) {
		t.Fatalf("Exif mismatch")
	}
	if !bytes.Equal(got.XML, f.XML) {
		t.Fatalf("XML mismatch")
	}
	if len(got.FrameIndex) != 2 || got.FrameIndex[1].ByteOffset != 500 {
		t.Fatalf("frame index mismatch: %+v", got.FrameIndex)
	}
}

func TestParseBoxesTruncated(t *testing.T) {
	if _, err := ParseBoxes([]byte{0, 0, 0, 100, 'j', 'x', 'l', 'c'}); err != ErrTruncatedBox {
		t.Fatalf("expected ErrTruncatedBox, got %v", err)
	}
}

func TestParseBoxesInvalidSize(t *testing.T) {
	if _, err := ParseBoxes([]byte{0, 0, 0, 2, 'j', 'x', 'l', 'c'}); err != ErrInvalidBoxSize {
		t.Fatalf("expected ErrInvalidBoxSize, got %v", err)
	}
}

func TestFrameIndexRoundTrip(t *testing.T) {
	entries := []FrameIndexEntry{{FrameNumber: 7, ByteOffset: 1 << 40, Duration: 33}}
	payload := EncodeFrameIndex(entries)
	got, err := parseFrameIndex(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != entries[0] {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, entries)
	}
}

func TestFrameIndexTruncated(t *testing.T) {
	if _, err := parseFrameIndex([]byte{1, 2, 3}); err != ErrTruncatedFrameIndex {
		t.Fatalf("expected ErrTruncatedFrameIndex, got %v", err)
	}
}
