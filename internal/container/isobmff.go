package container

import "encoding/binary"

// Box is one parsed ISOBMFF box: a 4-byte big-endian size (including the
// 8-byte header), a 4-byte ASCII type, and its payload.
type Box struct {
	Type    string
	Payload []byte
}

// FrameIndexEntry is one 16-byte entry of a jxli frame-index box.
type FrameIndexEntry struct {
	FrameNumber uint32
	ByteOffset  uint64
	Duration    uint32
}

// File is the parsed result of a complete ISOBMFF-wrapped JPEG XL file:
// the bare codestream plus any sibling metadata and index boxes.
type File struct {
	Codestream []byte
	FrameIndex []FrameIndexEntry
	Level      []byte
	Exif       []byte
	XML        []byte
	ColorProfile []byte
	Unknown    []Box
}

// ParseBoxes splits data into a sequence of top-level boxes.
func ParseBoxes(data []byte) ([]Box, error) {
	var boxes []Box
	for len(data) > 0 {
		if len(data) < BoxHeaderSize {
			return nil, ErrTruncatedBox
		}
		size := binary.BigEndian.Uint32(data[0:4])
		typ := string(data[4:8])
		if size < BoxHeaderSize {
			return nil, ErrInvalidBoxSize
		}
		if int(size) > len(data) {
			return nil, ErrTruncatedBox
		}
		payload := data[BoxHeaderSize:size]
		boxes = append(boxes, Box{Type: typ, Payload: append([]byte(nil), payload...)})
		data = data[size:]
	}
	return boxes, nil
}

// WriteBox appends one box (header + payload) to buf and returns the
// result.
func WriteBox(buf []byte, typ string, payload []byte) []byte {
	size := uint32(BoxHeaderSize + len(payload))
	var hdr [BoxHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], size)
	copy(hdr[4:8], []byte(typ))
	buf = append(buf, hdr[:]...)
	buf = append(buf, payload...)
	return buf
}

// ParseFile interprets a sequence of boxes as a complete JPEG XL
// container, requiring exactly one jxlc box and collecting recognised
// metadata boxes. Unrecognised box types are kept verbatim in Unknown.
func ParseFile(data []byte) (*File, error) {
	boxes, err := ParseBoxes(data)
	if err != nil {
		return nil, err
	}

	f := &File{}
	haveCodestream := false
	for _, b := range boxes {
		switch b.Type {
		case BoxTypeSignature, BoxTypeFileType:
			// Framing-only boxes; no payload is retained.
		case BoxTypeCodestream:
			if haveCodestream {
				return nil, ErrDuplicateCodestream
			}
			f.Codestream = b.Payload
			haveCodestream = true
		case BoxTypeExif:
			f.Exif = b.Payload
		case BoxTypeXML:
			f.XML = b.Payload
		case BoxTypeColorProfile:
			f.ColorProfile = b.Payload
		case BoxTypeFrameIndex:
			entries, err := parseFrameIndex(b.Payload)
			if err != nil {
				return nil, err
			}
			f.FrameIndex = entries
		case BoxTypeLevel:
			f.Level = b.Payload
		default:
			f.Unknown = append(f.Unknown, b)
		}
	}

	if !haveCodestream {
		return nil, ErrMissingCodestream
	}
	return f, nil
}

// parseFrameIndex decodes a jxli payload into its fixed-size entries.
func parseFrameIndex(payload []byte) ([]FrameIndexEntry, error) {
	if len(payload)%FrameIndexEntrySize != 0 {
		return nil, ErrTruncatedFrameIndex
	}
	n := len(payload) / FrameIndexEntrySize
	entries := make([]FrameIndexEntry, n)
	for i := 0; i < n; i++ {
		e := payload[i*FrameIndexEntrySize : (i+1)*FrameIndexEntrySize]
		entries[i] = FrameIndexEntry{
			FrameNumber: binary.BigEndian.Uint32(e[0:4]),
			ByteOffset:  binary.BigEndian.Uint64(e[4:12]),
			Duration:    binary.BigEndian.Uint32(e[12:16]),
		}
	}
	return entries, nil
}

// EncodeFrameIndex serialises entries into a jxli box payload.
func EncodeFrameIndex(entries []FrameIndexEntry) []byte {
	out := make([]byte, len(entries)*FrameIndexEntrySize)
	for i, e := range entries {
		b := out[i*FrameIndexEntrySize : (i+1)*FrameIndexEntrySize]
		binary.BigEndian.PutUint32(b[0:4], e.FrameNumber)
		binary.BigEndian.PutUint64(b[4:12], e.ByteOffset)
		binary.BigEndian.PutUint32(b[12:16], e.Duration)
	}
	return out
}

// BuildFile serialises a minimal well-formed container: signature, ftyp,
// and a single jxlc box carrying codestream. Metadata boxes are appended
// afterward in a fixed, stable order when present.
func BuildFile(codestream []byte, ftypPayload []byte, f *File) []byte {
	var out []byte
	out = WriteBox(out, BoxTypeSignature, nil)
	out = WriteBox(out, BoxTypeFileType, ftypPayload)
	out = WriteBox(out, BoxTypeCodestream, codestream)
	if f == nil {
		return out
	}
	if len(f.ColorProfile) > 0 {
		out = WriteBox(out, BoxTypeColorProfile, f.ColorProfile)
	}
	if len(f.Exif) > 0 {
		out = WriteBox(out, BoxTypeExif, f.Exif)
	}
	if len(f.XML) > 0 {
		out = WriteBox(out, BoxTypeXML, f.XML)
	}
	if len(f.FrameIndex) > 0 {
		out = WriteBox(out, BoxTypeFrameIndex, EncodeFrameIndex(f.FrameIndex))
	}
	if len(f.Level) > 0 {
		out = WriteBox(out, BoxTypeLevel, f.Level)
	}
	return out
}
