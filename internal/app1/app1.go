// Package app1 rewrites the Exif APP1 segment of JPEG files.
package app1

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	log "github.com/dsoprea/go-logging"
	jseg "github.com/garyhouston/jpegsegs"
)

var app1Logger = log.NewLogger("app1")

// APP1 is the marker of the segment carrying EXIF data.
const APP1 = jseg.APP0 + 1

var exifHeader = []byte("Exif\x00\x00")

// ErrNotExif is returned for payloads not starting with the Exif header.
var ErrNotExif = errors.New("app1: payload lacks Exif header")

// IsExif reports whether segment data is an Exif APP1 payload.
func IsExif(marker jseg.Marker, data []byte) bool {
	return marker == APP1 && bytes.HasPrefix(data, exifHeader)
}

// Replace copies the JPEG stream r to w with its Exif APP1 segments
// replaced by a single segment holding payload. The new segment takes the
// place of the first Exif segment or, if there is none, follows the leading
// APP0 segments. Image data after the start of scan is copied unchanged.
func Replace(w io.Writer, r io.Reader, payload []byte) (err error) {
	defer func() {
		// jpegsegs panics on segment lengths below 2.
		if state := recover(); state != nil {
			err = log.Wrap(state)
		}
	}()
	if !bytes.HasPrefix(payload, exifHeader) {
		return ErrNotExif
	}
	br := bufio.NewReader(r)
	segments, rerr := jseg.ReadSegments(br)
	if rerr != nil {
		return fmt.Errorf("app1: reading segments: %w", rerr)
	}
	hasExif := false
	for _, seg := range segments {
		hasExif = hasExif || IsExif(seg.Marker, seg.Data)
	}
	out := make([]jseg.Segment, 0, len(segments)+1)
	written := false
	for _, seg := range segments {
		switch {
		case IsExif(seg.Marker, seg.Data):
			if written {
				app1Logger.Debugf(nil, "dropping extra Exif segment of %d bytes", len(seg.Data))
				continue
			}
			seg.Data = payload
			written = true
		case !hasExif && !written && seg.Marker != jseg.APP0:
			out = append(out, jseg.Segment{Marker: APP1, Data: payload})
			written = true
		}
		out = append(out, seg)
	}
	bw := bufio.NewWriter(w)
	if err := jseg.WriteSegments(bw, out); err != nil {
		return fmt.Errorf("app1: writing segments: %w", err)
	}
	if _, err := io.Copy(bw, br); err != nil {
		return fmt.Errorf("app1: copying image data: %w", err)
	}
	return bw.Flush()
}
