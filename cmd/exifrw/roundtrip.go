package main

import (
	"bytes"
	"errors"
	"fmt"

	log "github.com/dsoprea/go-logging"
	"github.com/hashicorp/go-multierror"

	exif "github.com/soypat/exifrw"
	"github.com/soypat/exifrw/internal/app1"
)

var roundtripLogger = log.NewLogger("exifrw.roundtrip")

// errRoundTrip is returned when re-encoded metadata decodes to different entries.
var errRoundTrip = errors.New("metadata changed after re-encoding")

type roundtripParameters struct {
	Positional struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func (p *roundtripParameters) Execute(args []string) error {
	var result *multierror.Error
	for _, name := range p.Positional.Files {
		n, err := roundtripFile(name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			fmt.Fprintf(stdout, "%s: FAIL\n", name)
			continue
		}
		fmt.Fprintf(stdout, "%s: ok (%d entries)\n", name, n)
	}
	return result.ErrorOrNil()
}

// roundtripFile decodes name, re-encodes it in memory and compares the
// result with the original decode.
func roundtripFile(name string) (int, error) {
	data, err := readFile(name)
	if err != nil {
		return 0, err
	}
	md, _, err := exif.Decode(data)
	if err != nil {
		return 0, err
	}
	reencoded, err := reencode(data, md)
	if err != nil {
		return 0, err
	}
	md2, _, err := exif.Decode(reencoded)
	if err != nil {
		return 0, err
	}
	if !md.Equal(md2) {
		return 0, errRoundTrip
	}
	roundtripLogger.Debugf(nil, "%s: %d bytes re-encoded to %d", name, len(data), len(reencoded))
	return len(md.Entries), nil
}

// reencode serializes md. JPEG metadata is embedded in a copy of the
// original file.
func reencode(original []byte, md *exif.Metadata) ([]byte, error) {
	b, err := md.Serialize()
	if err != nil {
		return nil, err
	}
	if md.MIME != exif.MIMEJPEG {
		return b, nil
	}
	var out bytes.Buffer
	if err := app1.Replace(&out, bytes.NewReader(original), b); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
