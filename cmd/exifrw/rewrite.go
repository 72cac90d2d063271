package main

import (
	"errors"
	"os"

	log "github.com/dsoprea/go-logging"

	exif "github.com/soypat/exifrw"
	"github.com/soypat/exifrw/exifid"
)

var rewriteLogger = log.NewLogger("exifrw.rewrite")

type rewriteParameters struct {
	Output     string `short:"o" long:"output" required:"yes" description:"File to write"`
	StripGPS   bool   `long:"strip-gps" description:"Remove the GPS IFD"`
	Positional struct {
		File string `positional-arg-name:"FILE" required:"yes"`
	} `positional-args:"yes"`
}

func (p *rewriteParameters) Execute(args []string) (err error) {
	defer func() {
		if state := recover(); state != nil {
			err = log.Wrap(state)
		}
	}()

	data, err := readFile(p.Positional.File)
	log.PanicIf(err)
	md, warnings, err := exif.Decode(data)
	log.PanicIf(err)
	if md.MIME != exif.MIMEJPEG {
		log.Panic(errors.New("rewrite needs a JPEG file"))
	}
	for _, w := range warnings {
		rewriteLogger.Warningf(nil, "%s: %s", p.Positional.File, w)
	}
	if p.StripGPS {
		removed := stripGPS(md)
		rewriteLogger.Infof(nil, "removed %d GPS entries", removed)
	}
	out, err := reencode(data, md)
	log.PanicIf(err)
	err = os.WriteFile(p.Output, out, 0666)
	log.PanicIf(err)
	rewriteLogger.Debugf(nil, "wrote %d bytes to %s", len(out), p.Output)
	return nil
}

// stripGPS removes the GPS entries of md and the IFD0 pointer to them. It
// returns the number of entries removed.
func stripGPS(md *exif.Metadata) int {
	kept := md.Entries[:0]
	for _, e := range md.Entries {
		pointer := e.Group == exif.GroupIFD0 && e.Namespace == exif.NamespaceStandard && e.IFD.ID == exifid.GPSOffset
		if e.Group == exif.GroupGPS || pointer {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(md.Entries) - len(kept)
	md.Entries = kept
	return removed
}
