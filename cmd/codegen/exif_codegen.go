// Command codegen writes the exifid package: one named constant per code in
// the exif tag dictionary.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	log "github.com/dsoprea/go-logging"
	exif "github.com/soypat/exifrw"
)

var codegenLogger = log.NewLogger("codegen")

func main() {
	output := flag.String("o", "exifid/exifid.go", "output file")
	flag.Parse()
	defer func() {
		if state := recover(); state != nil {
			err := log.Wrap(state)
			fmt.Fprintln(os.Stderr, "codegen:", err)
			os.Exit(1)
		}
	}()

	tags := make(tagPs, 0, len(exif.KnownIDs()))
	for _, id := range exif.KnownIDs() {
		tags = append(tags, tagName{Name: id.String(), ID: uint16(id)})
	}
	src, err := genExifid(tags)
	log.PanicIf(err)

	err = os.MkdirAll(filepath.Dir(*output), 0777)
	log.PanicIf(err)
	err = os.WriteFile(*output, src, 0666)
	log.PanicIf(err)
	codegenLogger.Infof(nil, "wrote %d tag IDs to %s", len(tags), *output)
}

type tagName struct {
	Name string
	ID   uint16
}

func genExifid(tags tagPs) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`// Code generated by cmd/codegen. DO NOT EDIT.

// Package exifid names the tag codes known to the exif package.
package exifid

import exif "github.com/soypat/exifrw"

// All Exif field/tag IDs.
const (
`)
	// Sort for consistent results.
	sort.Sort(tags)
	written := make(map[string]struct{})
	maxLen := 0
	var uniq tagPs
	for _, tag := range tags {
		if _, ok := written[tag.Name]; ok {
			continue
		}
		uniq = append(uniq, tag)
		written[tag.Name] = struct{}{}
		if len(tag.Name) > maxLen {
			maxLen = len(tag.Name)
		}
	}
	fmtString := "\t%-" + strconv.Itoa(maxLen) + "s exif.ID = 0x%04x\n"
	for _, tag := range uniq {
		fmt.Fprintf(&buf, fmtString, tag.Name, tag.ID)
	}
	buf.WriteString(")\n")
	return format.Source(buf.Bytes())
}

type tagPs []tagName

func (a tagPs) Len() int           { return len(a) }
func (a tagPs) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a tagPs) Less(i, j int) bool { return a[i].ID < a[j].ID }
