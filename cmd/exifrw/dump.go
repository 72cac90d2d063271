package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	log "github.com/dsoprea/go-logging"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"

	exif "github.com/soypat/exifrw"
)

var dumpLogger = log.NewLogger("exifrw.dump")

type dumpParameters struct {
	Format     string `short:"f" long:"format" default:"text" choice:"text" choice:"yaml" description:"Output format"`
	Positional struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

type dumpEntry struct {
	Group    string `yaml:"group"`
	Tag      string `yaml:"tag"`
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Count    uint32 `yaml:"count"`
	Value    string `yaml:"value"`
	Readable string `yaml:"readable"`
	Unit     string `yaml:"unit,omitempty"`
}

type dumpFile struct {
	File     string      `yaml:"file"`
	MIME     string      `yaml:"mime"`
	Order    string      `yaml:"order"`
	Entries  []dumpEntry `yaml:"entries"`
	Warnings []string    `yaml:"warnings,omitempty"`
}

func (p *dumpParameters) Execute(args []string) error {
	var result *multierror.Error
	for _, name := range p.Positional.Files {
		md, warnings, err := exif.DecodeFile(name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			continue
		}
		for _, w := range warnings {
			dumpLogger.Warningf(nil, "%s: %s", name, w)
		}
		f := newDumpFile(name, md, warnings)
		switch p.Format {
		case "yaml":
			err = writeYAML(stdout, f)
		default:
			err = writeText(stdout, f)
		}
		if err != nil {
			return err
		}
	}
	return result.ErrorOrNil()
}

func newDumpFile(name string, md *exif.Metadata, warnings []string) dumpFile {
	f := dumpFile{File: name, MIME: md.MIME, Order: md.Order.String(), Warnings: warnings}
	for i := range md.Entries {
		e := &md.Entries[i]
		f.Entries = append(f.Entries, dumpEntry{
			Group:    e.Group.String(),
			Tag:      e.Tag.String(),
			ID:       fmt.Sprintf("0x%04x", uint16(e.IFD.ID)),
			Type:     e.IFD.Type.String(),
			Count:    e.IFD.Count,
			Value:    e.Value.String(),
			Readable: e.Readable,
			Unit:     e.Unit,
		})
	}
	return f
}

func writeYAML(w io.Writer, f dumpFile) error {
	b, err := yaml.Marshal([]dumpFile{f})
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func writeText(w io.Writer, f dumpFile) error {
	fmt.Fprintf(w, "%s (%s, %s)\n", f.File, f.MIME, f.Order)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range f.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s[%d]\t%s\n", e.Group, e.ID, e.Tag, e.Type, e.Count, e.Readable)
	}
	return tw.Flush()
}
