// Package crosscheck decodes a file with this module and with two
// independent EXIF decoders, rwcarlsen/goexif and dsoprea/go-exif, and
// reports where they disagree.
package crosscheck

import (
	"bytes"
	"fmt"
	"math"

	dsoprea "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	log "github.com/dsoprea/go-logging"
	"github.com/golang/geo/s2"
	"github.com/hashicorp/go-multierror"
	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	exif "github.com/soypat/exifrw"
	"github.com/soypat/exifrw/exifid"
)

var checkLogger = log.NewLogger("crosscheck")

// EarthRadius is the mean radius of the earth in meters.
const EarthRadius = 6371010.0

// GPSTolerance is the largest distance in meters two decoded positions may
// be apart and still agree.
const GPSTolerance = 1.0

// Report is the outcome of cross checking one file.
type Report struct {
	// Entries and Warnings come from decoding with this module.
	Entries  int
	Warnings []string
	// Compared counts entries found by each reference decoder, keyed by decoder name.
	Compared map[string]int
	// Unmatched lists entries a reference decoder did not return. This is
	// informational: reference decoders skip tags they do not know.
	Unmatched []string
	// GPSDistance is the distance in meters between the position decoded by
	// this module and goexif's, or NaN if either has no position.
	GPSDistance float64
	// Problems aggregates every disagreement found.
	Problems *multierror.Error
}

// Err returns the disagreements as a single error, or nil if there are none.
func (r *Report) Err() error {
	return r.Problems.ErrorOrNil()
}

// refTag is a record as decoded by a reference decoder.
type refTag struct {
	tp    uint16
	count uint32
	// val is nil when the decoder does not expose raw bytes.
	val []byte
}

// refKey identifies a record across decoders. GPS codes overlap with
// Interop codes so the group is part of the key.
type refKey struct {
	gps bool
	id  exif.ID
}

// Check decodes data with all decoders and compares the results.
// An error is returned only if this module fails to decode data.
func Check(data []byte) (report *Report, err error) {
	md, warnings, err := exif.Decode(data)
	if err != nil {
		return nil, err
	}
	report = &Report{
		Entries:     len(md.Entries),
		Warnings:    warnings,
		Compared:    make(map[string]int),
		GPSDistance: math.NaN(),
	}

	x, gxTags, err := decodeGoexif(data)
	if err != nil {
		report.Problems = multierror.Append(report.Problems, fmt.Errorf("goexif: %w", err))
	} else {
		report.compare("goexif", md, gxTags)
		report.compareGPS(md, x)
	}

	dsTags, err := decodeDsoprea(data)
	if err != nil {
		report.Problems = multierror.Append(report.Problems, fmt.Errorf("dsoprea: %w", err))
	} else {
		report.compare("dsoprea", md, dsTags)
	}
	checkLogger.Debugf(nil, "%d entries, %d unmatched, problems: %v", report.Entries, len(report.Unmatched), report.Err())
	return report, nil
}

// compare checks every standard entry of md against the records decoded by
// the reference decoder name.
func (r *Report) compare(name string, md *exif.Metadata, ref map[refKey]refTag) {
	r.Compared[name] = len(ref)
	for i := range md.Entries {
		e := &md.Entries[i]
		if e.Namespace != exif.NamespaceStandard {
			continue
		}
		got, ok := ref[refKey{gps: e.Group == exif.GroupGPS, id: e.IFD.ID}]
		if !ok {
			r.Unmatched = append(r.Unmatched, fmt.Sprintf("%s: %s %s (0x%04x)", name, e.Group, e.IFD.ID, uint16(e.IFD.ID)))
			continue
		}
		if err := compareRecord(e, got); err != nil {
			r.Problems = multierror.Append(r.Problems, fmt.Errorf("%s: %s %s: %w", name, e.Group, e.IFD.ID, err))
		}
	}
}

func compareRecord(e *exif.Entry, ref refTag) error {
	if ref.tp != uint16(e.IFD.Type) {
		return fmt.Errorf("type %d, want %d", ref.tp, e.IFD.Type)
	}
	if ref.count != e.IFD.Count {
		return fmt.Errorf("count %d, want %d", ref.count, e.IFD.Count)
	}
	if ref.val == nil || e.IFD.Length() > uint64(len(e.IFD.Data)) {
		return nil
	}
	if want := e.IFD.Data[:e.IFD.Length()]; !bytes.Equal(ref.val, want) {
		return fmt.Errorf("data %x, want %x", ref.val, want)
	}
	return nil
}

func (r *Report) compareGPS(md *exif.Metadata, x *goexif.Exif) {
	ours, ok := Position(md)
	if !ok {
		return
	}
	lat, long, err := x.LatLong()
	if err != nil {
		r.Problems = multierror.Append(r.Problems, fmt.Errorf("goexif: no GPS position: %w", err))
		return
	}
	theirs := s2.LatLngFromDegrees(lat, long)
	r.GPSDistance = ours.Distance(theirs).Radians() * EarthRadius
	if r.GPSDistance > GPSTolerance {
		r.Problems = multierror.Append(r.Problems, fmt.Errorf("goexif: GPS position %v is %.1f m from %v", theirs, r.GPSDistance, ours))
	}
}

// Position returns the GPS position recorded in md.
func Position(md *exif.Metadata) (s2.LatLng, bool) {
	lat, ok := coordinate(md, exifid.GPSLatitude, exifid.GPSLatitudeRef, "S")
	if !ok {
		return s2.LatLng{}, false
	}
	long, ok := coordinate(md, exifid.GPSLongitude, exifid.GPSLongitudeRef, "W")
	if !ok {
		return s2.LatLng{}, false
	}
	return s2.LatLngFromDegrees(lat, long), true
}

// coordinate converts a degrees, minutes, seconds entry to signed degrees.
func coordinate(md *exif.Metadata, id, refID exif.ID, negative string) (float64, bool) {
	e, ok := md.Get(id.Tag())
	if !ok {
		return 0, false
	}
	dms, ok := e.Value.(exif.URationals)
	if !ok || len(dms) < 3 {
		return 0, false
	}
	deg := dms[0].Value() + dms[1].Value()/60 + dms[2].Value()/3600
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, false
	}
	if ref, ok := md.Get(refID.Tag()); ok {
		if s, ok := ref.Value.(exif.ASCII); ok && string(s) == negative {
			deg = -deg
		}
	}
	return deg, true
}

type goexifWalker map[refKey]refTag

func (w goexifWalker) Walk(name goexif.FieldName, tag *tiff.Tag) error {
	key := refKey{gps: isGPSField(name), id: exif.ID(tag.Id)}
	w[key] = refTag{tp: uint16(tag.Type), count: tag.Count, val: tag.Val}
	return nil
}

func isGPSField(name goexif.FieldName) bool {
	return len(name) > 3 && name[:3] == "GPS" && name != goexif.GPSInfoIFDPointer
}

func decodeGoexif(data []byte) (*goexif.Exif, map[refKey]refTag, error) {
	x, err := goexif.Decode(bytes.NewReader(data))
	if x == nil || (err != nil && goexif.IsCriticalError(err)) {
		return nil, nil, err
	}
	if err != nil {
		checkLogger.Warningf(nil, "goexif: %v", err)
	}
	tags := make(goexifWalker)
	if err := x.Walk(tags); err != nil {
		return nil, nil, err
	}
	return x, tags, nil
}

func decodeDsoprea(data []byte) (tags map[refKey]refTag, err error) {
	defer func() {
		if state := recover(); state != nil {
			err = log.Wrap(state)
		}
	}()
	rawExif, err := dsoprea.SearchAndExtractExif(data)
	log.PanicIf(err)
	mapping, err := exifcommon.NewIfdMappingWithStandard()
	log.PanicIf(err)
	ti := dsoprea.NewTagIndex()
	_, index, err := dsoprea.Collect(mapping, ti, rawExif)
	log.PanicIf(err)

	tags = make(map[refKey]refTag)
	err = index.RootIfd.EnumerateTagsRecursively(func(ifd *dsoprea.Ifd, ite *dsoprea.IfdTagEntry) error {
		path := ite.IfdPath()
		if path != exifcommon.IfdStandardIfdIdentity.UnindexedString() &&
			path != exifcommon.IfdExifStandardIfdIdentity.UnindexedString() &&
			path != exifcommon.IfdGpsInfoStandardIfdIdentity.UnindexedString() {
			return nil
		}
		key := refKey{gps: path == exifcommon.IfdGpsInfoStandardIfdIdentity.UnindexedString(), id: exif.ID(ite.TagId())}
		if _, seen := tags[key]; seen {
			// IFD1 shares its path with IFD0 and is visited later.
			return nil
		}
		tags[key] = refTag{tp: uint16(ite.TagType()), count: ite.UnitCount()}
		return nil
	})
	log.PanicIf(err)
	return tags, nil
}
