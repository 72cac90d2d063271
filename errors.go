package exif

import (
	"errors"
	"fmt"
)

// Errors returned by Decode and Serialize. Errors carrying detail wrap one
// of these and should be matched with errors.Is.
var (
	ErrFileTypeUnknown      = errors.New("file type unknown")
	ErrTiffTruncated        = errors.New("TIFF truncated at start")
	ErrTiffBadPreamble      = errors.New("TIFF with bad preamble")
	ErrIfdTruncated         = errors.New("TIFF IFD truncated")
	ErrExifIfdTruncated     = errors.New("TIFF Exif IFD truncated")
	ErrExifIfdEntryNotFound = errors.New("TIFF Exif IFD not found")
	ErrUnsupportedNamespace = errors.New("only the standard namespace can be serialized")
	ErrMissingExifOffset    = errors.New("sub-IFD entries present without an offset entry in IFD0")
	ErrThumbnailUnsupported = errors.New("IFD1 (thumbnail) serialization not implemented")
)

// IOError is returned by DecodeFile when the file could not be read.
type IOError struct {
	Name string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %q: %s", e.Name, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
