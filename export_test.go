package exif

import "encoding/binary"

// SampleJPEG returns a JPEG file carrying IFD0, Exif and GPS directories.
func SampleJPEG() []byte { return jpegWithTIFF(sampleTIFF(binary.LittleEndian)) }
