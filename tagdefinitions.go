package exif

import (
	"math"
	"sort"
)

// Tag codes the decoder and postprocessing refer to directly.
// The full list is exported by package exifid.
const (
	idXResolution              ID = 0x011a
	idYResolution              ID = 0x011b
	idResolutionUnit           ID = 0x0128
	idOrientation              ID = 0x0112
	idExifOffset               ID = 0x8769
	idGPSOffset                ID = 0x8825
	idFocalPlaneXResolution    ID = 0xa20e
	idFocalPlaneYResolution    ID = 0xa20f
	idFocalPlaneResolutionUnit ID = 0xa210
	idGPSLatitudeRef           ID = 0x0001
	idGPSLatitude              ID = 0x0002
	idGPSLongitudeRef          ID = 0x0003
	idGPSLongitude             ID = 0x0004
	idGPSAltitudeRef           ID = 0x0005
	idGPSAltitude              ID = 0x0006
	idGPSSpeedRef              ID = 0x000c
	idGPSSpeed                 ID = 0x000d
	idGPSDestLatitudeRef       ID = 0x0013
	idGPSDestLatitude          ID = 0x0014
	idGPSDestLongitudeRef      ID = 0x0015
	idGPSDestLongitude         ID = 0x0016
	idGPSDestDistanceRef       ID = 0x0019
	idGPSDestDistance          ID = 0x001a
)

type tagdef struct {
	Name        string
	Description string
	ID          ID
	Type        Type
	// count is the accepted [min, max] element count.
	count    [2]uint32
	Unit     string
	readable func(Value) (string, bool)
}

var (
	countAny = [2]uint32{0, math.MaxUint32}
	count1   = [2]uint32{1, 1}
)

func countN(n uint32) [2]uint32 { return [2]uint32{n, n} }

// tags is the standard namespace dictionary. Lookups are by code alone;
// IFD0, Exif and GPS codes do not overlap.
var tags = func() map[ID]tagdef {
	m := make(map[ID]tagdef, len(tagList))
	for _, def := range tagList {
		m[def.ID] = def
	}
	return m
}()

var tagList = []tagdef{
	// IFD0
	{Name: "ImageDescription", Description: "Image Description", ID: 0x010e, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "Make", Description: "Manufacturer", ID: 0x010f, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "Model", Description: "Model", ID: 0x0110, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "Orientation", Description: "Orientation", ID: idOrientation, Type: TypeUint16, count: count1, Unit: "none", readable: orientation},
	{Name: "XResolution", Description: "X Resolution", ID: idXResolution, Type: TypeURational64, count: count1, Unit: "pixels per res unit", readable: rationalValue},
	{Name: "YResolution", Description: "Y Resolution", ID: idYResolution, Type: TypeURational64, count: count1, Unit: "pixels per res unit", readable: rationalValue},
	{Name: "ResolutionUnit", Description: "Resolution Unit", ID: idResolutionUnit, Type: TypeUint16, count: count1, Unit: "none", readable: resolutionUnit},
	{Name: "Software", Description: "Software", ID: 0x0131, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "DateTime", Description: "Image date", ID: 0x0132, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "HostComputer", Description: "Host computer", ID: 0x013c, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "WhitePoint", Description: "White Point", ID: 0x013e, Type: TypeURational64, count: countN(2), Unit: "CIE 1931 coordinates", readable: rationalValues},
	{Name: "PrimaryChromaticities", Description: "Primary Chromaticities", ID: 0x013f, Type: TypeURational64, count: countN(6), Unit: "CIE 1931 coordinates", readable: rationalValues},
	{Name: "YCbCrCoefficients", Description: "YCbCr Coefficients", ID: 0x0211, Type: TypeURational64, count: countN(3), Unit: "none", readable: rationalValues},
	{Name: "ReferenceBlackWhite", Description: "Reference Black/White", ID: 0x0214, Type: TypeURational64, count: countN(6), Unit: "RGB or YCbCr", readable: rationalValues},
	{Name: "Copyright", Description: "Copyright", ID: 0x8298, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "ExifOffset", Description: "This image has an Exif SubIFD", ID: idExifOffset, Type: TypeUint32, count: count1, Unit: "byte offset", readable: strpass},
	{Name: "GPSOffset", Description: "This image has a GPS SubIFD", ID: idGPSOffset, Type: TypeUint32, count: count1, Unit: "byte offset", readable: strpass},

	// Exif IFD
	{Name: "ExposureTime", Description: "Exposure time", ID: 0x829a, Type: TypeURational64, count: count1, Unit: "s", readable: exposureTime},
	{Name: "FNumber", Description: "Aperture", ID: 0x829d, Type: TypeURational64, count: count1, Unit: "f-number", readable: fNumber},
	{Name: "ExposureProgram", Description: "Exposure program", ID: 0x8822, Type: TypeUint16, count: count1, Unit: "none", readable: exposureProgram},
	{Name: "SpectralSensitivity", Description: "Spectral sensitivity", ID: 0x8824, Type: TypeString, count: countAny, Unit: "ASTM string", readable: strpass},
	{Name: "ISOSpeedRatings", Description: "ISO speed ratings", ID: 0x8827, Type: TypeUint16, count: [2]uint32{1, 3}, Unit: "ISO", readable: isoSpeeds},
	{Name: "OECF", Description: "OECF", ID: 0x8828, Type: TypeUndefined, count: countAny, Unit: "none", readable: undefinedAsBlob},
	{Name: "SensitivityType", Description: "Sensitivity type", ID: 0x8830, Type: TypeUint16, count: count1, Unit: "none", readable: sensitivityType},
	{Name: "ExifVersion", Description: "Exif version", ID: 0x9000, Type: TypeUndefined, count: countN(4), Unit: "none", readable: undefinedAsASCII},
	{Name: "DateTimeOriginal", Description: "Date of original image", ID: 0x9003, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "DateTimeDigitized", Description: "Date of image digitalization", ID: 0x9004, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "ShutterSpeedValue", Description: "Shutter speed", ID: 0x9201, Type: TypeRational64, count: count1, Unit: "APEX", readable: apexTv},
	{Name: "ApertureValue", Description: "Aperture value", ID: 0x9202, Type: TypeURational64, count: count1, Unit: "APEX", readable: apexAv},
	{Name: "BrightnessValue", Description: "Brightness value", ID: 0x9203, Type: TypeRational64, count: count1, Unit: "APEX", readable: apexBrightness},
	{Name: "ExposureBiasValue", Description: "Exposure bias value", ID: 0x9204, Type: TypeRational64, count: count1, Unit: "APEX", readable: apexEV},
	{Name: "MaxApertureValue", Description: "Maximum aperture value", ID: 0x9205, Type: TypeURational64, count: count1, Unit: "APEX", readable: apexAv},
	{Name: "SubjectDistance", Description: "Subject distance", ID: 0x9206, Type: TypeURational64, count: count1, Unit: "m", readable: meters},
	{Name: "MeteringMode", Description: "Metering mode", ID: 0x9207, Type: TypeUint16, count: count1, Unit: "none", readable: meteringMode},
	{Name: "LightSource", Description: "Light source", ID: 0x9208, Type: TypeUint16, count: count1, Unit: "none", readable: lightSource},
	{Name: "Flash", Description: "Flash", ID: 0x9209, Type: TypeUint16, count: count1, Unit: "none", readable: flash},
	{Name: "FocalLength", Description: "Focal length", ID: 0x920a, Type: TypeURational64, count: count1, Unit: "mm", readable: focalLength},
	{Name: "SubjectArea", Description: "Subject area", ID: 0x9214, Type: TypeUint16, count: [2]uint32{2, 4}, Unit: "px", readable: subjectArea},
	{Name: "MakerNote", Description: "Maker note", ID: 0x927c, Type: TypeUndefined, count: countAny, Unit: "none", readable: undefinedAsBlob},
	{Name: "UserComment", Description: "User comment", ID: 0x9286, Type: TypeUndefined, count: countAny, Unit: "none", readable: undefinedAsEncodedString},
	{Name: "FlashPixVersion", Description: "Flashpix version", ID: 0xa000, Type: TypeUndefined, count: countN(4), Unit: "none", readable: undefinedAsASCII},
	{Name: "ColorSpace", Description: "Color space", ID: 0xa001, Type: TypeUint16, count: count1, Unit: "none", readable: colorSpace},
	{Name: "RelatedSoundFile", Description: "Related sound file", ID: 0xa004, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "FlashEnergy", Description: "Flash energy", ID: 0xa20b, Type: TypeURational64, count: count1, Unit: "BCPS", readable: flashEnergy},
	{Name: "FocalPlaneXResolution", Description: "Focal plane X resolution", ID: idFocalPlaneXResolution, Type: TypeURational64, count: count1, Unit: "@FocalPlaneResolutionUnit", readable: rationalValue},
	{Name: "FocalPlaneYResolution", Description: "Focal plane Y resolution", ID: idFocalPlaneYResolution, Type: TypeURational64, count: count1, Unit: "@FocalPlaneResolutionUnit", readable: rationalValue},
	{Name: "FocalPlaneResolutionUnit", Description: "Focal plane resolution unit", ID: idFocalPlaneResolutionUnit, Type: TypeUint16, count: count1, Unit: "none", readable: resolutionUnit},
	{Name: "SubjectLocation", Description: "Subject location", ID: 0xa214, Type: TypeUint16, count: countN(2), Unit: "X,Y", readable: subjectLocation},
	{Name: "ExposureIndex", Description: "Exposure index", ID: 0xa215, Type: TypeURational64, count: count1, Unit: "EI", readable: rationalValue},
	{Name: "SensingMethod", Description: "Sensing method", ID: 0xa217, Type: TypeUint16, count: count1, Unit: "none", readable: sensingMethod},
	{Name: "FileSource", Description: "File source", ID: 0xa300, Type: TypeUndefined, count: count1, Unit: "none", readable: fileSource},
	{Name: "SceneType", Description: "Scene type", ID: 0xa301, Type: TypeUndefined, count: count1, Unit: "none", readable: sceneType},
	{Name: "CFAPattern", Description: "CFA Pattern", ID: 0xa302, Type: TypeUndefined, count: countAny, Unit: "none", readable: undefinedAsU8},
	{Name: "CustomRendered", Description: "Custom rendered", ID: 0xa401, Type: TypeUint16, count: count1, Unit: "none", readable: customRendered},
	{Name: "ExposureMode", Description: "Exposure mode", ID: 0xa402, Type: TypeUint16, count: count1, Unit: "none", readable: exposureMode},
	{Name: "WhiteBalanceMode", Description: "White balance mode", ID: 0xa403, Type: TypeUint16, count: count1, Unit: "none", readable: whiteBalanceMode},
	{Name: "DigitalZoomRatio", Description: "Digital zoom ratio", ID: 0xa404, Type: TypeURational64, count: count1, Unit: "none", readable: rationalValue},
	{Name: "FocalLengthIn35mmFilm", Description: "Equivalent focal length in 35mm", ID: 0xa405, Type: TypeUint16, count: count1, Unit: "mm", readable: focalLength35},
	{Name: "SceneCaptureType", Description: "Scene capture type", ID: 0xa406, Type: TypeUint16, count: count1, Unit: "none", readable: sceneCaptureType},
	{Name: "GainControl", Description: "Gain control", ID: 0xa407, Type: TypeUint16, count: count1, Unit: "none", readable: gainControl},
	{Name: "Contrast", Description: "Contrast", ID: 0xa408, Type: TypeUint16, count: count1, Unit: "none", readable: contrast},
	{Name: "Saturation", Description: "Saturation", ID: 0xa409, Type: TypeUint16, count: count1, Unit: "none", readable: saturation},
	{Name: "Sharpness", Description: "Sharpness", ID: 0xa40a, Type: TypeUint16, count: count1, Unit: "none", readable: sharpness},
	{Name: "DeviceSettingDescription", Description: "Device setting description", ID: 0xa40b, Type: TypeUndefined, count: countAny, Unit: "none", readable: undefinedAsBlob},
	{Name: "SubjectDistanceRange", Description: "Subject distance range", ID: 0xa40c, Type: TypeUint16, count: count1, Unit: "none", readable: subjectDistanceRange},
	{Name: "ImageUniqueID", Description: "Image unique ID", ID: 0xa420, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "LensSpecification", Description: "Lens specification", ID: 0xa432, Type: TypeURational64, count: countN(4), Unit: "none", readable: lensSpec},
	{Name: "LensMake", Description: "Lens manufacturer", ID: 0xa433, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "LensModel", Description: "Lens model", ID: 0xa434, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "Gamma", Description: "Gamma", ID: 0xa500, Type: TypeURational64, count: count1, Unit: "none", readable: rationalValue},

	// GPS IFD
	{Name: "GPSVersionID", Description: "GPS version ID", ID: 0x0000, Type: TypeUint8, count: countN(4), Unit: "none", readable: strpass},
	{Name: "GPSLatitudeRef", Description: "GPS latitude ref", ID: idGPSLatitudeRef, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "GPSLatitude", Description: "GPS latitude", ID: idGPSLatitude, Type: TypeURational64, count: countN(3), Unit: "D/M/S", readable: dms},
	{Name: "GPSLongitudeRef", Description: "GPS longitude ref", ID: idGPSLongitudeRef, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "GPSLongitude", Description: "GPS longitude", ID: idGPSLongitude, Type: TypeURational64, count: countN(3), Unit: "D/M/S", readable: dms},
	{Name: "GPSAltitudeRef", Description: "GPS altitude ref", ID: idGPSAltitudeRef, Type: TypeUint8, count: count1, Unit: "none", readable: gpsAltRef},
	{Name: "GPSAltitude", Description: "GPS altitude", ID: idGPSAltitude, Type: TypeURational64, count: count1, Unit: "m", readable: meters},
	{Name: "GPSTimeStamp", Description: "GPS timestamp", ID: 0x0007, Type: TypeURational64, count: countN(3), Unit: "UTC time", readable: gpsTimestamp},
	{Name: "GPSSatellites", Description: "GPS satellites", ID: 0x0008, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "GPSStatus", Description: "GPS status", ID: 0x0009, Type: TypeString, count: countAny, Unit: "none", readable: gpsStatus},
	{Name: "GPSMeasureMode", Description: "GPS measure mode", ID: 0x000a, Type: TypeString, count: countAny, Unit: "none", readable: gpsMeasureMode},
	{Name: "GPSDOP", Description: "GPS Data Degree of Precision (DOP)", ID: 0x000b, Type: TypeURational64, count: count1, Unit: "none", readable: rationalValue},
	{Name: "GPSSpeedRef", Description: "GPS speed ref", ID: idGPSSpeedRef, Type: TypeString, count: countAny, Unit: "none", readable: gpsSpeedRef},
	{Name: "GPSSpeed", Description: "GPS speed", ID: idGPSSpeed, Type: TypeURational64, count: count1, Unit: "@GPSSpeedRef", readable: gpsSpeed},
	{Name: "GPSTrackRef", Description: "GPS track ref", ID: 0x000e, Type: TypeString, count: countAny, Unit: "none", readable: gpsBearingRef},
	{Name: "GPSTrack", Description: "GPS track", ID: 0x000f, Type: TypeURational64, count: count1, Unit: "deg", readable: gpsBearing},
	{Name: "GPSImgDirectionRef", Description: "GPS image direction ref", ID: 0x0010, Type: TypeString, count: countAny, Unit: "none", readable: gpsBearingRef},
	{Name: "GPSImgDirection", Description: "GPS image direction", ID: 0x0011, Type: TypeURational64, count: count1, Unit: "deg", readable: gpsBearing},
	{Name: "GPSMapDatum", Description: "GPS map datum", ID: 0x0012, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "GPSDestLatitudeRef", Description: "GPS destination latitude ref", ID: idGPSDestLatitudeRef, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "GPSDestLatitude", Description: "GPS destination latitude", ID: idGPSDestLatitude, Type: TypeURational64, count: countN(3), Unit: "D/M/S", readable: dms},
	{Name: "GPSDestLongitudeRef", Description: "GPS destination longitude ref", ID: idGPSDestLongitudeRef, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "GPSDestLongitude", Description: "GPS destination longitude", ID: idGPSDestLongitude, Type: TypeURational64, count: countN(3), Unit: "D/M/S", readable: dms},
	{Name: "GPSDestBearingRef", Description: "GPS destination bearing ref", ID: 0x0017, Type: TypeString, count: countAny, Unit: "none", readable: gpsBearingRef},
	{Name: "GPSDestBearing", Description: "GPS destination bearing", ID: 0x0018, Type: TypeURational64, count: count1, Unit: "deg", readable: gpsBearing},
	{Name: "GPSDestDistanceRef", Description: "GPS destination distance ref", ID: idGPSDestDistanceRef, Type: TypeString, count: countAny, Unit: "none", readable: gpsDestDistanceRef},
	{Name: "GPSDestDistance", Description: "GPS destination distance", ID: idGPSDestDistance, Type: TypeURational64, count: count1, Unit: "@GPSDestDistanceRef", readable: gpsDestDistance},
	{Name: "GPSProcessingMethod", Description: "GPS processing method", ID: 0x001b, Type: TypeUndefined, count: countAny, Unit: "none", readable: undefinedAsEncodedString},
	{Name: "GPSAreaInformation", Description: "GPS area information", ID: 0x001c, Type: TypeUndefined, count: countAny, Unit: "none", readable: undefinedAsEncodedString},
	{Name: "GPSDateStamp", Description: "GPS date stamp", ID: 0x001d, Type: TypeString, count: countAny, Unit: "none", readable: strpass},
	{Name: "GPSDifferential", Description: "GPS differential", ID: 0x001e, Type: TypeUint16, count: count1, Unit: "none", readable: gpsDifferential},
}

// KnownIDs returns the codes of every tag in the dictionary in ascending order.
func KnownIDs() []ID {
	ids := make([]ID, 0, len(tags))
	for id := range tags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
