package exif

// postprocess completes entries whose meaning depends on another entry,
// such as a resolution and its unit. Entries are visited by index and only
// the Unit and Readable fields of the visited entry are written.
func postprocess(entries []Entry) {
	for i := range entries {
		postprocessEntry(entries, i)
	}
}

func postprocessEntry(entries []Entry, i int) {
	e := &entries[i]
	if e.Namespace != NamespaceStandard || e.Tag == TagUnknownToMe {
		return
	}
	// appendSibling appends the readable value of the sibling with the given
	// code to e.Readable, optionally taking it as the unit too.
	appendSibling := func(id ID, sep string, setUnit bool) {
		sib := siblingEntry(entries, i, id)
		if sib == nil {
			return
		}
		if setUnit {
			e.Unit = sib.Readable
		}
		e.Readable += sep + sib.Readable
	}
	switch e.Tag.ID() {
	case idXResolution, idYResolution:
		appendSibling(idResolutionUnit, " pixels per ", true)
	case idFocalPlaneXResolution, idFocalPlaneYResolution:
		appendSibling(idFocalPlaneResolutionUnit, " pixels per ", true)
	case idGPSLatitude:
		appendSibling(idGPSLatitudeRef, " ", false)
	case idGPSLongitude:
		appendSibling(idGPSLongitudeRef, " ", false)
	case idGPSDestLatitude:
		appendSibling(idGPSDestLatitudeRef, " ", false)
	case idGPSDestLongitude:
		appendSibling(idGPSDestLongitudeRef, " ", false)
	case idGPSDestDistance:
		appendSibling(idGPSDestDistanceRef, " ", true)
	case idGPSSpeed:
		appendSibling(idGPSSpeedRef, " ", true)
	case idGPSAltitude:
		sib := siblingEntry(entries, i, idGPSAltitudeRef)
		if sib == nil {
			return
		}
		if ref, ok := sib.Value.(U8); ok && len(ref) > 0 && ref[0] != 0 {
			e.Readable += " below sea level"
		}
	}
}

// siblingEntry returns the first entry other than entries[skip] with the
// standard tag id, or nil.
func siblingEntry(entries []Entry, skip int, id ID) *Entry {
	want := MakeTag(NamespaceStandard, id)
	for j := range entries {
		if j != skip && entries[j].Tag == want {
			return &entries[j]
		}
	}
	return nil
}
