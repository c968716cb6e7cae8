package sxfile

import "strings"

// File type codes carried in the first byte of every PeakSight file.
const (
	FileTypeWDSSetup           = 1
	FileTypeImageMappingSetup  = 2
	FileTypeCalibrationSetup   = 3
	FileTypeQuantiSetup        = 4
	FileTypeUnknown            = 5
	FileTypeWDSResults         = 6
	FileTypeImageMappingResult = 7
	FileTypeCalibrationResult  = 8
	FileTypeQuantiResult       = 9
	FileTypeOverlapTable       = 10
)

var fileTypeNames = map[uint8]string{
	FileTypeWDSSetup:           "WDS setup",
	FileTypeImageMappingSetup:  "Image/mapping setup",
	FileTypeCalibrationSetup:   "Calibration setup",
	FileTypeQuantiSetup:        "Quanti setup",
	FileTypeUnknown:            "unknown",
	FileTypeWDSResults:         "WDS results",
	FileTypeImageMappingResult: "Image/mapping results",
	FileTypeCalibrationResult:  "Calibration results",
	FileTypeQuantiResult:       "Quanti results",
	FileTypeOverlapTable:       "Peak overlap table",
}

// X-ray line names keyed by the integer codes PeakSight stores in
// measurement records.
var lineNames = map[int]string{
	1: "Kβ", 2: "Kα",
	3: "Lγ4", 4: "Lγ3", 5: "Lγ2", 6: "Lγ",
	7: "Lβ9", 8: "Lβ10", 9: "Lβ7", 10: "Lβ2",
	11: "Lβ6", 12: "Lβ3", 13: "Lβ4", 14: "Lβ",
	15: "Lα", 16: "Lν", 17: "Ll",
	18: "Mγ", 19: "Mβ", 20: "Mα", 21: "Mζ", 22: "Mζ2",
	23: "M1N2", 24: "M1N3", 25: "M2N1", 26: "M2N4",
	27: "M2O4", 28: "M3N1", 29: "M3N4", 30: "M3O1",
	31: "M3O4", 32: "M4O2",
}

// Element symbols keyed by atomic number. Entry 0 is "n" (none), the value
// PeakSight uses for unassigned channels.
var elementSymbols = map[int]string{
	0: "n", 1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B",
	6: "C", 7: "N", 8: "O", 9: "F", 10: "Ne", 11: "Na",
	12: "Mg", 13: "Al", 14: "Si", 15: "P", 16: "S",
	17: "Cl", 18: "Ar", 19: "K", 20: "Ca", 21: "Sc",
	22: "Ti", 23: "V", 24: "Cr", 25: "Mn", 26: "Fe",
	27: "Co", 28: "Ni", 29: "Cu", 30: "Zn", 31: "Ga",
	32: "Ge", 33: "As", 34: "Se", 35: "Br", 36: "Kr",
	37: "Rb", 38: "Sr", 39: "Y", 40: "Zr", 41: "Nb",
	42: "Mo", 43: "Tc", 44: "Ru", 45: "Rh", 46: "Pd",
	47: "Ag", 48: "Cd", 49: "In", 50: "Sn", 51: "Sb",
	52: "Te", 53: "I", 54: "Xe", 55: "Cs", 56: "Ba",
	57: "La", 58: "Ce", 59: "Pr", 60: "Nd", 61: "Pm",
	62: "Sm", 63: "Eu", 64: "Gd", 65: "Tb", 66: "Dy",
	67: "Ho", 68: "Er", 69: "Tm", 70: "Yb", 71: "Lu",
	72: "Hf", 73: "Ta", 74: "W", 75: "Re", 76: "Os",
	77: "Ir", 78: "Pt", 79: "Au", 80: "Hg", 81: "Tl",
	82: "Pb", 83: "Bi", 84: "Po", 85: "At", 86: "Rn",
	87: "Fr", 88: "Ra", 89: "Ac", 90: "Th", 91: "Pa",
	92: "U", 93: "Np", 94: "Pu", 95: "Am", 96: "Cm",
	97: "Bk", 98: "Cf", 99: "Es", 100: "Fm", 101: "Md",
	102: "No", 103: "Lr",
}

// FileTypeName returns the human-readable name of a file type code.
func FileTypeName(code uint8) (string, error) {
	name, ok := fileTypeNames[code]
	if !ok {
		return "", &UnknownCodeError{Table: "file type", Code: int(code)}
	}
	return name, nil
}

// ElementSymbol returns the element symbol for an atomic number (0-103,
// where 0 is the "none" placeholder).
func ElementSymbol(z int) (string, error) {
	sym, ok := elementSymbols[z]
	if !ok {
		return "", &UnknownCodeError{Table: "element", Code: z}
	}
	return sym, nil
}

// LineName returns the X-ray line name for a PeakSight line code.
func LineName(code int) (string, error) {
	name, ok := lineNames[code]
	if !ok {
		return "", &UnknownCodeError{Table: "line", Code: code}
	}
	return name, nil
}

var crystalFamilies = []string{"PC0", "PC1", "PC2", "PC3", "PET", "TAP", "LIF"}

// CrystalName extracts the base diffracting-crystal name from a full
// spectrometer crystal label, e.g. "LLIF" -> "LIF". It returns "" when the
// label matches no known family.
func CrystalName(full string) string {
	for _, c := range crystalFamilies {
		if strings.Contains(full, c) {
			return c
		}
	}
	return ""
}
