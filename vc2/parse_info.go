// Package vc2 implements the VC-2 bitstream grammars on top of package
// serdes: the parse_info prefix every data unit starts with, the registry
// dispatching a parse code to its grammar, and the high-quality/low-delay
// picture slice grammars that drive a slice.Array.
package vc2

import "github.com/bbc/vc2bitstream/serdes"

// ParseInfoPrefix is the fixed 4-byte value ("BBCD") that opens every
// parse_info block.
const ParseInfoPrefix uint64 = 0x42424344

// Parse codes, SMPTE ST 2042-1 Table 10.1 (the ones this engine dispatches
// on directly; KindForParseCode reports no kind for any other code).
const (
	ParseCodeSequenceHeader   = 0x00
	ParseCodeEndOfSequence    = 0x10
	ParseCodeAuxiliaryData    = 0x20
	ParseCodePadding          = 0x30
	ParseCodeLowDelayPicture  = 0xC8
	ParseCodeHighQualityPicture = 0xE8
	ParseCodeLowDelayFragment = 0xCC
	ParseCodeHighQualityFragment = 0xEC
)

// ParseInfoGrammar reads or writes the 13-byte parse_info prefix: the
// fixed parse_parameters word, the parse code, and the next/previous
// parse-offset fields a decoder uses to skip or rewind between data units.
func ParseInfoGrammar(yield serdes.Yield) {
	yield(serdes.NBits("parse_parameters", 32))
	yield(serdes.NBits("parse_code", 8))
	yield(serdes.NBits("next_parse_offset", 32))
	yield(serdes.NBits("previous_parse_offset", 32))
}

// KindForParseCode maps a parse_code byte to the data-unit kind name used
// to look the grammar up in a Registry. Every code, picture and fragment
// codes included, must match one of the constants above exactly; no bits
// are masked off.
func KindForParseCode(code uint64) (kind string, ok bool) {
	switch code {
	case ParseCodeSequenceHeader:
		return "sequence_header", true
	case ParseCodeEndOfSequence:
		return "end_of_sequence", true
	case ParseCodeAuxiliaryData:
		return "auxiliary_data", true
	case ParseCodePadding:
		return "padding", true
	case ParseCodeLowDelayPicture, ParseCodeHighQualityPicture:
		return "picture_parse", true
	case ParseCodeLowDelayFragment, ParseCodeHighQualityFragment:
		return "fragment_parse", true
	default:
		return "", false
	}
}

// IsPictureParseCode reports whether code names a picture (as opposed to a
// fragment) data unit.
func IsPictureParseCode(code uint64) bool {
	return code == ParseCodeLowDelayPicture || code == ParseCodeHighQualityPicture
}

// IsLowDelayParseCode reports whether code selects the low-delay slice
// variant rather than high-quality.
func IsLowDelayParseCode(code uint64) bool {
	return code == ParseCodeLowDelayPicture || code == ParseCodeLowDelayFragment
}
