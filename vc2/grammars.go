package vc2

import "github.com/bbc/vc2bitstream/serdes"

// SequenceHeaderGrammar reads or writes a sequence_header data unit's
// top-level fields: the version/profile/level triple, the base video
// format index, and the flag introducing custom video-parameter overrides.
// Overrides themselves (frame size, color format, frame rate, and so on)
// are each individually-flagged optional fields in the full VC-2 grammar;
// this engine's framework supports them exactly like any other token
// sequence, they are simply not enumerated field-by-field here.
func SequenceHeaderGrammar(yield serdes.Yield) {
	yield(serdes.ByteAlign(""))
	yield(serdes.UInt("major_version"))
	yield(serdes.UInt("minor_version"))
	yield(serdes.UInt("profile"))
	yield(serdes.UInt("level"))
	yield(serdes.UInt("base_video_format"))
	customFormat := yield(serdes.Bool("custom_dimensions_flag")).(bool)
	if customFormat {
		yield(serdes.UInt("frame_width"))
		yield(serdes.UInt("frame_height"))
	}
	colorDiff := yield(serdes.Bool("custom_color_diff_format_flag")).(bool)
	if colorDiff {
		yield(serdes.UInt("color_diff_format_index"))
	}
	yield(serdes.Bool("interlaced_picture"))
	yield(serdes.Bool("top_field_first"))
}

// AuxiliaryDataGrammar reads or writes an auxiliary_data data unit: a
// length-prefixed opaque byte blob the decoder must skip.
func AuxiliaryDataGrammar(yield serdes.Yield) {
	yield(serdes.ByteAlign(""))
	n := yield(serdes.UInt("length")).(uint64)
	yield(serdes.NBytes("data", int(n)))
}

// PaddingGrammar reads or writes a padding data unit: like auxiliary_data,
// a length-prefixed blob whose content carries no meaning.
func PaddingGrammar(yield serdes.Yield) {
	yield(serdes.ByteAlign(""))
	n := yield(serdes.UInt("length")).(uint64)
	yield(serdes.NBytes("data", int(n)))
}

// EndOfSequenceGrammar reads or writes an end_of_sequence data unit, which
// carries no fields of its own beyond the parse_info prefix that precedes
// every data unit.
func EndOfSequenceGrammar(yield serdes.Yield) {}

// PictureHeaderGrammar reads or writes the fields common to both
// picture_parse and fragment_parse before their slice data: the picture
// number every picture and its fragments share.
func PictureHeaderGrammar(yield serdes.Yield) {
	yield(serdes.ByteAlign(""))
	yield(serdes.NBits("picture_number", 32))
}

// FragmentHeaderGrammar reads or writes a fragment_parse data unit's
// header fields: the shared picture number plus this fragment's slice
// count and the offset of its first slice within the picture's overall
// slice raster.
func FragmentHeaderGrammar(yield serdes.Yield) {
	yield(serdes.ByteAlign(""))
	yield(serdes.NBits("picture_number", 32))
	yield(serdes.NBits("fragment_data_length", 16))
	yield(serdes.NBits("fragment_slice_count", 16))
	if yield(serdes.Bool("fragment_has_first_slice_offset")).(bool) {
		yield(serdes.NBits("fragment_x_offset", 16))
		yield(serdes.NBits("fragment_y_offset", 16))
	}
}
