// Package serdes is the token-stream driver: it pairs a VC-2 grammar,
// expressed as a Go function that yields tokens, with the primitive codecs
// in package primitive to read, write, or measure a bitstream data unit
// from a single description of its structure.
//
// Go has no native generator/coroutine, so the grammar runs on its own
// goroutine and rendezvous with the Driver over an unbuffered channel at
// each token: the grammar blocks on yield until the driver replies with the
// resolved value, exactly mirroring the suspend/resume behaviour a
// coroutine-based implementation would have, with only one of the two
// goroutines ever runnable at a time.
package serdes

// Kind identifies which primitive codec a Token requests.
type Kind int

const (
	KindNBits Kind = iota
	KindNBytes
	KindUInt
	KindSInt
	KindBool
	KindByteAlign
	KindBoundedBlockBegin
	KindBoundedBlockEnd
)

func (k Kind) String() string {
	switch k {
	case KindNBits:
		return "nbits"
	case KindNBytes:
		return "nbytes"
	case KindUInt:
		return "uint"
	case KindSInt:
		return "sint"
	case KindBool:
		return "bool"
	case KindByteAlign:
		return "byte_align"
	case KindBoundedBlockBegin:
		return "bounded_block_begin"
	case KindBoundedBlockEnd:
		return "bounded_block_end"
	default:
		return "unknown"
	}
}

// Token is one step of a grammar: a request to read or write a primitive
// value, named so the driver can file it under Context[Target].
type Token struct {
	Kind   Kind
	Arg    int // field width for NBits/NBytes, block size for BoundedBlockBegin
	Target string
}

// NBits yields a fixed-width unsigned integer token.
func NBits(target string, n int) Token { return Token{Kind: KindNBits, Arg: n, Target: target} }

// NBytes yields a fixed-length byte-string token.
func NBytes(target string, n int) Token { return Token{Kind: KindNBytes, Arg: n, Target: target} }

// UInt yields an Exp-Golomb unsigned integer token.
func UInt(target string) Token { return Token{Kind: KindUInt, Target: target} }

// SInt yields an Exp-Golomb signed integer token.
func SInt(target string) Token { return Token{Kind: KindSInt, Target: target} }

// Bool yields a single-bit boolean token.
func Bool(target string) Token { return Token{Kind: KindBool, Target: target} }

// ByteAlign yields a byte-alignment token. target may be empty, in which
// case the skipped/padding bits are discarded rather than recorded.
func ByteAlign(target string) Token { return Token{Kind: KindByteAlign, Target: target} }

// BoundedBlockBegin yields a token that installs a bounded region of n bits.
func BoundedBlockBegin(n int) Token { return Token{Kind: KindBoundedBlockBegin, Arg: n} }

// BoundedBlockEnd yields a token that tears down the active bounded region.
// The resolved value is the pad pattern retained for round-trip fidelity;
// target names the field it is filed under (the VC-2 grammars typically
// call this "padding" or similar).
func BoundedBlockEnd(target string) Token { return Token{Kind: KindBoundedBlockEnd, Target: target} }

// Yield is the function a grammar uses to emit a token and receive back the
// value the driver resolved for it (the just-read value on a read pass, the
// same value handed back on a write pass). Grammars use the returned value
// to make read-time branching decisions, exactly as the VC-2 pseudocode
// does.
type Yield func(Token) any
