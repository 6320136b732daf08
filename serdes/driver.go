package serdes

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bbc/vc2bitstream/bitio"
	"github.com/bbc/vc2bitstream/internal/vc2log"
	"github.com/bbc/vc2bitstream/primitive"
)

// Mode selects which direction a Driver pass runs.
type Mode int

const (
	// ModeRead decodes a bitstream into a Context.
	ModeRead Mode = iota
	// ModeWrite encodes a Context into a bitstream.
	ModeWrite
	// ModeMeasure runs the write path against a scratch Writer purely to
	// learn the resulting bit length; its output is discarded.
	ModeMeasure
)

// Driver executes a grammar function against a bit reader or writer,
// dispatching each yielded Token to the matching primitive codec and
// filing the result in (or pulling the next value from) a Context.
type Driver struct {
	Mode Mode
	R    *bitio.Reader // set for ModeRead
	W    *bitio.Writer // set for ModeWrite and ModeMeasure
	Ctx  *Context
	Log  *vc2log.Logger // optional; defaults to a no-op logger

	pastEOFBits  int
	boundedOpen  bool
	rangeTracker *rangeTracker // non-nil only when ranges are being recorded
}

// PastEOFBits returns the running total of synthetic bits produced by
// primitive reads across this Driver's pass, not counting bits synthesized
// only because a bounded region's own budget (rather than the underlying
// stream) was exhausted.
func (d *Driver) PastEOFBits() int {
	return d.pastEOFBits
}

// abortSignal unwinds the grammar goroutine when the driver hits an error
// mid-pass; it is never allowed to escape Run.
type abortSignal struct{ err error }

type request struct {
	token Token
	resp  chan any
}

// Run drives grammar to completion, returning the first error raised by
// the primitive layer or by context/bounded-block bookkeeping.
func (d *Driver) Run(grammar func(yield Yield)) error {
	if d.Log == nil {
		d.Log = vc2log.Nop()
	}
	reqCh := make(chan request)
	doneCh := make(chan error, 1)

	yield := func(t Token) any {
		resp := make(chan any)
		reqCh <- request{token: t, resp: resp}
		v := <-resp
		if ab, ok := v.(abortSignal); ok {
			panic(ab)
		}
		return v
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if ab, ok := r.(abortSignal); ok {
					doneCh <- ab.err
					return
				}
				doneCh <- fmt.Errorf("serdes: grammar panic: %v", r)
				return
			}
		}()
		grammar(yield)
		doneCh <- nil
	}()

	for {
		select {
		case req := <-reqCh:
			before := d.offset()
			val, err := d.handle(req.token)
			if err != nil {
				req.resp <- abortSignal{err: err}
				continue
			}
			if d.rangeTracker != nil && req.token.Target != "" {
				d.rangeTracker.record(req.token.Target, before, d.offset())
			}
			req.resp <- val
		case err := <-doneCh:
			if err != nil {
				return err
			}
			if d.boundedOpen {
				return ErrUnclosedBoundedBlock
			}
			if d.Mode != ModeRead {
				if leftover := d.Ctx.Unconsumed(); len(leftover) > 0 {
					return fmt.Errorf("%w: unused values for %v", ErrContextMismatch, leftover)
				}
			}
			return nil
		}
	}
}

func (d *Driver) offset() int {
	if d.Mode == ModeRead {
		return d.R.TellOffset()
	}
	return d.W.TellOffset()
}

func (d *Driver) handle(t Token) (any, error) {
	switch t.Kind {
	case KindNBits:
		return d.handleNBits(t)
	case KindNBytes:
		return d.handleNBytes(t)
	case KindUInt:
		return d.handleUInt(t)
	case KindSInt:
		return d.handleSInt(t)
	case KindBool:
		return d.handleBool(t)
	case KindByteAlign:
		return d.handleByteAlign(t)
	case KindBoundedBlockBegin:
		return d.handleBoundedBlockBegin(t)
	case KindBoundedBlockEnd:
		return d.handleBoundedBlockEnd(t)
	default:
		return nil, fmt.Errorf("serdes: unknown token kind %d", t.Kind)
	}
}

func (d *Driver) handleNBits(t Token) (any, error) {
	if d.Mode == ModeRead {
		res := primitive.NBits(d.R, t.Arg)
		d.pastEOFBits += res.PastEOFBits
		d.Ctx.Append(t.Target, res.Value)
		return res.Value, nil
	}
	v, err := d.nextUint(t.Target)
	if err != nil {
		return nil, err
	}
	if _, err := primitive.WriteNBits(d.W, t.Arg, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (d *Driver) handleNBytes(t Token) (any, error) {
	if d.Mode == ModeRead {
		res := primitive.NBytes(d.R, t.Arg)
		d.pastEOFBits += res.PastEOFBits
		d.Ctx.Append(t.Target, res.Value)
		return res.Value, nil
	}
	v, ok := mustNext(d.Ctx, t.Target)
	if !ok {
		return nil, fmt.Errorf("%w: no value for %q", ErrContextMismatch, t.Target)
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: target %q wants []byte", ErrUnsupportedValueType, t.Target)
	}
	if len(b) != t.Arg {
		return nil, fmt.Errorf("%w: target %q has %d bytes, token wants %d", primitive.ErrOutOfRange, t.Target, len(b), t.Arg)
	}
	if _, err := primitive.WriteNBytes(d.W, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Driver) handleUInt(t Token) (any, error) {
	if d.Mode == ModeRead {
		res := primitive.UInt(d.R)
		d.pastEOFBits += res.PastEOFBits
		d.Ctx.Append(t.Target, res.Value)
		return res.Value, nil
	}
	v, err := d.nextUint(t.Target)
	if err != nil {
		return nil, err
	}
	if _, err := primitive.WriteUInt(d.W, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (d *Driver) handleSInt(t Token) (any, error) {
	if d.Mode == ModeRead {
		res := primitive.SInt(d.R)
		d.pastEOFBits += res.PastEOFBits
		d.Ctx.Append(t.Target, res.Value)
		return res.Value, nil
	}
	v, ok := mustNext(d.Ctx, t.Target)
	if !ok {
		return nil, fmt.Errorf("%w: no value for %q", ErrContextMismatch, t.Target)
	}
	i, err := asInt64(v)
	if err != nil {
		return nil, err
	}
	if _, err := primitive.WriteSInt(d.W, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (d *Driver) handleBool(t Token) (any, error) {
	if d.Mode == ModeRead {
		res := primitive.Bool(d.R)
		d.pastEOFBits += res.PastEOFBits
		d.Ctx.Append(t.Target, res.Value)
		return res.Value, nil
	}
	v, ok := mustNext(d.Ctx, t.Target)
	if !ok {
		return nil, fmt.Errorf("%w: no value for %q", ErrContextMismatch, t.Target)
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: target %q wants bool", ErrUnsupportedValueType, t.Target)
	}
	if _, err := primitive.WriteBool(d.W, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Driver) handleByteAlign(t Token) (any, error) {
	if d.Mode == ModeRead {
		res := primitive.ByteAlign(d.R)
		d.pastEOFBits += res.PastEOFBits
		if t.Target != "" {
			d.Ctx.Append(t.Target, res.Value)
		}
		return res.Value, nil
	}
	var pattern uint64
	if t.Target != "" {
		if v, ok := mustNext(d.Ctx, t.Target); ok {
			pattern, _ = asUint64(v)
		}
	}
	if _, _, err := primitive.WriteByteAlign(d.W, pattern); err != nil {
		return nil, err
	}
	return pattern, nil
}

func (d *Driver) handleBoundedBlockBegin(t Token) (any, error) {
	if d.boundedOpen {
		return nil, bitio.ErrNestedBoundedBlock
	}
	d.boundedOpen = true
	var err error
	if d.Mode == ModeRead {
		err = d.R.BoundedBlockBegin(t.Arg)
	} else {
		err = d.W.BoundedBlockBegin(t.Arg)
	}
	if err != nil {
		d.boundedOpen = false
		return nil, err
	}
	d.Log.Debug("bounded block opened", zap.String("target", t.Target), zap.Int("bits", t.Arg))
	return t.Arg, nil
}

func (d *Driver) handleBoundedBlockEnd(t Token) (any, error) {
	if !d.boundedOpen {
		return nil, ErrNoActiveBoundedBlock
	}
	d.boundedOpen = false
	if d.Mode == ModeRead {
		pad, unused, pastEOB, err := d.R.BoundedBlockEnd()
		if err != nil {
			return nil, err
		}
		// The primitive reads inside the block already tallied each bit
		// synthesized past its end; take those back out so the total counts
		// only bits synthesized because the stream itself ran out.
		d.pastEOFBits -= pastEOB
		if pastEOB > 0 {
			d.Log.Warn("bounded block overran", zap.String("target", t.Target), zap.Int("bits_past_eob", pastEOB))
		}
		if t.Target != "" {
			d.Ctx.Append(t.Target, pad)
		}
		return pad, nil
	}
	var pad uint64
	if t.Target != "" {
		if v, ok := mustNext(d.Ctx, t.Target); ok {
			pad, _ = asUint64(v)
		}
	}
	if _, _, err := d.W.BoundedBlockEnd(pad); err != nil {
		return nil, err
	}
	return pad, nil
}

func (d *Driver) nextUint(target string) (uint64, error) {
	v, ok := mustNext(d.Ctx, target)
	if !ok {
		return 0, fmt.Errorf("%w: no value for %q", ErrContextMismatch, target)
	}
	return asUint64(v)
}

func mustNext(ctx *Context, target string) (any, bool) {
	return ctx.Next(target)
}

func asUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative value %d", primitive.ErrOutOfRange, n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative value %d", primitive.ErrOutOfRange, n)
		}
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrUnsupportedValueType, v)
	}
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrUnsupportedValueType, v)
	}
}
