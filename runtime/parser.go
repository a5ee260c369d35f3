package cbor

// ctxKind identifies the kind of container a context-stack frame is
// accumulating.
type ctxKind int

const (
	ctxArray ctxKind = iota
	ctxMap
	ctxTag
	ctxIndefArray
	ctxIndefMap
	ctxIndefBstr
	ctxIndefTstr
)

// ctxFrame is one entry of the Parser's context stack: a container
// that has been opened by a token but not yet closed. Which fields
// are meaningful depends on kind; this mirrors Token and CBORValue's
// own per-kind field layout rather than splitting into one type per
// kind, since the Parser only ever has one frame active at a time.
type ctxFrame struct {
	kind ctxKind

	items     []CBORValue // ctxArray, ctxIndefArray
	remaining uint64      // ctxArray: elements left; ctxMap: pairs left

	pairs      []MapPair // ctxMap, ctxIndefMap
	haveKey    bool
	pendingKey CBORValue

	tagNumber U64 // ctxTag

	buf *ByteBuffer // ctxIndefBstr, ctxIndefTstr
}

// ParserLimits bounds the Parser's context stack, protecting against
// adversarially deep nesting. A zero MaxContextStack means unlimited.
type ParserLimits struct {
	MaxContextStack int
}

// DefaultParserLimits returns the limits the package-level decode
// helpers use: a context stack capped at 1024 frames.
func DefaultParserLimits() ParserLimits {
	return ParserLimits{MaxContextStack: 1024}
}

// Parser is a token-level pushdown automaton: it consumes the Token
// stream a Scanner produces and assembles a single recursive CBORValue
// tree, one data item at a time.
//
// A Parser holds two stacks internally: the context stack of open
// containers (ctxFrame) and, implicitly, the single "value in hand"
// threaded through reduce as it folds completed values into their
// parent container. There is no separate exported value stack type;
// see the Design Notes on why that indirection buys nothing in Go.
//
// Parser performs no tag-semantic interpretation (a Tag's child is
// just another CBORValue) and no UTF-8 validation of Tstr payloads.
type Parser struct {
	limits ParserLimits
	stack  []ctxFrame
	done   bool
}

// NewParser constructs a Parser ready to consume the tokens of one
// top-level CBOR data item.
func NewParser(limits ParserLimits) *Parser {
	return &Parser{limits: limits}
}

// Done reports whether the Parser has already produced its top-level
// value; feeding it another token past that point is a TrailingInputError.
func (p *Parser) Done() bool { return p.done }

// Depth reports the number of currently open containers.
func (p *Parser) Depth() int { return len(p.stack) }

// Reset discards any partially-parsed value and returns the Parser to
// its initial state, ready for a new top-level data item.
func (p *Parser) Reset() {
	p.stack = p.stack[:0]
	p.done = false
}

// Consume feeds one token to the parser. It returns (value, true, nil)
// once the token completes the top-level data item, (zero value,
// false, nil) if the item is still open, or an error if the token is
// not valid in the parser's current context.
func (p *Parser) Consume(tok Token) (CBORValue, bool, error) {
	if p.done {
		return CBORValue{}, false, TrailingInputError{}
	}

	if n := len(p.stack); n > 0 {
		switch p.stack[n-1].kind {
		case ctxIndefBstr:
			return p.consumeStringChunk(tok, TokenBstr)
		case ctxIndefTstr:
			return p.consumeStringChunk(tok, TokenTstr)
		}
	}

	if tok.Kind == TokenBreak {
		return p.consumeBreak()
	}

	v, pushed, err := p.open(tok)
	if err != nil {
		return CBORValue{}, false, err
	}
	if pushed {
		return CBORValue{}, false, nil
	}
	return p.reduce(v)
}

// consumeStringChunk handles a token arriving while the top context is
// an open indefinite-length byte/text string: it must be either
// another definite-length chunk of the matching kind, which is
// appended to the accumulating buffer, or Break, which closes the
// string.
func (p *Parser) consumeStringChunk(tok Token, want TokenKind) (CBORValue, bool, error) {
	top := &p.stack[len(p.stack)-1]
	if tok.Kind == TokenBreak {
		out := top.buf.Take()
		putByteBuffer(top.buf)
		p.stack = p.stack[:len(p.stack)-1]
		if want == TokenBstr {
			return p.reduce(NewBstr(out))
		}
		return p.reduce(NewTstr(out))
	}
	if tok.Kind != want {
		return CBORValue{}, false, UnexpectedTokenError{Expected: []TokenKind{want, TokenBreak}, Found: tok}
	}
	top.buf.Write(tok.Bytes)
	return CBORValue{}, false, nil
}

// consumeBreak handles a Break token arriving while the top context is
// one of the indefinite-length array/map kinds (chunked strings are
// intercepted earlier, in Consume).
func (p *Parser) consumeBreak() (CBORValue, bool, error) {
	if len(p.stack) == 0 {
		return CBORValue{}, false, UnexpectedError{Message: "break with no open indefinite-length construct"}
	}
	top := &p.stack[len(p.stack)-1]
	switch top.kind {
	case ctxIndefArray:
		items := top.items
		p.stack = p.stack[:len(p.stack)-1]
		return p.reduce(NewArray(items))
	case ctxIndefMap:
		if top.haveKey {
			return CBORValue{}, false, UnexpectedError{Message: "break with a map key awaiting its value"}
		}
		pairs := top.pairs
		p.stack = p.stack[:len(p.stack)-1]
		return p.reduce(NewMap(pairs))
	default:
		return CBORValue{}, false, UnexpectedError{Message: "break not valid in this context"}
	}
}

// open interprets a non-Break token: either it is already a complete
// value (pushed=false), or it opens a new context-stack frame
// (pushed=true) awaiting further tokens.
func (p *Parser) open(tok Token) (CBORValue, bool, error) {
	switch tok.Kind {
	case TokenUint:
		return NewUint(tok.U64), false, nil
	case TokenNint:
		return NewNint(tok.U64), false, nil
	case TokenBstr:
		return NewBstr(tok.Bytes), false, nil
	case TokenTstr:
		return NewTstr(tok.Bytes), false, nil
	case TokenSimple:
		return NewSimple(tok.Byte), false, nil
	case TokenFloat:
		return NewFloat(tok.U64, tok.Width), false, nil
	case TokenBstrX:
		return p.push(ctxFrame{kind: ctxIndefBstr, buf: getByteBuffer()})
	case TokenTstrX:
		return p.push(ctxFrame{kind: ctxIndefTstr, buf: getByteBuffer()})
	case TokenArrayX:
		return p.push(ctxFrame{kind: ctxIndefArray})
	case TokenMapX:
		return p.push(ctxFrame{kind: ctxIndefMap})
	case TokenArray:
		n := tok.U64.Uint64()
		if n == 0 {
			return NewArray(nil), false, nil
		}
		return p.push(ctxFrame{kind: ctxArray, remaining: n, items: make([]CBORValue, 0, prealloc(n))})
	case TokenMap:
		n := tok.U64.Uint64()
		if n == 0 {
			return NewMap(nil), false, nil
		}
		return p.push(ctxFrame{kind: ctxMap, remaining: n, pairs: make([]MapPair, 0, prealloc(n))})
	case TokenTag:
		return p.push(ctxFrame{kind: ctxTag, tagNumber: tok.U64})
	default:
		return CBORValue{}, false, InternalError{}
	}
}

// push appends a new context frame, enforcing the configured stack
// depth limit.
func (p *Parser) push(f ctxFrame) (CBORValue, bool, error) {
	if p.limits.MaxContextStack > 0 && len(p.stack) >= p.limits.MaxContextStack {
		return CBORValue{}, false, InsufficientStackSizeError{}
	}
	p.stack = append(p.stack, f)
	return CBORValue{}, true, nil
}

// reduce folds a just-completed value into its parent context,
// looping as completing one container in turn completes its parent,
// until either a frame is still waiting on more tokens or the stack is
// empty, in which case v is the finished top-level data item.
func (p *Parser) reduce(v CBORValue) (CBORValue, bool, error) {
	for {
		n := len(p.stack)
		if n == 0 {
			p.done = true
			return v, true, nil
		}
		top := &p.stack[n-1]
		switch top.kind {
		case ctxArray:
			top.items = append(top.items, v)
			top.remaining--
			if top.remaining != 0 {
				return CBORValue{}, false, nil
			}
			items := top.items
			p.stack = p.stack[:n-1]
			v = NewArray(items)
		case ctxMap:
			if !top.haveKey {
				top.pendingKey = v
				top.haveKey = true
				return CBORValue{}, false, nil
			}
			top.pairs = append(top.pairs, MapPair{Key: top.pendingKey, Value: v})
			top.haveKey = false
			top.remaining--
			if top.remaining != 0 {
				return CBORValue{}, false, nil
			}
			pairs := top.pairs
			p.stack = p.stack[:n-1]
			v = NewMap(pairs)
		case ctxTag:
			num := top.tagNumber
			p.stack = p.stack[:n-1]
			v = NewTag(num, v)
		case ctxIndefArray:
			top.items = append(top.items, v)
			return CBORValue{}, false, nil
		case ctxIndefMap:
			if !top.haveKey {
				top.pendingKey = v
				top.haveKey = true
				return CBORValue{}, false, nil
			}
			top.pairs = append(top.pairs, MapPair{Key: top.pendingKey, Value: v})
			top.haveKey = false
			return CBORValue{}, false, nil
		default:
			return CBORValue{}, false, InternalError{}
		}
	}
}

// prealloc caps how much capacity a definite array/map header
// preallocates, so that a maliciously large count (before any element
// has actually arrived) cannot be used to force a huge allocation.
func prealloc(n uint64) int {
	const max = 1024
	if n > max {
		return max
	}
	return int(n)
}
