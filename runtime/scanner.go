package cbor

// scanPhase identifies which of the Scanner's three states is active:
// Head (awaiting an initial byte), Arg (gathering a big-endian
// argument), or Pay (gathering a byte/text string payload).
type scanPhase int

const (
	phaseHead scanPhase = iota
	phaseArg
	phasePay
)

// ScanState is the Scanner's resumable state between bytes. Its zero
// value is Head, ready to scan the first byte of a token.
type ScanState struct {
	phase   scanPhase
	kind    TokenKind
	acc     uint64
	pending int
	width   int         // phaseArg, kind == TokenFloat: on-wire width in bytes
	pay     *ByteBuffer // non-nil only in phasePay
}

// ScannerLimits configures the caps the Scanner enforces before
// gathering a byte/text string payload or committing to a definite
// array/map count. A zero limit means unlimited (the platform
// maximum).
type ScannerLimits struct {
	MaxBstrLen  uint64
	MaxTstrLen  uint64
	MaxArrayLen uint64
	MaxMapLen   uint64
}

// DefaultScannerLimits returns the limits the package-level decode
// helpers use: the platform maximum for every cap, i.e. effectively
// unlimited.
func DefaultScannerLimits() ScannerLimits {
	return ScannerLimits{}
}

func (l ScannerLimits) check(kind TokenKind, count uint64) error {
	var max uint64
	switch kind {
	case TokenBstr:
		max = l.MaxBstrLen
	case TokenTstr:
		max = l.MaxTstrLen
	case TokenArray:
		max = l.MaxArrayLen
	case TokenMap:
		max = l.MaxMapLen
	default:
		return nil
	}
	if max > 0 && count > max {
		return ExcessiveError{Count: count}
	}
	return nil
}

// Scanner is a resumable byte-level lexer: it consumes an arbitrarily
// chunked CBOR byte stream and emits exactly one Token each time
// enough bytes have arrived to complete one, distinguishing head
// bytes, argument bytes, and payload bytes of variable width.
//
// A Scanner does no I/O of its own; the caller supplies bytes one at a
// time (Feed) or in slices (Scan). It performs no canonical-encoding
// checks, no tag-semantic interpretation, and no UTF-8 validation of
// text-string payloads — those are explicitly out of scope; see the
// package doc comment.
type Scanner struct {
	state  ScanState
	limits ScannerLimits
}

// NewScanner constructs a Scanner with the given limits, ready to scan
// from the start of a CBOR data item.
func NewScanner(limits ScannerLimits) *Scanner {
	return &Scanner{limits: limits}
}

// State returns the Scanner's current resumable state, e.g. to move a
// partially-scanned token to a different Scanner instance.
func (s *Scanner) State() ScanState { return s.state }

// Reset discards any partially-scanned token and returns the Scanner to
// its initial Head state. Feed (and so Scan) already returns the
// Scanner to Head when it reports an error.
func (s *Scanner) Reset() { s.state = ScanState{} }

// Feed consumes one byte. It returns (token, true, nil) once a token
// is complete, (zero Token, false, nil) if more bytes are needed, or
// (zero Token, false, err) if the byte is invalid for the current
// state. After an error, the Scanner has been reset to Head.
func (s *Scanner) Feed(b byte) (Token, bool, error) {
	next, tok, complete, err := scanStep(s.state, b, s.limits)
	if err != nil {
		s.state = ScanState{}
		return Token{}, false, err
	}
	s.state = next
	return tok, complete, nil
}

// Scan consumes bytes from bs until one token is complete, an error
// occurs, or bs is exhausted. It returns the token (if complete),
// whether it is complete, and the unconsumed remainder of bs. End of
// input with a partial token is not itself an error; see ScanStrict
// for a variant that treats it as one.
func (s *Scanner) Scan(bs []byte) (tok Token, rest []byte, complete bool, err error) {
	for i, b := range bs {
		tok, complete, err = s.Feed(b)
		if err != nil {
			return Token{}, bs[i+1:], false, err
		}
		if complete {
			return tok, bs[i+1:], true, nil
		}
	}
	return Token{}, nil, false, nil
}

// ScanStrict behaves like Scan but reports UnexpectedEOFError if bs is
// exhausted while a token is still partially scanned, for callers that
// have asserted the stream has ended.
func (s *Scanner) ScanStrict(bs []byte) (tok Token, rest []byte, complete bool, err error) {
	tok, rest, complete, err = s.Scan(bs)
	if err == nil && !complete {
		return Token{}, rest, false, UnexpectedEOFError{}
	}
	return tok, rest, complete, err
}

// scanStep is the pure state-transition function underlying Scanner:
// given a state and one byte, it produces the next state and, when a
// token completes, the token itself. Scanner.Feed is a thin stateful
// wrapper around it, and Scan and ScanStrict reach it through Feed.
func scanStep(state ScanState, b byte, limits ScannerLimits) (next ScanState, tok Token, complete bool, err error) {
	switch state.phase {
	case phaseHead:
		return scanHead(b, limits)
	case phaseArg:
		return scanArg(state, b, limits)
	case phasePay:
		return scanPay(state, b)
	default:
		return ScanState{}, Token{}, false, InternalError{}
	}
}

func scanHead(b byte, limits ScannerLimits) (ScanState, Token, bool, error) {
	mt := majorType(b)
	ai := addInfo(b)

	switch mt {
	case majorUint:
		return headDirectOrArg(b, ai, TokenUint, limits)
	case majorNint:
		return headDirectOrArg(b, ai, TokenNint, limits)
	case majorBstr:
		return headStringOrContainer(b, ai, TokenBstr, limits)
	case majorTstr:
		return headStringOrContainer(b, ai, TokenTstr, limits)
	case majorArray:
		return headCountOrIndef(b, ai, TokenArray, limits)
	case majorMap:
		return headCountOrIndef(b, ai, TokenMap, limits)
	case majorTag:
		if ai == aiIndefinite || ai == 28 || ai == 29 || ai == 30 {
			return ScanState{}, Token{}, false, UnexpectedHeadError{Head: b}
		}
		return headDirectOrArg(b, ai, TokenTag, limits)
	case majorSimple:
		return scanHeadSimple(b, ai)
	default:
		return ScanState{}, Token{}, false, UnexpectedHeadError{Head: b}
	}
}

// headDirectOrArg handles the uniform "ai 0..23 direct, 24..27 gather
// N bytes, 28..30 invalid, 31 invalid" layout shared by Uint, Nint,
// and Tag.
func headDirectOrArg(b byte, ai uint8, kind TokenKind, limits ScannerLimits) (ScanState, Token, bool, error) {
	if ai <= aiDirectMax {
		return ScanState{}, directToken(kind, uint64(ai), 0), true, nil
	}
	width := argWidth(ai)
	if width == 0 {
		return ScanState{}, Token{}, false, UnexpectedHeadError{Head: b}
	}
	return ScanState{phase: phaseArg, kind: kind, pending: width}, Token{}, false, nil
}

// headStringOrContainer handles the byte-string/text-string head
// layout: ai 0 is an empty string, 1..23 is a direct payload length,
// 24..27 gathers a count argument, 28..30 are invalid, and 31 opens an
// indefinite-length string.
func headStringOrContainer(b byte, ai uint8, kind TokenKind, limits ScannerLimits) (ScanState, Token, bool, error) {
	switch {
	case ai == 0:
		return ScanState{}, directToken(kind, 0, 0), true, nil
	case ai <= aiDirectMax:
		n := uint64(ai)
		if err := limits.check(kind, n); err != nil {
			return ScanState{}, Token{}, false, err
		}
		return ScanState{phase: phasePay, kind: kind, pending: int(n), pay: getByteBuffer()}, Token{}, false, nil
	case ai == aiIndefinite:
		return ScanState{}, indefToken(kind), true, nil
	default:
		width := argWidth(ai)
		if width == 0 {
			return ScanState{}, Token{}, false, UnexpectedHeadError{Head: b}
		}
		return ScanState{phase: phaseArg, kind: kind, pending: width}, Token{}, false, nil
	}
}

// headCountOrIndef handles the array/map head layout: ai 0..23 carry
// the element/pair count directly, 24..27 gather a count argument,
// 28..30 are invalid, and 31 opens an indefinite-length container.
func headCountOrIndef(b byte, ai uint8, kind TokenKind, limits ScannerLimits) (ScanState, Token, bool, error) {
	switch {
	case ai <= aiDirectMax:
		n := uint64(ai)
		if err := limits.check(kind, n); err != nil {
			return ScanState{}, Token{}, false, err
		}
		return ScanState{}, directToken(kind, n, 0), true, nil
	case ai == aiIndefinite:
		return ScanState{}, indefToken(kind), true, nil
	default:
		width := argWidth(ai)
		if width == 0 {
			return ScanState{}, Token{}, false, UnexpectedHeadError{Head: b}
		}
		return ScanState{phase: phaseArg, kind: kind, pending: width}, Token{}, false, nil
	}
}

func scanHeadSimple(b byte, ai uint8) (ScanState, Token, bool, error) {
	switch {
	case ai <= aiDirectMax:
		return ScanState{}, tokSimple(ai), true, nil
	case ai == aiUint8:
		return ScanState{phase: phaseArg, kind: TokenSimple, pending: 1}, Token{}, false, nil
	case ai == aiUint16:
		return ScanState{phase: phaseArg, kind: TokenFloat, pending: 2, width: 2}, Token{}, false, nil
	case ai == aiUint32:
		return ScanState{phase: phaseArg, kind: TokenFloat, pending: 4, width: 4}, Token{}, false, nil
	case ai == aiUint64:
		return ScanState{phase: phaseArg, kind: TokenFloat, pending: 8, width: 8}, Token{}, false, nil
	case ai == aiIndefinite:
		return ScanState{}, tokBreak(), true, nil
	default:
		return ScanState{}, Token{}, false, UnexpectedHeadError{Head: b}
	}
}

func scanArg(state ScanState, b byte, limits ScannerLimits) (ScanState, Token, bool, error) {
	acc := (state.acc << 8) | uint64(b)
	pending := state.pending - 1
	if pending > 0 {
		return ScanState{phase: phaseArg, kind: state.kind, acc: acc, pending: pending, width: state.width}, Token{}, false, nil
	}

	switch state.kind {
	case TokenBstr, TokenTstr:
		if acc == 0 {
			return ScanState{}, directToken(state.kind, 0, 0), true, nil
		}
		if err := limits.check(state.kind, acc); err != nil {
			return ScanState{}, Token{}, false, err
		}
		return ScanState{phase: phasePay, kind: state.kind, pending: int(acc), pay: getByteBuffer()}, Token{}, false, nil
	case TokenArray, TokenMap:
		if err := limits.check(state.kind, acc); err != nil {
			return ScanState{}, Token{}, false, err
		}
		return ScanState{}, directToken(state.kind, acc, 0), true, nil
	default: // Uint, Nint, Tag, Simple, Float
		return ScanState{}, directToken(state.kind, acc, state.width), true, nil
	}
}

func scanPay(state ScanState, b byte) (ScanState, Token, bool, error) {
	state.pay.WriteByte(b)
	pending := state.pending - 1
	if pending > 0 {
		return ScanState{phase: phasePay, kind: state.kind, pending: pending, pay: state.pay}, Token{}, false, nil
	}
	out := state.pay.Take()
	putByteBuffer(state.pay)
	if state.kind == TokenBstr {
		return ScanState{}, tokBstr(out), true, nil
	}
	return ScanState{}, tokTstr(out), true, nil
}

// directToken builds the token for a kind whose argument is already
// fully known (no further bytes to gather). width is only meaningful
// for TokenFloat.
func directToken(kind TokenKind, n uint64, width int) Token {
	switch kind {
	case TokenUint:
		return tokUint(n)
	case TokenNint:
		return tokNint(n)
	case TokenBstr:
		return tokBstr(nil)
	case TokenTstr:
		return tokTstr(nil)
	case TokenArray:
		return tokArray(n)
	case TokenMap:
		return tokMap(n)
	case TokenTag:
		return tokTag(n)
	case TokenSimple:
		return tokSimple(byte(n))
	case TokenFloat:
		return tokFloat(n, width)
	default:
		return Token{}
	}
}

func indefToken(kind TokenKind) Token {
	switch kind {
	case TokenBstr:
		return tokBstrX()
	case TokenTstr:
		return tokTstrX()
	case TokenArray:
		return tokArrayX()
	case TokenMap:
		return tokMapX()
	default:
		return Token{}
	}
}
