package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Lexer tokenizes PGN input.
type Lexer struct {
	reader   *bufio.Reader
	logger   *zap.Logger
	line     string
	pos      int
	lineNum  int
	ravLevel int
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}
	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['+'] = CheckSymbol
	chTab['#'] = CheckSymbol
	chTab['.'] = Dot
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['%'] = Percent
	chTab[';'] = Percent
	chTab['\\'] = Escape
	chTab['*'] = Star
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte("KQRNBxX-=Oo0+#") {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader. Malformed input is
// skipped and reported to logger at warn level; nil means no logging.
func NewLexer(r io.Reader, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		logger: logger,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func (l *Lexer) skipWhile(class TokenType) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == class {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol, or NoToken for skipped input.
func (l *Lexer) getNextSymbol() Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return Token{Type: EOFToken}
		}
		return Token{Type: NoToken}
	}

	ch := l.currentChar()
	start := l.pos
	l.pos++

	switch chTab[ch] {
	case Whitespace, TagEnd, Dot, CheckSymbol:
		return Token{Type: NoToken}

	case TagStart:
		return l.gatherTag()

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case CommentEnd:
		l.warn("unmatched comment end")
		return Token{Type: NoToken}

	case NAGToken:
		l.skipWhile(Digit)
		return Token{Type: NAGToken, Text: l.line[start:l.pos]}

	case Annotate:
		l.skipWhile(Annotate)
		return Token{Type: NAGToken, Text: annotationToNAG(l.line[start:l.pos])}

	case RAVStart:
		l.ravLevel++
		return Token{Type: RAVStart}

	case RAVEnd:
		if l.ravLevel == 0 {
			l.warn("too many ')'")
			return Token{Type: NoToken}
		}
		l.ravLevel--
		return Token{Type: RAVEnd}

	case Percent:
		// Rest-of-line comment
		l.pos = len(l.line)
		return Token{Type: NoToken}

	case Escape:
		l.pos = len(l.line)
		return Token{Type: NoToken}

	case Alpha:
		return l.gatherMove(start)

	case Digit:
		return l.gatherNumeric(start)

	case Star:
		return Token{Type: TerminatingResult, Text: "*"}
	}

	l.warn("unknown character", zap.String("char", string(ch)))
	l.skipWhile(ErrorToken)
	return Token{Type: NoToken}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() Token {
	l.skipWhile(Whitespace)
	start := l.pos
	for l.pos < len(l.line) {
		if c := chTab[l.currentChar()]; c != Alpha && c != Digit && l.currentChar() != '_' {
			break
		}
		l.pos++
	}
	if l.pos == start {
		l.warn("missing tag name")
		return Token{Type: NoToken}
	}
	return Token{Type: TagToken, Text: l.line[start:l.pos]}
}

// gatherString gathers a quoted string, honouring backslash escapes.
func (l *Lexer) gatherString() Token {
	var sb strings.Builder
	escaped := false
	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.pos++
		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return Token{Type: StringToken, Text: sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}
	l.warn("missing closing quote")
	return Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() Token {
	var sb strings.Builder
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			sb.WriteString(l.line[l.pos : l.pos+end])
			l.pos += end + 1
			return Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
		}
		sb.WriteString(l.line[l.pos:])
		if !l.readLine() {
			l.warn("missing end of comment")
			return Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
		}
	}
}

// gatherMove gathers SAN move text starting at start.
func (l *Lexer) gatherMove(start int) Token {
	if !moveChars[l.line[start]] {
		l.warn("unknown character", zap.String("char", l.line[start:start+1]))
		l.skipWhile(Alpha)
		return Token{Type: NoToken}
	}
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.pos++
	}
	text := l.line[start:l.pos]
	if !moveSeemsValid(text) {
		l.warn("unknown move text", zap.String("text", text))
		return Token{Type: NoToken}
	}
	if strings.HasPrefix(text, "o-o") {
		text = strings.ToUpper(text)
	}
	return Token{Type: MoveToken, Text: text}
}

// gatherNumeric handles move numbers, results and 0-0 castling.
func (l *Lexer) gatherNumeric(start int) Token {
	rest := l.line[start:]
	for _, tok := range []struct {
		prefix string
		typ    TokenType
		text   string
	}{
		{"1/2-1/2", TerminatingResult, "1/2-1/2"},
		{"1-0", TerminatingResult, "1-0"},
		{"0-1", TerminatingResult, "0-1"},
		{"0-0-0", MoveToken, "O-O-O"},
		{"0-0", MoveToken, "O-O"},
	} {
		if strings.HasPrefix(rest, tok.prefix) {
			l.pos = start + len(tok.prefix)
			if tok.typ == MoveToken {
				l.skipWhile(CheckSymbol)
			}
			return Token{Type: tok.typ, Text: tok.text}
		}
	}

	l.skipWhile(Digit)
	n, err := strconv.Atoi(l.line[start:l.pos])
	if err != nil {
		l.warn("bad move number", zap.String("text", l.line[start:l.pos]))
		return Token{Type: NoToken}
	}
	l.skipWhile(Dot)
	return Token{Type: MoveNumber, MoveNum: n}
}

func (l *Lexer) warn(msg string, fields ...zap.Field) {
	l.logger.Warn("pgn_"+strings.ReplaceAll(msg, " ", "_"), append(fields, zap.Int("line", l.lineNum))...)
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}

// moveSeemsValid reports whether text could be SAN: castling, or text with
// at least one file and one rank.
func moveSeemsValid(text string) bool {
	text = strings.TrimRight(text, "+#")
	switch text {
	case "O-O", "O-O-O", "o-o", "o-o-o":
		return true
	}
	hasFile, hasRank := false, false
	for i := 0; i < len(text); i++ {
		c := text[i]
		hasFile = hasFile || (c >= 'a' && c <= 'h')
		hasRank = hasRank || (c >= '1' && c <= '8')
	}
	return hasFile && hasRank
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
