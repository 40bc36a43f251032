package parser

import (
	"io"

	"go.uber.org/zap"
)

// Record is one game read from PGN: its tags, the SAN text of its main
// line and its result token. Comments, NAGs and variations are dropped.
type Record struct {
	Tags   map[string]string
	Moves  []string
	Result string
	Line   int // line of the first token
}

// Tag returns the value of a tag, or "" when absent.
func (r *Record) Tag(name string) string {
	return r.Tags[name]
}

// Parser parses PGN input into game records.
type Parser struct {
	lexer        *Lexer
	logger       *zap.Logger
	currentToken Token
	started      bool
}

// NewParser creates a new parser for the given reader. logger may be nil.
func NewParser(r io.Reader, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		lexer:  NewLexer(r, logger),
		logger: logger,
	}
}

func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses the next game. It returns nil at end of input.
func (p *Parser) ParseGame() *Record {
	if !p.started {
		p.nextToken()
		p.started = true
	}

	p.skipToNextGame()
	if p.currentToken.Type == EOFToken {
		return nil
	}

	rec := &Record{Tags: make(map[string]string), Line: p.currentToken.Line}
	p.parseOptTagList(rec)
	p.parseMoveList(rec)
	p.skipComments()

	if p.currentToken.Type == TerminatingResult {
		rec.Result = p.currentToken.Text
		p.nextToken()
	} else if p.currentToken.Type != EOFToken && p.currentToken.Type != TagToken {
		p.logger.Warn("pgn_unexpected_token",
			zap.String("token", p.currentToken.Type.String()),
			zap.Int("line", p.currentToken.Line),
		)
	}
	if rec.Result != "" && (rec.Tags["Result"] == "" || rec.Tags["Result"] == "?") {
		rec.Tags["Result"] = rec.Result
	}
	return rec
}

// ParseAllGames parses every game in the input.
func (p *Parser) ParseAllGames() []*Record {
	var games []*Record
	for {
		rec := p.ParseGame()
		if rec == nil {
			return games
		}
		games = append(games, rec)
	}
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, MoveNumber, TerminatingResult:
			return
		default:
			p.nextToken()
		}
	}
}

// parseOptTagList parses zero or more tag pairs.
func (p *Parser) parseOptTagList(rec *Record) {
	for p.currentToken.Type == TagToken {
		name := p.currentToken.Text
		p.nextToken()
		if p.currentToken.Type != StringToken {
			p.logger.Warn("pgn_missing_tag_string", zap.String("tag", name), zap.Int("line", p.currentToken.Line))
			continue
		}
		rec.Tags[name] = p.currentToken.Text
		p.nextToken()
	}
}

// parseMoveList collects main-line moves, skipping numbers, comments,
// NAGs and variations.
func (p *Parser) parseMoveList(rec *Record) {
	for {
		switch p.currentToken.Type {
		case MoveToken:
			rec.Moves = append(rec.Moves, p.currentToken.Text)
		case MoveNumber, CommentToken, NAGToken:
		case RAVStart:
			p.skipVariation()
		default:
			return
		}
		p.nextToken()
	}
}

// skipVariation skips a parenthesised variation, including nested ones,
// leaving the closing RAVEnd as the current token.
func (p *Parser) skipVariation() {
	depth := 1
	for depth > 0 {
		p.nextToken()
		switch p.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken:
			p.logger.Warn("pgn_missing_variation_end", zap.Int("line", p.currentToken.Line))
			return
		}
	}
}

func (p *Parser) skipComments() {
	for p.currentToken.Type == CommentToken || p.currentToken.Type == NAGToken {
		p.nextToken()
	}
}
