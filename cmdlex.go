// Package cmdlex is the public façade: a package-level
// Tokenize/Parse/RebuildCommand using a lazily-built default Model (the
// Minecraft dialect, pkgs/grammar), plus New for a custom grammar
// description. The default Model is built once, on first use, behind a
// sync.Once rather than at package-init time or via mutable global state.
package cmdlex

import (
	"sync"

	"github.com/aledsdavies/cmdlex/pkgs/grammar"
	"github.com/aledsdavies/cmdlex/pkgs/lexer"
	"github.com/aledsdavies/cmdlex/pkgs/model"
	"github.com/aledsdavies/cmdlex/pkgs/param"
)

// Parser wraps a built Model, exposing Tokenize/Parse against it.
type Parser struct {
	model *model.Model
}

// New builds a Parser from a Description: either a pre-built
// model.Description/*model.Description, or a map[string]any-shaped
// in-memory record. A missing region/state/group/template reference is a
// fatal *errs.ModelError, raised once, here.
func New(desc any) (*Parser, error) {
	d, err := model.DecodeDescription(desc)
	if err != nil {
		return nil, err
	}
	m, err := model.Build(d)
	if err != nil {
		return nil, err
	}
	return &Parser{model: m}, nil
}

// Tokenize drives the pushdown tokenizer over line, returning the raw
// top-level token forest.
func (p *Parser) Tokenize(line string) ([]*lexer.Token, error) {
	return lexer.Tokenize(p.model, line)
}

// Parse tokenizes line and promotes the result into a typed Parameter
// sequence.
func (p *Parser) Parse(line string) ([]param.Parameter, error) {
	tokens, err := p.Tokenize(line)
	if err != nil {
		return nil, err
	}
	return param.Promote(tokens)
}

var (
	defaultOnce   sync.Once
	defaultParser *Parser
	defaultErr    error
)

func defaultParserInstance() (*Parser, error) {
	defaultOnce.Do(func() {
		defaultParser, defaultErr = New(grammar.Minecraft())
	})
	return defaultParser, defaultErr
}

// mustDefaultParser panics if the built-in Minecraft grammar itself fails
// to build, a programmer error in pkgs/grammar, never a caller input
// error, so it is not part of the *errs.ParseError surface.
func mustDefaultParser() *Parser {
	p, err := defaultParserInstance()
	if err != nil {
		panic(err)
	}
	return p
}

// Tokenize runs the default (Minecraft) grammar's tokenizer over line.
func Tokenize(line string) ([]*lexer.Token, error) {
	return mustDefaultParser().Tokenize(line)
}

// Parse runs the default (Minecraft) grammar's tokenizer and promoter over
// line.
func Parse(line string) ([]param.Parameter, error) {
	return mustDefaultParser().Parse(line)
}

// RebuildCommand space-joins each parameter's command-string form.
func RebuildCommand(params []param.Parameter) string {
	return param.RebuildCommand(params)
}
