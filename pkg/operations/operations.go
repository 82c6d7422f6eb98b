package operations

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Operation names as seen by hosts.
const (
	OpToUpperCase    = "toUpperCase"
	OpToLowerCase    = "toLowerCase"
	OpCharacterCount = "characterCount"
	OpWordCount      = "wordCount"
	OpReverseText    = "reverseText"
	OpTrimText       = "trimText"
)

// Func is the signature shared by every operation.
type Func func(Context) string

// TextOperations holds the six operations. It is immutable after New.
type TextOperations struct {
	lang language.Tag
}

// Option configures TextOperations.
type Option func(*TextOperations)

// WithLanguage sets the language used for case mapping (e.g. Turkish dotted i).
func WithLanguage(tag language.Tag) Option {
	return func(t *TextOperations) {
		t.lang = tag
	}
}

// New creates the operation set. Case mapping defaults to language.Und.
func New(opts ...Option) *TextOperations {
	t := &TextOperations{lang: language.Und}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Language returns the case mapping language.
func (t *TextOperations) Language() language.Tag {
	return t.lang
}

// ToUpperCase maps every letter of the input to upper case.
func (t *TextOperations) ToUpperCase(c Context) string {
	// Casers keep state between calls and must not be shared across goroutines.
	return cases.Upper(t.lang).String(c.Input())
}

// ToLowerCase maps every letter of the input to lower case.
func (t *TextOperations) ToLowerCase(c Context) string {
	return cases.Lower(t.lang).String(c.Input())
}

// CharacterCount reports the input length in bytes.
func (t *TextOperations) CharacterCount(c Context) string {
	return "Character count: " + strconv.Itoa(len(c.Input()))
}

// WordCount reports the number of whitespace-delimited tokens.
func (t *TextOperations) WordCount(c Context) string {
	return "Word count: " + strconv.Itoa(len(strings.Fields(c.Input())))
}

// ReverseText reverses the input byte by byte.
func (t *TextOperations) ReverseText(c Context) string {
	b := []byte(c.Input())
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// TrimText strips leading and trailing whitespace.
func (t *TextOperations) TrimText(c Context) string {
	return strings.TrimSpace(c.Input())
}

// Names returns the operation names in declaration order.
func Names() []string {
	return []string{
		OpToUpperCase,
		OpToLowerCase,
		OpCharacterCount,
		OpWordCount,
		OpReverseText,
		OpTrimText,
	}
}

// Functions returns the registration table. A new map is built on every call.
func (t *TextOperations) Functions() map[string]Func {
	return map[string]Func{
		OpToUpperCase:    t.ToUpperCase,
		OpToLowerCase:    t.ToLowerCase,
		OpCharacterCount: t.CharacterCount,
		OpWordCount:      t.WordCount,
		OpReverseText:    t.ReverseText,
		OpTrimText:       t.TrimText,
	}
}

// Func returns the operation registered under name.
func (t *TextOperations) Func(name string) (Func, bool) {
	fn, ok := t.Functions()[name]
	return fn, ok
}
