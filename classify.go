package recid

import (
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/hupe1980/recid/formkey"
)

var (
	relaxedName = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)
	strictName  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Classifier turns arbitrary user input into an ID. The first matching rule
// wins:
//
//  1. an allowed prefix rune is stripped and reported
//  2. FormKey, such as "0x1A3~MyMod.esm" or "0001A3:MyMod.esm"
//  3. FormID, exactly 8 hex digits with an optional "0x"
//  4. ModKey, a plugin file name such as "Skyrim.esm"
//  5. name (EditorID)
//  6. anything else is Invalid and keeps the original input
//
// A Classifier is immutable and safe for concurrent use.
type Classifier struct {
	opts classifierOptions
}

// NewClassifier returns a Classifier configured with opts.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

var defaultClassifier = NewClassifier()

// Classify classifies input with the default classifier.
func Classify(input string) ID {
	id, _, _ := defaultClassifier.Classify(input)
	return id
}

// Classify returns the ID for input along with the stripped prefix rune, if
// any. It never fails: unparseable input yields an Invalid ID and the empty
// string yields the null ID.
func (c *Classifier) Classify(input string) (ID, rune, bool) {
	if input == "" {
		return ID{}, 0, false
	}

	text, prefix, hasPrefix := c.stripPrefix(input)
	if text == "" {
		return NewInvalid(input), prefix, hasPrefix
	}

	if formkey.LooksLikeFormKey(text) {
		fk, err := formkey.ParseFormKey(text)
		if err != nil {
			return NewInvalid(input), prefix, hasPrefix
		}
		return OfFormKey(fk), prefix, hasPrefix
	}

	if fid, err := formkey.ParseFormID(text); err == nil {
		if c.opts.resolver != nil {
			if fk := c.opts.resolver.ResolveFormID(fid); !fk.IsNull() {
				return OfFormKey(fk), prefix, hasPrefix
			}
		}
		return OfFormID(fid), prefix, hasPrefix
	}

	if mk, err := formkey.ParseModKey(text); err == nil {
		return OfModKey(mk), prefix, hasPrefix
	}

	if c.namePattern().MatchString(text) {
		return Name(text), prefix, hasPrefix
	}

	return NewInvalid(input), prefix, hasPrefix
}

func (c *Classifier) stripPrefix(input string) (string, rune, bool) {
	if len(c.opts.prefixes) == 0 {
		return input, 0, false
	}
	r, size := utf8.DecodeRuneInString(input)
	if !slices.Contains(c.opts.prefixes, r) {
		return input, 0, false
	}
	return input[size:], r, true
}

func (c *Classifier) namePattern() *regexp.Regexp {
	if c.opts.strict {
		return strictName
	}
	return relaxedName
}

// IsValidEditorID reports whether s is a usable EditorID. If relaxed is set,
// spaces and underscores are allowed. A leading rune from prefixes is ignored.
func IsValidEditorID(s string, relaxed bool, prefixes ...rune) bool {
	c := &Classifier{opts: classifierOptions{prefixes: prefixes, strict: !relaxed}}
	text, _, _ := c.stripPrefix(s)
	if text == "" {
		return false
	}
	return c.namePattern().MatchString(text)
}
