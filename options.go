package recid

import "github.com/hupe1980/recid/formkey"

type classifierOptions struct {
	prefixes []rune
	resolver FormIDResolver
	strict   bool
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*classifierOptions)

// WithAllowedPrefixes configures runes that may precede an identifier. A
// matching first rune is stripped before classification and reported back to
// the caller, which typically uses it as an operator such as '-' or '!'.
func WithAllowedPrefixes(prefixes ...rune) ClassifierOption {
	return func(o *classifierOptions) {
		o.prefixes = append(o.prefixes, prefixes...)
	}
}

// WithFormIDResolver configures a resolver that upgrades bare FormIDs to
// FormKeys. If nil is passed, FormIDs are returned as is.
func WithFormIDResolver(r FormIDResolver) ClassifierOption {
	return func(o *classifierOptions) {
		o.resolver = r
	}
}

// WithStrictNames restricts names to ASCII letters and digits. By default
// spaces and underscores are allowed too.
func WithStrictNames() ClassifierOption {
	return func(o *classifierOptions) {
		o.strict = true
	}
}

// FormIDResolver maps a load-order dependent FormID to its FormKey. It returns
// the null FormKey if id is unknown.
type FormIDResolver interface {
	ResolveFormID(id formkey.FormID) formkey.FormKey
}

// FormIDResolverFunc adapts a function to a FormIDResolver.
type FormIDResolverFunc func(id formkey.FormID) formkey.FormKey

// ResolveFormID implements FormIDResolver.
func (f FormIDResolverFunc) ResolveFormID(id formkey.FormID) formkey.FormKey { return f(id) }
