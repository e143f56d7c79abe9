// Package names reconstructs full personal names from free-text tokens.
package names

import (
	"regexp"
	"strings"
)

// Entry binds a canonical full name to the contiguous token sequence
// that spells it in the source text.
type Entry struct {
	Name   string
	Tokens []string
}

var familyKeyword = regexp.MustCompile(`(?i)(^|\W)family($|\W)`)

// Reconciler rewrites token lists from who/with fields: dictionary token
// runs collapse into canonical full names, the family keyword expands to
// the household roster, aliases are corrected and known stray fragments
// dropped. Tokens unknown to every table pass through unchanged.
type Reconciler struct {
	entries  []Entry
	family   []string
	aliases  map[string]string
	residual map[string]struct{}
}

// New builds a Reconciler. Dictionary order is significant: the first
// entry whose token sequence matches at a position wins.
func New(entries []Entry, family []string, aliases map[string]string, residual []string) *Reconciler {
	r := &Reconciler{
		entries:  entries,
		family:   family,
		aliases:  make(map[string]string, len(aliases)),
		residual: make(map[string]struct{}, len(residual)),
	}
	for alias, canonical := range aliases {
		r.aliases[strings.ToLower(alias)] = canonical
	}
	for _, token := range residual {
		r.residual[token] = struct{}{}
	}
	return r
}

// Reconcile maps an ordered token list to an ordered list of full names
// and leftover tokens. Empty input yields empty output.
func (r *Reconciler) Reconcile(tokens []string) []string {
	joined := r.joinNames(tokens)
	expanded := r.expandFamily(joined)
	out := make([]string, 0, len(expanded))
	for _, token := range expanded {
		if canonical, ok := r.aliases[strings.ToLower(token)]; ok {
			token = canonical
		}
		if _, drop := r.residual[token]; drop {
			continue
		}
		out = append(out, token)
	}
	return out
}

// joinNames is a single greedy left-to-right pass: at each position the
// first dictionary entry matching element-for-element is emitted and the
// cursor advances past its tokens. No backtracking.
func (r *Reconciler) joinNames(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		entry, ok := r.matchAt(tokens, i)
		if ok {
			out = append(out, entry.Name)
			i += len(entry.Tokens)
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

func (r *Reconciler) matchAt(tokens []string, pos int) (Entry, bool) {
	for _, entry := range r.entries {
		if len(entry.Tokens) == 0 || pos+len(entry.Tokens) > len(tokens) {
			continue
		}
		matched := true
		for j, want := range entry.Tokens {
			if tokens[pos+j] != want {
				matched = false
				break
			}
		}
		if matched {
			return entry, true
		}
	}
	return Entry{}, false
}

func (r *Reconciler) expandFamily(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if familyKeyword.MatchString(token) {
			out = append(out, r.family...)
			continue
		}
		out = append(out, token)
	}
	return out
}
