package restore

import (
	"regexp"

	"github.com/relink-tools/relink/internal/inventory"
)

// rule is one compiled substitution: a short token in link position.
type rule struct {
	short string
	href  string
	re    *regexp.Regexp
}

// Engine applies an inventory's substitutions to document content.
// Construct once per run; Apply is safe to call for any number of documents.
type Engine struct {
	rules []rule
}

// NewEngine compiles one pattern per inventory entry. Each pattern matches
// a bracketed label followed by a parenthesized segment whose entire
// contents equal the short token. The token is quoted so metacharacters in
// it match verbatim; the label match is lazy so it does not swallow the
// rest of the line.
func NewEngine(inv inventory.Inventory) *Engine {
	e := &Engine{rules: make([]rule, 0, len(inv))}
	for _, short := range inv.Tokens() {
		e.rules = append(e.rules, rule{
			short: short,
			href:  inv[short],
			re:    regexp.MustCompile(`\[.*?\]\(` + regexp.QuoteMeta(short) + `\)`),
		})
	}
	return e
}

// Apply rewrites every [label](token) occurrence to [label](href) and
// returns the new content along with the number of links restored. The
// label is preserved byte for byte and the href is inserted literally,
// never interpreted as a replacement template. Tokens appearing outside
// link syntax are left alone.
func (e *Engine) Apply(content string) (string, int) {
	total := 0
	for _, r := range e.rules {
		content = r.re.ReplaceAllStringFunc(content, func(m string) string {
			total++
			// The match ends with "(" + token + ")"; everything before
			// that is the label, brackets included.
			label := m[:len(m)-len(r.short)-2]
			return label + "(" + r.href + ")"
		})
	}
	return content, total
}
