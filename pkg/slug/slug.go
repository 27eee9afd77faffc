package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength limits the slug to n characters. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls lowercase conversion. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Make turns s into a filename and URL safe slug. Diacritics are folded to
// their ASCII base letter, every run of other characters becomes a single
// separator, and leading or trailing separators are dropped.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s = fold(s)

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	result := b.String()
	if cfg.maxLength > 0 {
		if rs := []rune(result); len(rs) > cfg.maxLength {
			result = string(rs[:cfg.maxLength])
			if cfg.separator != "" {
				result = strings.TrimRight(result, cfg.separator)
			}
		}
	}
	return result
}

// letters that do not decompose into a base letter plus combining marks.
var foldMap = map[rune]string{
	'ß': "s", 'ø': "o", 'Ø': "O", 'æ': "a", 'Æ': "A", 'œ': "o", 'Œ': "O",
	'ł': "l", 'Ł': "L", 'đ': "d", 'Đ': "D", 'ð': "d", 'Ð': "D", 'þ': "th", 'Þ': "TH",
}

// fold strips combining marks after canonical decomposition
// ("é" -> "e", "ż" -> "z") and maps the remaining special letters.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	if !strings.ContainsFunc(folded, func(r rune) bool { _, ok := foldMap[r]; return ok }) {
		return folded
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if repl, ok := foldMap[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
