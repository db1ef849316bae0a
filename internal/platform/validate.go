package platform

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/namecheck/internal/validator"
)

// Handle patterns. Go's RE2 has no lookahead, so GitHub's "hyphen must be
// followed by an alphanumeric" becomes an optional hyphen before each
// alphanumeric; the length bound is checked separately.
var (
	githubPattern   = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9])*$`)
	youtubePattern  = regexp.MustCompile(`^[a-zA-Z0-9._]{3,30}$`)
	telegramPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{3,31}$`)
	snapchatPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{1,13}[a-zA-Z0-9]$`)
)

var snapchatForbidden = []string{"__", "--", "._", "_."}

// Valid reports whether username is a syntactically legal handle on the
// platform. Delegated platforms apply their own rules remotely and always
// report true here.
func Valid(id ID, username string) bool {
	switch id {
	case GitHub:
		return len(username) <= 39 && githubPattern.MatchString(username)
	case YouTube:
		return youtubePattern.MatchString(username) && !strings.Contains(username, "..")
	case Telegram:
		return telegramPattern.MatchString(username)
	case Snapchat:
		if !snapchatPattern.MatchString(username) {
			return false
		}
		for _, sub := range snapchatForbidden {
			if strings.Contains(username, sub) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// rule is one necessary condition of a platform's handle syntax.
type rule struct {
	name    string
	message string
	ok      func(string) bool
}

var rules = map[ID][]rule{
	GitHub: {
		lengthRule(1, 39),
		charsetRule("letters, digits or hyphens", isAlnum, '-'),
		{"start", "must start with a letter or digit", func(s string) bool { return s == "" || isAlnumByte(s[0]) }},
		{"end", "must not end with a hyphen", func(s string) bool { return !strings.HasSuffix(s, "-") }},
		{"hyphen", "must not contain consecutive hyphens", func(s string) bool { return !strings.Contains(s, "--") }},
	},
	YouTube: {
		lengthRule(3, 30),
		charsetRule("letters, digits, periods or underscores", isAlnum, '.', '_'),
		{"period", "must not contain consecutive periods", func(s string) bool { return !strings.Contains(s, "..") }},
	},
	Telegram: {
		lengthRule(4, 32),
		{"start", "must start with a letter", func(s string) bool { return s == "" || isLetterByte(s[0]) }},
		charsetRule("letters, digits or underscores", isAlnum, '_'),
	},
	Snapchat: {
		lengthRule(3, 15),
		charsetRule("letters, digits, periods, underscores or hyphens", isAlnum, '.', '_', '-'),
		{"start", "must start with a letter or digit", func(s string) bool { return s == "" || isAlnumByte(s[0]) }},
		{"end", "must end with a letter or digit", func(s string) bool { return s == "" || isAlnumByte(s[len(s)-1]) }},
		{"sequence", "must not contain __, --, ._ or _.", func(s string) bool {
			for _, sub := range snapchatForbidden {
				if strings.Contains(s, sub) {
					return false
				}
			}
			return true
		}},
	},
}

// Check validates username rule by rule and reports every violation.
// A result without errors corresponds exactly to Valid returning true.
func Check(id ID, username string) *validator.Result {
	res := &validator.Result{Subject: string(id), Value: username}
	for _, r := range rules[id] {
		if !r.ok(username) {
			res.AddError(r.name, r.message, nil)
		}
	}
	if !res.HasErrors() && !Valid(id, username) {
		res.AddError("syntax", "is not a valid "+id.Spec().DisplayName+" handle", nil)
	}
	return res
}

func lengthRule(minLen, maxLen int) rule {
	return rule{
		name:    "length",
		message: "must be " + strconv.Itoa(minLen) + "-" + strconv.Itoa(maxLen) + " characters",
		ok: func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= minLen && n <= maxLen
		},
	}
}

func charsetRule(desc string, base func(rune) bool, extra ...rune) rule {
	return rule{
		name:    "charset",
		message: "may only contain " + desc,
		ok: func(s string) bool {
			for _, r := range s {
				if base(r) {
					continue
				}
				allowed := false
				for _, e := range extra {
					if r == e {
						allowed = true
						break
					}
				}
				if !allowed {
					return false
				}
			}
			return true
		},
	}
}

func isAlnum(r rune) bool {
	return r < utf8.RuneSelf && isAlnumByte(byte(r))
}

func isAlnumByte(b byte) bool {
	return isLetterByte(b) || ('0' <= b && b <= '9')
}

func isLetterByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
