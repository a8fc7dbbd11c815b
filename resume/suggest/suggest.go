package suggest

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	KindSummary = "summary"
	KindBullets = "bullets"

	defaultTitle   = "professional"
	defaultRole    = "Role"
	defaultCompany = "Company"
)

// ErrUnsupportedSuggestionType is returned for any kind other than summary or bullets.
var ErrUnsupportedSuggestionType = errors.New("unsupported suggestion type")

// Suggestion holds the generated text. Summary suggestions fill Text,
// bullet suggestions fill Bullets.
type Suggestion struct {
	Text    string   `json:"text,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// Suggest produces templated suggestions from a small context. Output is
// deterministic for a given context and kind.
func Suggest(context map[string]any, kind string) (Suggestion, error) {
	switch kind {
	case KindSummary:
		return Suggestion{Text: summaryText(context)}, nil
	case KindBullets:
		return Suggestion{Bullets: bulletTexts(context)}, nil
	default:
		return Suggestion{}, fmt.Errorf("%w: %q", ErrUnsupportedSuggestionType, kind)
	}
}

func summaryText(ctx map[string]any) string {
	title := defaultTitle
	if v, ok := ctx["title"].(string); ok && v != "" {
		title = v
	}
	skills := strings.Join(stringItems(ctx["skills"]), ", ")

	text := TitleCase(title) + " with a track record of delivering measurable outcomes. " +
		"Skilled in " + skills + ". Known for clear communication, ownership, and continuous improvement. " +
		"Seeking to leverage expertise to drive impact in a high-performing team."
	return strings.TrimSpace(text)
}

func bulletTexts(ctx map[string]any) []string {
	role := valueOr(ctx["role"], defaultRole)
	company := valueOr(ctx["company"], defaultCompany)
	return []string{
		fmt.Sprintf("Drove end-to-end initiatives as %s at %s, improving key KPIs by 15%%+.", role, company),
		"Collaborated cross-functionally to ship features on time while reducing defects.",
		"Automated repetitive workflows to save team 4–6 hrs/week and increase consistency.",
		"Translated business goals into actionable plans with clear milestones and metrics.",
	}
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest. Any non-letter starts a new word, so "o'neil-smith" becomes
// "O'Neil-Smith".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// stringItems keeps the non-empty strings of a JSON array value.
func stringItems(v any) []string {
	var out []string
	switch items := v.(type) {
	case []string:
		for _, s := range items {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// valueOr formats v, falling back to def when v is missing or empty.
func valueOr(v any, def string) string {
	if isEmpty(v) {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return literal(v)
}

// literal renders a decoded JSON value the way a Python f-string shows it,
// so true prints as True and 3 prints without a fraction. Object keys are
// sorted since decoded maps carry no order.
func literal(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case string:
		return "'" + strings.ReplaceAll(t, "'", `\'`) + "'"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = literal(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = literal(k) + ": " + literal(t[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
