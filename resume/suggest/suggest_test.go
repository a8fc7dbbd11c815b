package suggest

import (
	"errors"
	"strings"
	"testing"
)

func TestSuggestSummaryIsDeterministic(t *testing.T) {
	ctx := map[string]any{"title": "engineer", "skills": []any{"Go", "SQL"}}

	first, err := Suggest(ctx, KindSummary)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	second, err := Suggest(ctx, KindSummary)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if first.Text != second.Text {
		t.Fatalf("expected identical text, got %q and %q", first.Text, second.Text)
	}
	if !strings.HasPrefix(first.Text, "Engineer with a track record") {
		t.Fatalf("expected capitalized title prefix, got %q", first.Text)
	}
	if !strings.Contains(first.Text, "Skilled in Go, SQL.") {
		t.Fatalf("expected joined skills, got %q", first.Text)
	}
	if len(first.Bullets) != 0 {
		t.Fatalf("expected no bullets for summary")
	}
}

func TestSuggestSummaryDefaults(t *testing.T) {
	got, err := Suggest(map[string]any{}, KindSummary)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.HasPrefix(got.Text, "Professional with a track record") {
		t.Fatalf("expected default title, got %q", got.Text)
	}
	if !strings.Contains(got.Text, "Skilled in . Known for") {
		t.Fatalf("expected empty skill list, got %q", got.Text)
	}
}

func TestSuggestSummaryDropsEmptySkills(t *testing.T) {
	got, err := Suggest(map[string]any{"title": "senior data-engineer", "skills": []any{"", "Go", nil, "Kafka"}}, KindSummary)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.HasPrefix(got.Text, "Senior Data-Engineer with") {
		t.Fatalf("unexpected title casing: %q", got.Text)
	}
	if !strings.Contains(got.Text, "Skilled in Go, Kafka.") {
		t.Fatalf("unexpected skills: %q", got.Text)
	}
}

func TestSuggestBullets(t *testing.T) {
	got, err := Suggest(map[string]any{"role": "Backend Engineer", "company": "Acme"}, KindBullets)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got.Bullets) != 4 {
		t.Fatalf("expected 4 bullets, got %d", len(got.Bullets))
	}
	want := "Drove end-to-end initiatives as Backend Engineer at Acme, improving key KPIs by 15%+."
	if got.Bullets[0] != want {
		t.Fatalf("unexpected first bullet: %q", got.Bullets[0])
	}
	if got.Text != "" {
		t.Fatalf("expected no text for bullets")
	}
}

func TestSuggestBulletsDefaults(t *testing.T) {
	got, err := Suggest(map[string]any{"role": ""}, KindBullets)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(got.Bullets[0], "as Role at Company,") {
		t.Fatalf("expected default role and company, got %q", got.Bullets[0])
	}
	static := []string{
		"Collaborated cross-functionally to ship features on time while reducing defects.",
		"Automated repetitive workflows to save team 4–6 hrs/week and increase consistency.",
		"Translated business goals into actionable plans with clear milestones and metrics.",
	}
	for i, s := range static {
		if got.Bullets[i+1] != s {
			t.Fatalf("bullet %d: got %q want %q", i+1, got.Bullets[i+1], s)
		}
	}
}

func TestSuggestBulletsFormatsNonStringValues(t *testing.T) {
	cases := []struct {
		ctx  map[string]any
		want string
	}{
		{map[string]any{"role": true}, "as True at Company,"},
		{map[string]any{"role": float64(3), "company": 2.5}, "as 3 at 2.5,"},
		{map[string]any{"role": []any{"Lead", true}}, "as ['Lead', True] at Company,"},
		{map[string]any{"company": map[string]any{"name": "Acme", "id": nil}}, "as Role at {'id': None, 'name': 'Acme'},"},
	}
	for _, tc := range cases {
		got, err := Suggest(tc.ctx, KindBullets)
		if err != nil {
			t.Fatalf("suggest: %v", err)
		}
		if !strings.Contains(got.Bullets[0], tc.want) {
			t.Fatalf("context %v: expected %q in %q", tc.ctx, tc.want, got.Bullets[0])
		}
	}
}

func TestSuggestUnsupportedType(t *testing.T) {
	_, err := Suggest(map[string]any{}, "bogus")
	if !errors.Is(err, ErrUnsupportedSuggestionType) {
		t.Fatalf("expected ErrUnsupportedSuggestionType, got %v", err)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"engineer":       "Engineer",
		"SENIOR manager": "Senior Manager",
		"o'neil-smith":   "O'Neil-Smith",
		"":               "",
	}
	for in, want := range cases {
		if got := TitleCase(in); got != want {
			t.Fatalf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
