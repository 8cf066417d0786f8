package search

import (
	"reflect"
	"testing"
)

func assertParse(t *testing.T, raw string, wantTerms, wantExclude []string) {
	t.Helper()
	got := ParseQuery(raw)
	if !reflect.DeepEqual(got.Terms, wantTerms) {
		t.Errorf("ParseQuery(%q).Terms = %#v, want %#v", raw, got.Terms, wantTerms)
	}
	if !reflect.DeepEqual(got.Exclude, wantExclude) {
		t.Errorf("ParseQuery(%q).Exclude = %#v, want %#v", raw, got.Exclude, wantExclude)
	}
}

func TestParseQuery_Empty(t *testing.T) {
	assertParse(t, "", nil, nil)
	assertParse(t, "   \t  ", nil, nil)
}

func TestParseQuery_BareTokens(t *testing.T) {
	assertParse(t, "    duck duck go  bat  ", []string{"duck", "duck", "go", "bat"}, nil)
}

func TestParseQuery_QuotedPhrases(t *testing.T) {
	assertParse(t, `"wire shark" bar`, []string{"wire shark", "bar"}, nil)
	assertParse(t, `foo "spy dog" bat`, []string{"foo", "spy dog", "bat"}, nil)
}

func TestParseQuery_UnterminatedQuote(t *testing.T) {
	// A missing closing quote consumes to end of input.
	assertParse(t, `"wire shark`, []string{"wire shark"}, nil)
}

func TestParseQuery_EmptyQuotes(t *testing.T) {
	assertParse(t, `"" foo`, []string{"foo"}, nil)
	assertParse(t, `"   "`, nil, nil)
}

func TestParseQuery_Exclusions(t *testing.T) {
	assertParse(t, "bat -cat", []string{"bat"}, []string{"cat"})
	assertParse(t, "--cat", nil, []string{"cat"})
	assertParse(t, `-"windows server"`, nil, []string{"windows server"})
	assertParse(t,
		`  "docker compose"  -dotnet -"windows server"  "chocolate cupcakes" 😸😸😸 `,
		[]string{"docker compose", "chocolate cupcakes", "😸😸😸"},
		[]string{"dotnet", "windows server"},
	)
}

func TestParseQuery_DetachedDashRun(t *testing.T) {
	// Dashes with nothing immediately following produce no term and no
	// exclusion; the following word is a separate include token.
	assertParse(t, "--- foo", []string{"foo"}, nil)
	assertParse(t, "- nixos", []string{"nixos"}, nil)
	assertParse(t, "-", nil, nil)
	assertParse(t, "-----", nil, nil)
	assertParse(t, "foo ---", []string{"foo"}, nil)
}

func TestParseQuery_InternalHyphens(t *testing.T) {
	// A hyphen inside a bare token is ordinary text, not an exclusion marker.
	assertParse(t, "low-memory-monitor", []string{"low-memory-monitor"}, nil)
	assertParse(t, "dnf-fedora -docker", []string{"dnf-fedora"}, []string{"docker"})
	assertParse(t, "-foo-bar", nil, []string{"foo-bar"})
}

func TestParseQuery_QuotedDashesStayVerbatim(t *testing.T) {
	// Quoted content is taken verbatim, so dashes inside quotes do not mark
	// an exclusion on their own.
	assertParse(t, `"-- kde"`, []string{"-- kde"}, nil)
}

func TestParseQuery_Unicode(t *testing.T) {
	// Multi-byte runes must never be split mid-character.
	assertParse(t, "café -naïve 😸", []string{"café", "😸"}, []string{"naïve"})
}

func TestParseQuery_TotalOverAdversarialInput(t *testing.T) {
	// A long dash run must terminate in one bounded pass.
	long := make([]byte, 0, 4096)
	for i := 0; i < 4096; i++ {
		long = append(long, '-')
	}
	assertParse(t, string(long), nil, nil)
	assertParse(t, string(long)+"x", nil, []string{"x"})

	// Garbage never fails the parser.
	for _, raw := range []string{"\x00", `"""`, `-"`, "- - - -", "“smart quotes”"} {
		_ = ParseQuery(raw)
	}
}
