package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Acme", "acme"},
		{"spaces", "Acme Widgets", "acme-widgets"},
		{"punctuation run", "Acme, Inc.", "acme-inc"},
		{"leading and trailing", "  --Acme--  ", "acme"},
		{"diacritics", "Café Müller GmbH", "cafe-muller-gmbh"},
		{"cedilla", "Ça Va", "ca-va"},
		{"sharp s", "Straße & Söhne", "strasse-sohne"},
		{"stroke letters", "Ørsted A/S", "orsted-a-s"},
		{"ligature", "Æther Labs", "aether-labs"},
		{"underscore and digits", "ACME_Corp 2", "acme-corp-2"},
		{"ampersand", "AT&T", "at-t"},
		{"only symbols", "!!!", ""},
		{"non latin", "東京", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.input))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{"Acme", "Café Müller GmbH", "Ørsted A/S", "acme-inc", "  x  y  "}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "Make(Make(%q))", in)
	}
}
