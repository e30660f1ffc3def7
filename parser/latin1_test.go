package parser

import "testing"

func Test_latin1ToUTF8(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"meter", "meter"},
		{"\xb5m", "µm"},
		{"\xb0C", "°C"},
		{"\xc5ngstr\xf6m", "Ångström"},
		{"\xff", "ÿ"},
	}
	for _, c := range cases {
		if got := latin1ToUTF8(c.in); got != c.want {
			t.Fatalf("latin1ToUTF8(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func Test_latin1ToUTF8_doesNotAlias(t *testing.T) {
	in := "abc\xe9"
	out := latin1ToUTF8(in)
	if in != "abc\xe9" {
		t.Fatal("input mutated")
	}
	if out != "abcé" {
		t.Fatalf("got %q", out)
	}
}
