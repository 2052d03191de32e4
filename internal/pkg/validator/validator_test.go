package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestNormalizeCPF(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"529.982.247-25", "52998224725"},
		{"52998224725", "52998224725"},
		{" 529.982.247-25 ", "52998224725"},
	}
	for _, c := range cases {
		got := NormalizeCPF(c.input)
		if got != c.want {
			t.Errorf("NormalizeCPF(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
	}
	invalid := []string{
		"529.982.247-26", // wrong check digit
		"111.111.111-11", // all digits equal
		"000.000.000-00",
		"5299822472",   // too short
		"529982247255", // too long
		"abc.def.ghi-jk",
		"",
	}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = false, want true", cpf)
		}
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = true, want false", cpf)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	if _, ok := IsValidClockTime("07:12"); !ok {
		t.Error("IsValidClockTime(\"07:12\") = false, want true")
	}
	if _, ok := IsValidClockTime("25:00"); ok {
		t.Error("IsValidClockTime(\"25:00\") = true, want false")
	}
	if _, ok := IsValidClockTime("7h30"); ok {
		t.Error("IsValidClockTime(\"7h30\") = true, want false")
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-07-15"); !ok {
		t.Error("IsValidDate(\"2025-07-15\") = false, want true")
	}
	if _, ok := IsValidDate("15/07/2025"); ok {
		t.Error("IsValidDate(\"15/07/2025\") = true, want false")
	}
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate(\"2025-02-30\") = true, want false")
	}
}
