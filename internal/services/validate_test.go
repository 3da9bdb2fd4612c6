package services

import "testing"

func TestValidPhone(t *testing.T) {
	ok := []string{
		"+998901234567",
		"998901234567",
		"+99890 123-45-67",
		"8 (371) 123 45 67",
		"  +998901234567  ", // surrounding whitespace is trimmed
	}
	for _, p := range ok {
		if !ValidPhone(p) {
			t.Errorf("ValidPhone(%q) = false, want true", p)
		}
	}

	bad := []string{
		"",
		"12",
		"+12",
		"telefon",
		"+99890123456x",
		"++998901234567",
	}
	for _, p := range bad {
		if ValidPhone(p) {
			t.Errorf("ValidPhone(%q) = true, want false", p)
		}
	}
}

func TestFullName(t *testing.T) {
	if !FullName("Aliyev Aziz") {
		t.Error("two words rejected")
	}
	if !FullName("  Aliyev   Aziz Ogli ") {
		t.Error("three words rejected")
	}
	if FullName("Aziz") {
		t.Error("single word accepted")
	}
	if FullName("   ") {
		t.Error("blank accepted")
	}
}
