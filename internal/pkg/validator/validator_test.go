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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-10"); !ok {
		t.Error(`IsValidDate("2025-03-10") = false, want true`)
	}
	for _, s := range []string{"2025-3-10", "10-03-2025", "2025-03-10T00:00:00Z", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2025-03-10T09:00:00Z", "2025-03-10T14:30:00+05:30", "2025-03-10T09:00:00.123Z"}
	invalid := []string{"2025-03-10", "09:00:00", "not-a-time", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidMobileNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "919876543210", "98765 43210", "98765-43210", "9123456789"}
	invalid := []string{"12345", "98765432101234", "abcdefghij", ""}
	for _, m := range valid {
		if !IsValidMobileNumber(m) {
			t.Errorf("IsValidMobileNumber(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMobileNumber(m) {
			t.Errorf("IsValidMobileNumber(%q) = true, want false", m)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-001", "E01", "DEV-2024-17"}
	invalid := []string{"em", "emp-001", "-EMP", "EMP 001", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}
