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

func TestIsValidWeek(t *testing.T) {
	cases := []struct {
		week int
		want bool
	}{
		{0, false},
		{1, true},
		{53, true},
		{54, false},
		{-1, false},
	}
	for _, c := range cases {
		if got := IsValidWeek(c.week); got != c.want {
			t.Errorf("IsValidWeek(%d) = %v, want %v", c.week, got, c.want)
		}
	}
}

func TestIsValidDayOfWeek(t *testing.T) {
	for d := 0; d <= 6; d++ {
		if !IsValidDayOfWeek(d) {
			t.Errorf("IsValidDayOfWeek(%d) = false, want true", d)
		}
	}
	for _, d := range []int{-1, 7, 100} {
		if IsValidDayOfWeek(d) {
			t.Errorf("IsValidDayOfWeek(%d) = true, want false", d)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+265 991 234 567", "0991234567", "265-991-234-567"}
	invalid := []string{"", "12345", "phone", "+1 (555) abc"}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "week_number", Message: "must be between 1 and 53"},
		{Field: "status", Message: "is invalid"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["week_number"] != "must be between 1 and 53" {
		t.Errorf("unexpected message for week_number: %q", m["week_number"])
	}
}
