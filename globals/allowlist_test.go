package globals

import "testing"

func TestIsAdminEmailDefaults(t *testing.T) {
	SetAdminEmails("modibboakheem@gmail.com", "hafeezabubakar15@gmail.com")

	if !IsAdminEmail("modibboakheem@gmail.com") {
		t.Error("expected first default email to be allowed")
	}
	if !IsAdminEmail("hafeezabubakar15@gmail.com") {
		t.Error("expected second default email to be allowed")
	}
	if IsAdminEmail("someone@else.com") {
		t.Error("unlisted email must be rejected")
	}
	if IsAdminEmail("") {
		t.Error("empty email must be rejected")
	}
}

func TestIsAdminEmailNormalizes(t *testing.T) {
	SetAdminEmails("Admin@Example.com")
	defer SetAdminEmails("modibboakheem@gmail.com", "hafeezabubakar15@gmail.com")

	if !IsAdminEmail("admin@example.com") {
		t.Error("expected case-insensitive match")
	}
	if !IsAdminEmail("  admin@example.com  ") {
		t.Error("expected surrounding whitespace to be ignored")
	}
}
