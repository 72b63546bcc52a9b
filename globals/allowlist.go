package globals

import (
	"os"
	"strings"
)

// Admin allow-list. Configured through ADMIN_EMAILS (comma separated);
// the historical pair stays as the fallback so a bare dev environment
// still boots.
var defaultAdminEmails = []string{
	"modibboakheem@gmail.com",
	"hafeezabubakar15@gmail.com",
}

var adminEmails = loadAdminEmails()

func loadAdminEmails() map[string]bool {
	set := make(map[string]bool)
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		for _, e := range defaultAdminEmails {
			set[e] = true
		}
		return set
	}
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = true
		}
	}
	return set
}

// IsAdminEmail reports whether the email may authenticate as admin.
func IsAdminEmail(email string) bool {
	return adminEmails[strings.ToLower(strings.TrimSpace(email))]
}

// SetAdminEmails replaces the allow-list. Used by tests.
func SetAdminEmails(emails ...string) {
	set := make(map[string]bool)
	for _, e := range emails {
		set[strings.ToLower(strings.TrimSpace(e))] = true
	}
	adminEmails = set
}
