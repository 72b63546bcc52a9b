package accounts

import "testing"

func TestValidateProvisionInput(t *testing.T) {
	base := provisionInput{
		Username:    "frontdesk1",
		DisplayName: "Front Desk",
		Email:       "frontdesk@example.com",
		Password:    "s3cret",
	}

	if err := validateProvisionInput(base); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*provisionInput)
	}{
		{"missing username", func(in *provisionInput) { in.Username = "" }},
		{"missing display name", func(in *provisionInput) { in.DisplayName = "" }},
		{"missing email", func(in *provisionInput) { in.Email = "" }},
		{"missing password", func(in *provisionInput) { in.Password = "" }},
	}
	for _, tc := range cases {
		in := base
		tc.mutate(&in)
		if err := validateProvisionInput(in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestValidateProvisionInputSupportType(t *testing.T) {
	in := provisionInput{
		Username:    "helpdesk1",
		DisplayName: "Help Desk",
		Email:       "helpdesk@example.com",
		Password:    "s3cret",
		Role:        "support",
	}
	if err := validateProvisionInput(in); err == nil {
		t.Fatal("support role without supportType should fail")
	}

	in.SupportType = "it"
	if err := validateProvisionInput(in); err != nil {
		t.Fatalf("support role with supportType should pass, got %v", err)
	}

	// supportType is only mandatory for support users
	in.Role = "user"
	in.SupportType = ""
	if err := validateProvisionInput(in); err != nil {
		t.Fatalf("non-support role should not need supportType, got %v", err)
	}
}
