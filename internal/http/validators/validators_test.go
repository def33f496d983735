package validators

import "testing"

func TestValidateRegisterRequest(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "a@x.com", "secret1", false},
		{"missing email", "", "secret1", true},
		{"missing password", "a@x.com", "", true},
		{"bad email", "not-an-email", "secret1", true},
		{"email without tld", "a@x", "secret1", true},
		{"short password", "a@x.com", "abc", true},
		{"six char password", "a@x.com", "abcdef", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegisterRequest(tc.email, tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateRegisterRequest(%q, %q) error = %v, wantErr %v", tc.email, tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestValidateLoginRequest(t *testing.T) {
	if err := ValidateLoginRequest("a@x.com", "pw"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := ValidateLoginRequest("", "pw"); err == nil {
		t.Error("expected error for missing email")
	}
	if err := ValidateLoginRequest("a@x.com", ""); err == nil {
		t.Error("expected error for missing password")
	}
}

func TestValidateCreateTaskRequest(t *testing.T) {
	longTitle := make([]byte, 256)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	status := "IN_PROGRESS"
	badStatus := "DONE"

	tests := []struct {
		name    string
		title   string
		status  *string
		wantErr bool
	}{
		{"valid", "buy milk", nil, false},
		{"valid with status", "buy milk", &status, false},
		{"empty title", "", nil, true},
		{"whitespace title", "   ", nil, true},
		{"too long", string(longTitle), nil, true},
		{"bad status", "buy milk", &badStatus, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreateTaskRequest(tc.title, tc.status)
			if (err != nil) != tc.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	empty := "  "
	valid := "new title"
	badStatus := "DONE"
	goodStatus := "COMPLETED"

	if err := ValidateUpdateTaskRequest(nil, nil); err != nil {
		t.Errorf("all-nil update must validate, got %v", err)
	}
	if err := ValidateUpdateTaskRequest(&valid, &goodStatus); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := ValidateUpdateTaskRequest(&empty, nil); err == nil {
		t.Error("expected error for blank title")
	}
	if err := ValidateUpdateTaskRequest(nil, &badStatus); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestValidateTaskQuery(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		limit   string
		status  string
		wantErr bool
	}{
		{"all empty", "", "", "", false},
		{"valid", "2", "50", "PENDING", false},
		{"zero page", "0", "", "", true},
		{"non-numeric page", "abc", "", "", true},
		{"zero limit", "", "0", "", true},
		{"limit over cap", "", "101", "", true},
		{"limit at cap", "", "100", "", false},
		{"bad status", "", "", "WIP", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTaskQuery(tc.page, tc.limit, tc.status)
			if (err != nil) != tc.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
