package utils

import (
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	got, err := ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDate error = %v, want nil", err)
	}
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{"", "14-03-2025", "2025/03/14", "2025-13-01", "2025-02-30", "today"}
	for _, s := range cases {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", s)
		}
	}
}

func TestParseOptionalDate_Empty(t *testing.T) {
	got, err := ParseOptionalDate("")
	if err != nil || got != nil {
		t.Errorf("ParseOptionalDate(\"\") = %v, %v; want nil, nil", got, err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := GenerateToken(secret, Claims{UserID: "u-1", Username: "ramesh", Role: "owner", CompanyID: "c-1"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}

	c, err := VerifyToken(secret, tok)
	if err != nil {
		t.Fatalf("VerifyToken error = %v", err)
	}
	if c.Username != "ramesh" || c.Role != "owner" || c.CompanyID != "c-1" {
		t.Errorf("claims = %+v", c)
	}

	if _, err := VerifyToken([]byte("other"), tok); err == nil {
		t.Error("VerifyToken with wrong secret error = nil, want error")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := GenerateToken(secret, Claims{UserID: "u-1"}, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}
	if _, err := VerifyToken(secret, tok); err == nil {
		t.Error("VerifyToken(expired) error = nil, want error")
	}
}
