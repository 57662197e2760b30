package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/password"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/users"
)

// TestRequireAuth verifies the exclusion rules.
func TestRequireAuth(t *testing.T) {
	excluded := []string{"/api/v1/status/", "/health"}

	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{"empty path", "", excluded, true},
		{"no exclusions", "/api/v1/users", nil, true},
		{"exact match", "/api/v1/status/", excluded, false},
		{"missing trailing slash on path", "/api/v1/status", excluded, false},
		{"missing trailing slash on exclusion", "/health/", excluded, false},
		{"both without trailing slash", "/health", excluded, false},
		{"non-excluded path", "/api/v1/users", excluded, true},
		{"prefix is not a match", "/api/v1/status/extra", excluded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequireAuth(tt.path, tt.excluded); got != tt.want {
				t.Errorf("RequireAuth(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// TestExtractBase64AuthorizationHeader verifies scheme handling.
func TestExtractBase64AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid", "Basic SG9sYmVydG9u", "SG9sYmVydG9u", nil},
		{"empty", "", "", ErrMissingAuthorization},
		{"bearer scheme", "Bearer abc", "", ErrInvalidScheme},
		{"lowercase scheme", "basic SG9sYmVydG9u", "", ErrInvalidScheme},
		{"scheme without space", "BasicSG9sYmVydG9u", "", ErrInvalidScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBase64AuthorizationHeader(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("payload = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDecodeBase64AuthorizationHeader verifies payload decoding.
func TestDecodeBase64AuthorizationHeader(t *testing.T) {
	decoded, err := DecodeBase64AuthorizationHeader("SG9sYmVydG9u")
	if err != nil {
		t.Fatalf("DecodeBase64AuthorizationHeader() error: %v", err)
	}
	if decoded != "Holberton" {
		t.Errorf("decoded = %q, want Holberton", decoded)
	}

	for _, bad := range []string{"not base64!!", "SG9sYmVydG9u=="} {
		if _, err := DecodeBase64AuthorizationHeader(bad); !errors.Is(err, ErrInvalidBase64) {
			t.Errorf("DecodeBase64AuthorizationHeader(%q) error = %v, want ErrInvalidBase64", bad, err)
		}
	}
}

// TestExtractUserCredentials verifies the first-colon split.
func TestExtractUserCredentials(t *testing.T) {
	tests := []struct {
		name      string
		decoded   string
		wantEmail string
		wantPwd   string
		wantErr   error
	}{
		{"simple", "bob@x.com:secret", "bob@x.com", "secret", nil},
		{"password with colons", "bob@x.com:pass:with:colons", "bob@x.com", "pass:with:colons", nil},
		{"empty password", "bob@x.com:", "bob@x.com", "", nil},
		{"no colon", "bobsecret", "", "", ErrMalformedCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, pwd, err := ExtractUserCredentials(tt.decoded)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if email != tt.wantEmail || pwd != tt.wantPwd {
				t.Errorf("credentials = %q/%q, want %q/%q", email, pwd, tt.wantEmail, tt.wantPwd)
			}
		})
	}
}

// stubStore serves a single user from memory.
type stubStore struct {
	user *users.User
	err  error
}

func (s *stubStore) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil
}

func basicHeader(email, pwd string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+pwd))
}

func testUser(t *testing.T, email, pwd string) *users.User {
	t.Helper()
	hash, err := password.HashWithCost(pwd, 4)
	if err != nil {
		t.Fatalf("HashWithCost() error: %v", err)
	}
	return &users.User{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Email: email, PasswordHash: hash}
}

// TestCurrentUser verifies the full resolution pipeline.
func TestCurrentUser(t *testing.T) {
	user := testUser(t, "bob@example.com", "secret")
	authn := NewBasicAuth(&stubStore{user: user})

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"valid credentials", basicHeader("bob@example.com", "secret"), nil},
		{"wrong password", basicHeader("bob@example.com", "nope"), ErrInvalidCredentials},
		{"unknown user", basicHeader("eve@example.com", "secret"), ErrInvalidCredentials},
		{"missing header", "", ErrMissingAuthorization},
		{"wrong scheme", "Bearer abc", ErrInvalidScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := authn.CurrentUser(context.Background(), r)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && (got == nil || got.Email != user.Email) {
				t.Errorf("CurrentUser() = %+v, want %s", got, user.Email)
			}
		})
	}
}

// TestCurrentUserUnreadableHash verifies a corrupt stored hash is surfaced
// as an error rather than treated as a wrong password.
func TestCurrentUserUnreadableHash(t *testing.T) {
	authn := NewBasicAuth(&stubStore{user: &users.User{
		Email:        "bob@example.com",
		PasswordHash: "not-a-real-hash",
	}})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", basicHeader("bob@example.com", "whatever"))

	_, err := authn.CurrentUser(context.Background(), r)
	if !errors.Is(err, password.ErrMalformedHash) {
		t.Errorf("error = %v, want ErrMalformedHash", err)
	}
}
