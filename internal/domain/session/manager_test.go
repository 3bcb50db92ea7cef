package session

import (
	"context"
	"testing"
	"time"

	"github.com/facgure/launchpad/internal/infrastructure/storage"
	"github.com/facgure/launchpad/internal/shared/types"
)

func newTestManager(t *testing.T, demo bool) *Manager {
	t.Helper()

	users, err := NewUserStore(storage.NewMemStore())
	if err != nil {
		t.Fatalf("user store failed: %v", err)
	}

	var verifier Verifier = NewStaticVerifier(users)
	if demo {
		verifier = NewDemoVerifier(verifier, 4)
	}

	return NewManager(verifier, users, Config{
		Secret:  []byte("test-secret"),
		TTL:     time.Hour,
		DemoOTP: true,
	})
}

func TestLoginAdmin(t *testing.T) {
	m := newTestManager(t, false)

	sess, err := m.Login(context.Background(), "admin@facgure.com", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if sess.User.Role != types.RoleAdmin {
		t.Errorf("Expected admin role, got %s", sess.User.Role)
	}
	if sess.Token == "" {
		t.Error("Expected a signed token")
	}

	perms := sess.Permissions()
	if !perms.CanImportApps || !perms.CanDeleteApps {
		t.Error("Admin must hold both import and delete capabilities")
	}
}

func TestLoginUserPermissions(t *testing.T) {
	m := newTestManager(t, false)

	sess, err := m.Login(context.Background(), "user@facgure.com", "user123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	perms := sess.Permissions()
	if perms.CanImportApps || perms.CanDeleteApps {
		t.Error("Regular user must hold neither capability")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	m := newTestManager(t, false)

	_, err := m.Login(context.Background(), "user@facgure.com", "wrongpass")
	if !IsAuthCode(err, CodeInvalidCredentials) {
		t.Fatalf("Expected invalid_credentials, got %v", err)
	}
}

func TestLoginDemoFallback(t *testing.T) {
	m := newTestManager(t, true)

	sess, err := m.Login(context.Background(), "someone@example.com", "pass4")
	if err != nil {
		t.Fatalf("Fallback login failed: %v", err)
	}
	if sess.User.Role != types.RoleUser {
		t.Errorf("Fallback identities must be regular users, got %s", sess.User.Role)
	}
	if sess.User.Name != "someone" {
		t.Errorf("Expected name from email local part, got %q", sess.User.Name)
	}

	// Short password still rejected
	if _, err := m.Login(context.Background(), "someone@example.com", "abc"); err == nil {
		t.Error("Expected short password rejected")
	}

	// Malformed email still rejected
	if _, err := m.Login(context.Background(), "not-an-email", "longenough"); err == nil {
		t.Error("Expected malformed email rejected")
	}
}

func TestFallbackDisabled(t *testing.T) {
	m := newTestManager(t, false)

	_, err := m.Login(context.Background(), "someone@example.com", "longenough")
	if !IsAuthCode(err, CodeInvalidCredentials) {
		t.Fatalf("Expected invalid_credentials without fallback, got %v", err)
	}
}

func TestVerifyAndLogout(t *testing.T) {
	m := newTestManager(t, false)

	sess, err := m.Login(context.Background(), "admin@facgure.com", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	verified, err := m.Verify(sess.Token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if verified.User.Email != "admin@facgure.com" {
		t.Errorf("Unexpected user on verified session: %s", verified.User.Email)
	}

	m.Logout(sess.Token)
	if _, err := m.Verify(sess.Token); !IsAuthCode(err, CodeSessionNotFound) {
		t.Errorf("Expected session_not_found after logout, got %v", err)
	}

	// Logging out again is a no-op
	m.Logout(sess.Token)
}

func TestExpiredSession(t *testing.T) {
	users, err := NewUserStore(storage.NewMemStore())
	if err != nil {
		t.Fatalf("user store failed: %v", err)
	}
	m := NewManager(NewStaticVerifier(users), users, Config{
		Secret: []byte("test-secret"),
		TTL:    -time.Minute, // already expired
	})

	sess, err := m.Login(context.Background(), "admin@facgure.com", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := m.Verify(sess.Token); !IsAuthCode(err, CodeSessionExpired) {
		t.Errorf("Expected session_expired, got %v", err)
	}
}

func TestLoginWithProvider(t *testing.T) {
	m := newTestManager(t, false)

	sess, err := m.LoginWithProvider(context.Background(), ProviderGoogle)
	if err != nil {
		t.Fatalf("Provider login failed: %v", err)
	}
	if sess.User.Email != "user@gmail.com" {
		t.Errorf("Unexpected provider identity: %s", sess.User.Email)
	}
	if sess.User.Role != types.RoleUser {
		t.Error("Provider identities default to regular users")
	}

	if _, err := m.LoginWithProvider(context.Background(), Provider("github")); err == nil {
		t.Error("Expected unknown provider rejected")
	}
}

func TestProviderLoginRespectsContext(t *testing.T) {
	users, err := NewUserStore(storage.NewMemStore())
	if err != nil {
		t.Fatalf("user store failed: %v", err)
	}
	m := NewManager(NewStaticVerifier(users), users, Config{
		Secret:        []byte("test-secret"),
		TTL:           time.Hour,
		ProviderDelay: time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.LoginWithProvider(ctx, ProviderMicrosoft); err == nil {
		t.Error("Expected cancelled context to abort the simulated flow")
	}
}

func TestRecoveryFlow(t *testing.T) {
	m := newTestManager(t, false)

	if err := m.ForgotPassword("user@facgure.com"); err != nil {
		t.Fatalf("ForgotPassword failed: %v", err)
	}

	// Wrong code rejected
	if err := m.VerifyOTP("user@facgure.com", "000000"); !IsAuthCode(err, CodeOTPInvalid) {
		t.Errorf("Expected otp_invalid, got %v", err)
	}

	// Demo mode issues the fixed code
	if err := m.VerifyOTP("user@facgure.com", "123456"); err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}

	if err := m.ResetPassword("user@facgure.com", "123456", "newpass"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	// Pair is cleared after a successful reset
	if err := m.VerifyOTP("user@facgure.com", "123456"); err == nil {
		t.Error("Expected recovery pair cleared after reset")
	}

	// Old password no longer works, new one does
	if _, err := m.Login(context.Background(), "user@facgure.com", "user123"); err == nil {
		t.Error("Expected old password rejected after reset")
	}
	if _, err := m.Login(context.Background(), "user@facgure.com", "newpass"); err != nil {
		t.Errorf("Login with new password failed: %v", err)
	}
}

func TestResetForUnknownAccount(t *testing.T) {
	m := newTestManager(t, false)

	// Issuing a code never leaks account existence
	if err := m.ForgotPassword("ghost@example.com"); err != nil {
		t.Fatalf("ForgotPassword failed: %v", err)
	}

	// Redemption fails for the unknown account
	err := m.ResetPassword("ghost@example.com", "123456", "newpass")
	if !IsAuthCode(err, CodeUserNotFound) {
		t.Errorf("Expected user_not_found, got %v", err)
	}
}
