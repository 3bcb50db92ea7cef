package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/facgure/launchpad/internal/shared/types"
)

// Verifier is the pluggable credential strategy. Implementations return
// the authenticated user or an AuthError; they never create sessions.
type Verifier interface {
	Verify(email, password string) (*types.User, error)
}

// StaticVerifier checks credentials against the seeded user table
type StaticVerifier struct {
	users *UserStore
}

// NewStaticVerifier creates a verifier over the user table
func NewStaticVerifier(users *UserStore) *StaticVerifier {
	return &StaticVerifier{users: users}
}

// Verify checks the candidate credentials against the stored bcrypt hash
func (v *StaticVerifier) Verify(email, password string) (*types.User, error) {
	return v.users.VerifyPassword(email, password)
}

// DemoVerifier wraps another verifier with the demo affordance: when the
// inner verifier rejects the credentials, any syntactically valid email
// with a long-enough password is accepted as an ephemeral regular user.
// This is a deployment policy, enabled explicitly by configuration; it is
// not a security boundary.
type DemoVerifier struct {
	next           Verifier
	minPasswordLen int
}

// NewDemoVerifier wraps next with the permissive fallback
func NewDemoVerifier(next Verifier, minPasswordLen int) *DemoVerifier {
	if minPasswordLen <= 0 {
		minPasswordLen = 4
	}
	return &DemoVerifier{next: next, minPasswordLen: minPasswordLen}
}

// Verify tries the wrapped verifier first, then the fallback
func (v *DemoVerifier) Verify(email, password string) (*types.User, error) {
	user, err := v.next.Verify(email, password)
	if err == nil {
		return user, nil
	}
	if !IsAuthCode(err, CodeInvalidCredentials) {
		return nil, err
	}

	if !validEmail(email) {
		return nil, authErr(CodeInvalidEmail, "malformed email address")
	}
	if len(password) < v.minPasswordLen {
		return nil, authErr(CodePasswordTooShort, "password too short")
	}

	// Ephemeral demo identity: never persisted, always a regular user
	local := email[:strings.Index(email, "@")]
	return &types.User{
		ID:      "user-" + uuid.New().String(),
		Name:    local,
		Email:   email,
		Role:    types.RoleUser,
		Avatar:  "/diverse-group.png",
		Company: "Demo Company",
	}, nil
}

// validEmail applies the portal's minimal shape check: one @ with
// non-empty local and domain parts and no whitespace
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.ContainsAny(email, " \t\n") {
		return false
	}
	return !strings.Contains(email[at+1:], "@")
}
