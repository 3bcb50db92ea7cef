package session

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// demoOTP is the fixed recovery code issued when the demo policy is on
const demoOTP = "123456"

// otpTTL bounds how long an issued code stays redeemable
const otpTTL = 10 * time.Minute

// minResetPasswordLen applies to the replacement password in the final
// recovery step
const minResetPasswordLen = 4

type resetRequest struct {
	otp       string
	expiresAt time.Time
}

// ForgotPassword starts the three-step recovery flow by issuing an OTP
// for the email. The code is issued whether or not an account exists, so
// the endpoint does not leak which emails are registered; redemption
// fails later for unknown accounts.
func (m *Manager) ForgotPassword(email string) error {
	if !validEmail(email) {
		return authErr(CodeInvalidEmail, "malformed email address")
	}

	otp := demoOTP
	if !m.cfg.DemoOTP {
		code, err := randomOTP()
		if err != nil {
			return err
		}
		otp = code
	}

	m.resets.Store(email, &resetRequest{
		otp:       otp,
		expiresAt: time.Now().Add(otpTTL),
	})
	return nil
}

// VerifyOTP checks the second recovery step without consuming the code
func (m *Manager) VerifyOTP(email, otp string) error {
	val, ok := m.resets.Load(email)
	if !ok {
		return authErr(CodeOTPInvalid, "no pending recovery for that email")
	}

	req := val.(*resetRequest)
	if time.Now().After(req.expiresAt) {
		m.resets.Delete(email)
		return authErr(CodeOTPExpired, "recovery code expired")
	}
	if req.otp != otp {
		return authErr(CodeOTPInvalid, "incorrect recovery code")
	}
	return nil
}

// ResetPassword completes the flow: the OTP is re-checked, the stored
// hash is replaced, and the recovery pair is cleared
func (m *Manager) ResetPassword(email, otp, newPassword string) error {
	if err := m.VerifyOTP(email, otp); err != nil {
		return err
	}
	if len(newPassword) < minResetPasswordLen {
		return authErr(CodePasswordTooShort, "password too short")
	}

	if err := m.users.SetPassword(email, newPassword); err != nil {
		return err
	}

	m.resets.Delete(email)
	return nil
}

// randomOTP draws a uniform six-digit code
func randomOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate recovery code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
