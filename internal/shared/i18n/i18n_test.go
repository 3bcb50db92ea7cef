package i18n

import "testing"

func TestNormalize(t *testing.T) {
	if Normalize("th") != LocaleTH {
		t.Error("Expected th to normalize to LocaleTH")
	}

	if Normalize("") != DefaultLocale {
		t.Error("Expected empty locale to fall back to default")
	}

	if Normalize("de") != DefaultLocale {
		t.Error("Expected unsupported locale to fall back to default")
	}
}

func TestT(t *testing.T) {
	if got := T(LocaleEN, "appStore"); got != "Application Directory" {
		t.Errorf("Unexpected en message: %q", got)
	}

	if got := T(LocaleTH, "logout"); got != "ออกจากระบบ" {
		t.Errorf("Unexpected th message: %q", got)
	}

	// Missing keys surface themselves
	if got := T(LocaleEN, "doesNotExist"); got != "doesNotExist" {
		t.Errorf("Expected missing key echoed back, got %q", got)
	}
}

func TestTf(t *testing.T) {
	got := Tf(LocaleEN, "appInstalled", "Calendar")
	if got != "Calendar has been installed successfully" {
		t.Errorf("Unexpected formatted message: %q", got)
	}
}
