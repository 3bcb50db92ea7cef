// Package i18n provides the bilingual (en/th) message catalog used for
// user-facing notices: install acknowledgments, permission denials, and
// panel labels. Manifest-level translations live on the manifests
// themselves; this catalog covers portal chrome.
package i18n

import "fmt"

// Locale identifies a supported display language
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleTH Locale = "th"

	// DefaultLocale is used when a request carries no locale or an
	// unsupported one.
	DefaultLocale = LocaleEN
)

// Normalize maps an arbitrary locale string to a supported Locale
func Normalize(s string) Locale {
	switch Locale(s) {
	case LocaleEN, LocaleTH:
		return Locale(s)
	}
	return DefaultLocale
}

type entry struct {
	en string
	th string
}

var messages = map[string]entry{
	"applications":     {en: "Applications", th: "แอปพลิเคชัน"},
	"importApps":       {en: "Import Applications", th: "นำเข้าแอปพลิเคชัน"},
	"notifications":    {en: "Notifications", th: "การแจ้งเตือน"},
	"userProfile":      {en: "User Profile", th: "โปรไฟล์ผู้ใช้"},
	"appStore":         {en: "Application Directory", th: "ไดเรกทอรีแอปพลิเคชัน"},
	"allNotifications": {en: "All Notifications", th: "การแจ้งเตือนทั้งหมด"},
	"clearAll":         {en: "Clear All", th: "ล้างทั้งหมด"},
	"noNotifications":  {en: "No Notifications", th: "ไม่พบการแจ้งเตือน"},
	"installed":        {en: "Installed", th: "ติดตั้งแล้ว"},
	"install":          {en: "Install", th: "ติดตั้ง"},
	"logout":           {en: "Sign Out", th: "ออกจากระบบ"},
	"utilities":        {en: "Utilities", th: "ยูทิลิตี้"},
	"finance":          {en: "Finance", th: "การเงิน"},
	"productivity":     {en: "Productivity", th: "ประสิทธิภาพ"},
	"communication":    {en: "Communication", th: "การสื่อสาร"},

	"appInstalled":      {en: "%s has been installed successfully", th: "ติดตั้ง %s เรียบร้อยแล้ว"},
	"appUninstalled":    {en: "%s has been removed from your dashboard", th: "นำ %s ออกจากแดชบอร์ดของคุณแล้ว"},
	"permissionDenied":  {en: "You don't have permission to remove applications", th: "คุณไม่มีสิทธิ์นำแอปพลิเคชันออก"},
	"invalidCredential": {en: "Invalid email or password", th: "อีเมลหรือรหัสผ่านไม่ถูกต้อง"},
}

// T returns the message for key in the given locale. Unknown keys return
// the key itself so a missing entry is visible rather than blank.
func T(locale Locale, key string) string {
	e, ok := messages[key]
	if !ok {
		return key
	}
	if locale == LocaleTH {
		return e.th
	}
	return e.en
}

// Tf formats the message for key with the supplied arguments
func Tf(locale Locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
