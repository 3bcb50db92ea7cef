// Package chat provides the portal's assistant widget: a keyword-matched
// responder with canned bilingual answers.
package chat

import (
	"strings"

	"github.com/facgure/launchpad/internal/shared/i18n"
)

// reply holds one canned answer pair
type reply struct {
	en string
	th string
}

// rule matches a set of trigger substrings to an answer
type rule struct {
	triggers []string
	answer   reply
}

var greeting = reply{
	en: "Hello! I'm your AI assistant. How can I help you with the procurement portal today?",
	th: "สวัสดี! ฉันเป็นผู้ช่วย AI ของคุณ ฉันจะช่วยคุณเกี่ยวกับพอร์ทัลการจัดซื้อจัดจ้างได้อย่างไรในวันนี้?",
}

var rules = []rule{
	{
		triggers: []string{"hello", "hi", "สวัสดี"},
		answer: reply{
			en: "Hello! How can I assist you with the procurement portal today?",
			th: "สวัสดี! ฉันจะช่วยคุณเกี่ยวกับพอร์ทัลการจัดซื้อจัดจ้างได้อย่างไรในวันนี้?",
		},
	},
	{
		triggers: []string{"procurement", "purchase", "การจัดซื้อ"},
		answer: reply{
			en: "The procurement process involves several steps: creating a requisition, getting approvals, sending purchase orders, and receiving goods. Which part would you like to know more about?",
			th: "กระบวนการจัดซื้อจัดจ้างประกอบด้วยหลายขั้นตอน: การสร้างคำขอ การขออนุมัติ การส่งคำสั่งซื้อ และการรับสินค้า คุณต้องการทราบเพิ่มเติมเกี่ยวกับส่วนใด?",
		},
	},
	{
		triggers: []string{"help", "ช่วย"},
		answer: reply{
			en: "I can help you with navigating the portal, understanding procurement processes, finding documents, and answering questions about energy regulations. What specific help do you need?",
			th: "ฉันสามารถช่วยคุณในการนำทางพอร์ทัล ทำความเข้าใจกระบวนการจัดซื้อจัดจ้าง ค้นหาเอกสาร และตอบคำถามเกี่ยวกับข้อบังคับด้านพลังงาน คุณต้องการความช่วยเหลือเฉพาะด้านใด?",
		},
	},
	{
		triggers: []string{"thank", "ขอบคุณ"},
		answer: reply{
			en: "You're welcome! Is there anything else I can help you with?",
			th: "ด้วยความยินดี! มีอะไรอื่นที่ฉันสามารถช่วยคุณได้อีกไหม?",
		},
	},
}

// Greeting returns the opening message for a new conversation
func Greeting(locale i18n.Locale) string {
	return greeting.localized(locale)
}

// Respond matches the input against the rule table, falling back to a
// clarification prompt that echoes the question back
func Respond(locale i18n.Locale, input string) string {
	lowered := strings.ToLower(input)
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(lowered, trigger) {
				return r.answer.localized(locale)
			}
		}
	}

	if locale == i18n.LocaleTH {
		return "ฉันเข้าใจว่าคุณกำลังถามเกี่ยวกับ " + input + " คุณช่วยให้รายละเอียดเพิ่มเติมได้ไหม เพื่อให้ฉันสามารถช่วยคุณได้ดีขึ้น?"
	}
	return "I understand you're asking about " + input + ". Could you provide more details so I can assist you better?"
}

func (r reply) localized(locale i18n.Locale) string {
	if locale == i18n.LocaleTH {
		return r.th
	}
	return r.en
}
