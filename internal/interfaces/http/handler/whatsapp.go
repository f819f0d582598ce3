package handler

import (
	"net/url"
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

// whatsAppURL builds the click-to-chat URI for a plain-text message. The
// message text is percent-encoded with spaces as %20, not "+", because
// WhatsApp renders "+" literally in the prefilled message.
func whatsAppURL(recipient, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return whatsAppBaseURL + recipient + "?text=" + encoded
}
