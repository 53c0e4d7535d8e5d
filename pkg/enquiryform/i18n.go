package enquiryform

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys shared with the website's translation files.
const (
	KeyErrorDefault   = "enquiry.errorDefault"
	KeySuccessTitle   = "enquiry.successTitle"
	KeySuccessMessage = "enquiry.successMessage"
	KeyErrorTitle     = "enquiry.errorTitle"
	KeySubmitSend     = "enquiry.submit.send"
	KeySubmitSending  = "enquiry.submit.sending"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeyErrorDefault:   "Failed to send enquiry. Please try again.",
		KeySuccessTitle:   "Enquiry sent!",
		KeySuccessMessage: "Thank you. Our team will contact you soon.",
		KeyErrorTitle:     "Something went wrong",
		KeySubmitSend:     "Send Enquiry",
		KeySubmitSending:  "Sending...",
	},
	language.Arabic: {
		KeyErrorDefault:   "تعذر إرسال الاستفسار. يرجى المحاولة مرة أخرى.",
		KeySuccessTitle:   "تم إرسال الاستفسار!",
		KeySuccessMessage: "شكراً لك. سيتواصل معك فريقنا قريباً.",
		KeyErrorTitle:     "حدث خطأ ما",
		KeySubmitSend:     "إرسال الاستفسار",
		KeySubmitSending:  "جارٍ الإرسال...",
	},
}

var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)
	messages  = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			if err := b.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Localizer resolves the form's user-facing strings.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocalizer picks the best supported language for the given preferences
// (BCP 47 tags or Accept-Language values). English is the fallback.
func NewLocalizer(prefs ...string) *Localizer {
	_, index := language.MatchStrings(matcher, prefs...)
	tag := supported[index]
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T returns the translation for key.
func (l *Localizer) T(key string) string {
	return l.printer.Sprintf(key)
}
