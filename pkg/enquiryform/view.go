package enquiryform

type Banner string

const (
	BannerNone    Banner = ""
	BannerSuccess Banner = "success"
	BannerError   Banner = "error"
)

// View is what the form renders for a given state.
type View struct {
	Banner         Banner
	BannerTitle    string
	BannerText     string
	SubmitLabel    string
	SubmitDisabled bool
}

// Render derives the UI from a snapshot.
func Render(s Snapshot, l *Localizer) View {
	if l == nil {
		l = NewLocalizer()
	}

	v := View{SubmitLabel: l.T(KeySubmitSend)}
	switch s.State {
	case StateSubmitting:
		v.SubmitLabel = l.T(KeySubmitSending)
		v.SubmitDisabled = true
	case StateSuccess:
		v.Banner = BannerSuccess
		v.BannerTitle = l.T(KeySuccessTitle)
		v.BannerText = l.T(KeySuccessMessage)
	case StateError:
		v.Banner = BannerError
		v.BannerTitle = l.T(KeyErrorTitle)
		v.BannerText = s.ErrorMessage
	}
	return v
}

// View renders the form's current state.
func (f *Form) View() View {
	return Render(f.Snapshot(), f.opts.Localizer)
}
