package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// EnquiryEmailData holds the submitted form fields for the notification.
type EnquiryEmailData struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Product string
	Message string
}

// Addressing is the configured sender and recipient for notifications.
type Addressing struct {
	From string
	To   string
}

const enquiryEmailTemplate = `<h2>New Product Enquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
{{- if .Company}}
<p><strong>Company:</strong> {{.Company}}</p>
{{- end}}
<p><strong>Product Interest:</strong> {{.Product}}</p>
<p><strong>Message:</strong></p>
<p>{{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
`

var enquiryTmpl = template.Must(template.New("enquiry").Parse(enquiryEmailTemplate))

// EnquirySubject is the subject line used by every provider.
func EnquirySubject(name, product string) string {
	return fmt.Sprintf("New Enquiry from %s - %s", name, product)
}

// RenderEnquiryHTML renders the notification body. Field values are escaped
// and newlines in the message become <br>.
func RenderEnquiryHTML(data EnquiryEmailData) (string, error) {
	view := struct {
		EnquiryEmailData
		MessageLines []string
	}{
		EnquiryEmailData: data,
		MessageLines:     strings.Split(data.Message, "\n"),
	}

	var body bytes.Buffer
	if err := enquiryTmpl.Execute(&body, view); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// BuildEnquiryMessage assembles the notification for one enquiry. Replies go
// to the visitor.
func BuildEnquiryMessage(addr Addressing, data EnquiryEmailData) (Message, error) {
	html, err := RenderEnquiryHTML(data)
	if err != nil {
		return Message{}, err
	}

	return Message{
		From:    addr.From,
		To:      addr.To,
		ReplyTo: data.Email,
		Subject: EnquirySubject(data.Name, data.Product),
		HTML:    html,
	}, nil
}
