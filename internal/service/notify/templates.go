package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"text/template"
	"time"

	"pickuppoint/internal/entities"
)

// templateData is the placeholder set shared by every message template.
// QrURL is empty when no QR artifact exists and generation failed; the
// templates degrade to a message without the link.
type templateData struct {
	CustomerName  string
	Tracking      string
	OtpCode       string
	OtpExpiresAt  string
	DaysInStorage int
	StorageExpiry string
	QrURL         string
}

type messageTemplate struct {
	subject  string
	email    *htmltemplate.Template
	whatsapp *template.Template
}

// Email bodies go through html/template so customer-supplied fields are
// escaped; the whatsapp bodies are plain text.
func mustTemplates(name, email, whatsapp string) messageTemplate {
	return messageTemplate{
		email:    htmltemplate.Must(htmltemplate.New(name + "_email").Parse(email)),
		whatsapp: template.Must(template.New(name + "_whatsapp").Parse(whatsapp)),
	}
}

var messageTemplates = map[entities.NotificationEventType]messageTemplate{
	entities.NotifyArrived: func() messageTemplate {
		t := mustTemplates("arrived",
			`<p>Gentile {{.CustomerName}},</p>
<p>il tuo pacco <b>{{.Tracking}}</b> &egrave; in arrivo al punto di ritiro.</p>
<p>Codice di ritiro: <b>{{.OtpCode}}</b> (valido fino al {{.OtpExpiresAt}}).</p>
{{if .QrURL}}<p>In alternativa mostra questo QR al ritiro: {{.QrURL}}</p>{{end}}`,
			`Ciao {{.CustomerName}}! Il tuo pacco {{.Tracking}} e' in arrivo. Codice di ritiro: {{.OtpCode}} (valido fino al {{.OtpExpiresAt}}).{{if .QrURL}} QR: {{.QrURL}}{{end}}`)
		t.subject = "Il tuo pacco {{.Tracking}} e' in arrivo"
		return t
	}(),

	entities.NotifyPickedUp: func() messageTemplate {
		t := mustTemplates("picked_up",
			`<p>Gentile {{.CustomerName}},</p>
<p>confermiamo il ritiro del pacco <b>{{.Tracking}}</b>. Grazie!</p>`,
			`Ritiro confermato per il pacco {{.Tracking}}. Grazie!`)
		t.subject = "Ritiro confermato: {{.Tracking}}"
		return t
	}(),

	entities.NotifyStorageWarning: func() messageTemplate {
		t := mustTemplates("storage_warning",
			`<p>Gentile {{.CustomerName}},</p>
<p>il pacco <b>{{.Tracking}}</b> &egrave; in giacenza da {{.DaysInStorage}} giorni.</p>
<p>Ritiralo entro il {{.StorageExpiry}}, dopo tale data la giacenza scade.</p>`,
			`Il pacco {{.Tracking}} e' in giacenza da {{.DaysInStorage}} giorni. Ritiralo entro il {{.StorageExpiry}}.`)
		t.subject = "Promemoria giacenza: {{.Tracking}}"
		return t
	}(),

	entities.NotifyStorageExpired: func() messageTemplate {
		t := mustTemplates("storage_expired",
			`<p>Gentile {{.CustomerName}},</p>
<p>la giacenza del pacco <b>{{.Tracking}}</b> &egrave; scaduta il {{.StorageExpiry}}.</p>
<p>Contatta il punto di ritiro per riprogrammare la consegna.</p>`,
			`La giacenza del pacco {{.Tracking}} e' scaduta il {{.StorageExpiry}}. Contatta il punto di ritiro.`)
		t.subject = "Giacenza scaduta: {{.Tracking}}"
		return t
	}(),

	entities.NotifyOtpGenerated: func() messageTemplate {
		t := mustTemplates("otp_generated",
			`<p>Gentile {{.CustomerName}},</p>
<p>nuovo codice di ritiro per il pacco <b>{{.Tracking}}</b>: <b>{{.OtpCode}}</b> (valido fino al {{.OtpExpiresAt}}).</p>
<p>I codici precedenti non sono pi&ugrave; validi.</p>`,
			`Nuovo codice di ritiro per il pacco {{.Tracking}}: {{.OtpCode}} (valido fino al {{.OtpExpiresAt}}). I codici precedenti non sono piu' validi.`)
		t.subject = "Nuovo codice di ritiro: {{.Tracking}}"
		return t
	}(),
}

const timeLayout = "02/01/2006 15:04"

func renderMessages(event entities.NotificationEventType, data templateData) (subject, emailBody, whatsappBody string, err error) {
	tmpl, ok := messageTemplates[event]
	if !ok {
		return "", "", "", fmt.Errorf("%w: %s", ErrUnknownEvent, event)
	}

	subjectTmpl, err := template.New(string(event) + "_subject").Parse(tmpl.subject)
	if err != nil {
		return "", "", "", fmt.Errorf("parse subject template: %w", err)
	}

	subject, err = render(subjectTmpl, data)
	if err != nil {
		return "", "", "", err
	}
	emailBody, err = render(tmpl.email, data)
	if err != nil {
		return "", "", "", err
	}
	whatsappBody, err = render(tmpl.whatsapp, data)
	if err != nil {
		return "", "", "", err
	}

	return subject, emailBody, whatsappBody, nil
}

type executableTemplate interface {
	Execute(w io.Writer, data any) error
	Name() string
}

func render(tmpl executableTemplate, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}
