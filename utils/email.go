package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strconv"

	"github.com/achalesh/exhibition-manager-sub001/config"

	"gopkg.in/gomail.v2"
)

// ReceiptEmailData feeds the payment receipt template.
type ReceiptEmailData struct {
	ClientName  string
	ReceiptNo   string
	SpaceNumber string
	Rent        float64
	Electric    float64
	Material    float64
	Shed        float64
	Total       float64
	Method      string
	PaidAt      string
}

const receiptTemplate = `
<h2>Payment Receipt {{.ReceiptNo}}</h2>
<p>Dear {{.ClientName}},</p>
<p>We have received your payment for space {{.SpaceNumber}}.</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><td>Rent</td><td>{{printf "%.2f" .Rent}}</td></tr>
  <tr><td>Electric</td><td>{{printf "%.2f" .Electric}}</td></tr>
  <tr><td>Material</td><td>{{printf "%.2f" .Material}}</td></tr>
  <tr><td>Shed</td><td>{{printf "%.2f" .Shed}}</td></tr>
  <tr><td><b>Total</b></td><td><b>{{printf "%.2f" .Total}}</b></td></tr>
</table>
<p>Method: {{.Method}}, paid {{.PaidAt}}</p>
`

// SendReceiptEmail mails a payment receipt (async so the response is not
// delayed). Skips silently when SMTP is not configured.
func SendReceiptEmail(to string, data ReceiptEmailData) {
	go func() {
		host := config.Config("SMTP_HOST")
		if host == "" || to == "" {
			return
		}
		port, err := strconv.Atoi(config.Config("SMTP_PORT"))
		if err != nil {
			log.Printf("invalid SMTP_PORT: %v", err)
			return
		}
		username := config.Config("SMTP_USER")
		password := config.Config("SMTP_PASSWORD")

		tmpl, err := template.New("receipt").Parse(receiptTemplate)
		if err != nil {
			log.Printf("receipt template error: %v", err)
			return
		}
		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("receipt template render error: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", username)
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Payment receipt %s", data.ReceiptNo))
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send receipt %s to %s: %v", data.ReceiptNo, to, err)
		}
	}()
}
