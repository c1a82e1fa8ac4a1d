package email

import (
	"fmt"
	"strings"
)

// InquiryEmailData contains the data needed for the wedding inquiry email.
// All values are expected to be sanitized by the caller before rendering:
// the template interpolates them verbatim.
type InquiryEmailData struct {
	To string

	BrideFullName  string
	GroomFullName  string
	Email          string
	Instagram      string
	WeddingDate    string
	WeddingCity    string
	WeddingVenue   string
	GuestCount     string
	WeddingPlanner string
	Budget         string
	WeddingDetails string
	LoveStory      string
}

const notSpecified = "No especificado"

// BuildInquiryEmail creates the notification email the studio receives for
// each accepted contact form submission.
func BuildInquiryEmail(data InquiryEmailData) Message {
	subject := fmt.Sprintf("Nuevo contacto: %s & %s", data.BrideFullName, data.GroomFullName)

	textBody := buildInquiryText(data)
	htmlBody := buildInquiryHTML(data)

	return Message{
		To:       []string{data.To},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func buildInquiryText(data InquiryEmailData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Nuevo contacto - byfernandatovar.com\n\n")
	fmt.Fprintf(&b, "Datos de la pareja:\n")
	fmt.Fprintf(&b, "  Novia: %s\n", data.BrideFullName)
	fmt.Fprintf(&b, "  Novio: %s\n", data.GroomFullName)
	fmt.Fprintf(&b, "  Email: %s\n", data.Email)
	fmt.Fprintf(&b, "  Instagram: %s\n\n", orPlaceholder(data.Instagram))
	fmt.Fprintf(&b, "Detalles de la boda:\n")
	fmt.Fprintf(&b, "  Fecha: %s\n", data.WeddingDate)
	fmt.Fprintf(&b, "  Ciudad: %s\n", data.WeddingCity)
	fmt.Fprintf(&b, "  Venue: %s\n", orPlaceholder(data.WeddingVenue))
	fmt.Fprintf(&b, "  Número de invitados: %s\n", orPlaceholder(data.GuestCount))
	fmt.Fprintf(&b, "  Wedding Planner: %s\n", orPlaceholder(data.WeddingPlanner))
	fmt.Fprintf(&b, "  Presupuesto estimado: %s\n", orPlaceholder(data.Budget))

	if strings.TrimSpace(data.WeddingDetails) != "" {
		fmt.Fprintf(&b, "\nDetalles de la boda:\n%s\n", data.WeddingDetails)
	}
	if strings.TrimSpace(data.LoveStory) != "" {
		fmt.Fprintf(&b, "\nHistoria de amor:\n%s\n", data.LoveStory)
	}

	return b.String()
}

func buildInquiryHTML(data InquiryEmailData) string {
	field := func(label, value string) string {
		return fmt.Sprintf(`    <div class="field">
      <span class="label">%s:</span>
      <span class="value">%s</span>
    </div>
`, label, value)
	}

	var fields strings.Builder
	fields.WriteString(`    <h3>Datos de la pareja:</h3>
`)
	fields.WriteString(field("Novia", data.BrideFullName))
	fields.WriteString(field("Novio", data.GroomFullName))
	fields.WriteString(field("Email", data.Email))
	fields.WriteString(field("Instagram", orPlaceholder(data.Instagram)))
	fields.WriteString(`    <h3>Detalles de la boda:</h3>
`)
	fields.WriteString(field("Fecha", data.WeddingDate))
	fields.WriteString(field("Ciudad", data.WeddingCity))
	fields.WriteString(field("Venue", orPlaceholder(data.WeddingVenue)))
	fields.WriteString(field("Número de invitados", orPlaceholder(data.GuestCount)))
	fields.WriteString(field("Wedding Planner", orPlaceholder(data.WeddingPlanner)))
	fields.WriteString(field("Presupuesto estimado", orPlaceholder(data.Budget)))

	var stories strings.Builder
	stories.WriteString(`    <h3>Historia:</h3>
`)
	if strings.TrimSpace(data.WeddingDetails) != "" {
		fmt.Fprintf(&stories, `    <div class="story">
      <div class="label">Detalles de la boda:</div>
      <p>%s</p>
    </div>
`, data.WeddingDetails)
	}
	if strings.TrimSpace(data.LoveStory) != "" {
		fmt.Fprintf(&stories, `    <div class="story">
      <div class="label">Historia de amor:</div>
      <p>%s</p>
    </div>
`, data.LoveStory)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    h2 { color: #BE9B5F; border-bottom: 2px solid #BE9B5F; padding-bottom: 10px; }
    h3 { color: #2C2A29; margin-top: 25px; }
    .field { margin: 15px 0; }
    .label { font-weight: bold; color: #4B5563; }
    .value { color: #2C2A29; margin-left: 10px; }
    .story { background: #F0EBE1; padding: 15px; border-radius: 8px; margin: 10px 0; }
  </style>
</head>
<body>
  <div class="container">
    <h2>Nuevo contacto - byfernandatovar.com</h2>

%s%s  </div>
</body>
</html>`, fields.String(), stories.String())
}
