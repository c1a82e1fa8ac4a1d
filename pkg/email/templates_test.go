package email

import (
	"strings"
	"testing"
)

func inquiryData() InquiryEmailData {
	return InquiryEmailData{
		To:            "fernanda@byfernandatovar.com",
		BrideFullName: "Ana García",
		GroomFullName: "Luis Pérez",
		Email:         "ana@example.com",
		WeddingDate:   "2026-05-01",
		WeddingCity:   "León",
	}
}

func TestBuildInquiryEmail_Subject(t *testing.T) {
	msg := BuildInquiryEmail(inquiryData())

	if !strings.Contains(msg.Subject, "Ana García") || !strings.Contains(msg.Subject, "Luis Pérez") {
		t.Errorf("subject should contain both names, got %q", msg.Subject)
	}
	if len(msg.To) != 1 || msg.To[0] != "fernanda@byfernandatovar.com" {
		t.Errorf("unexpected recipients: %v", msg.To)
	}
}

func TestBuildInquiryEmail_PlaceholdersForOptionalFields(t *testing.T) {
	msg := BuildInquiryEmail(inquiryData())

	if got := strings.Count(msg.HTMLBody, notSpecified); got != 5 {
		t.Errorf("expected 5 placeholders for empty optional fields, got %d", got)
	}
}

func TestBuildInquiryEmail_StorySectionsOnlyWhenPresent(t *testing.T) {
	data := inquiryData()
	msg := BuildInquiryEmail(data)
	if strings.Contains(msg.HTMLBody, "Historia de amor") {
		t.Error("love story section rendered for empty field")
	}

	data.LoveStory = "Nos conocimos en la universidad."
	data.WeddingDetails = "Boda de fin de semana en una hacienda."
	msg = BuildInquiryEmail(data)

	for _, want := range []string{"Historia de amor", "Nos conocimos en la universidad.", "Detalles de la boda", "Boda de fin de semana en una hacienda."} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("HTML body missing %q", want)
		}
	}
}

func TestBuildInquiryEmail_ValuesRenderedVerbatim(t *testing.T) {
	data := inquiryData()
	data.GuestCount = "150"
	data.WeddingVenue = "Hacienda San José"
	msg := BuildInquiryEmail(data)

	for _, want := range []string{"150", "Hacienda San José", "ana@example.com", "León"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("HTML body missing %q", want)
		}
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}
