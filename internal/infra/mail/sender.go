package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/brandleads/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		TemplateDir: "templates",
	}
}

func (s *EmailSender) SendLeadAlert(job queue.MailJob) error {
	data := LeadAlertData{
		LeadID:    job.LeadID,
		BrandName: job.BrandName,
		Email:     job.Email,
		Phone:     job.Phone,
		Plan:      job.Plan,
	}
	subject := fmt.Sprintf("New lead: %s", job.BrandName)
	return s.send(job.To, subject, "lead_alert.html", data)
}

func (s *EmailSender) SendLeadWelcome(job queue.MailJob) error {
	data := WelcomeData{BrandName: job.BrandName}
	subject := fmt.Sprintf("Thanks for reaching out, %s! We got your request 🚀", job.BrandName)
	return s.send(job.To, subject, "lead_welcome.html", data)
}

func (s *EmailSender) SendCredentials(job queue.MailJob) error {
	data := CredentialsData{
		BrandName: job.BrandName,
		Username:  job.Username,
		Password:  job.Password,
	}
	return s.send(job.To, "Your client portal access is ready", "credentials.html", data)
}

func (s *EmailSender) SendDescriptionRequestAlert(job queue.MailJob) error {
	data := DescriptionRequestData{
		LeadID:        job.LeadID,
		BrandName:     job.BrandName,
		Email:         job.Email,
		RequestedText: job.RequestedText,
	}
	subject := fmt.Sprintf("Description change requested by %s", job.BrandName)
	return s.send(job.To, subject, "description_request.html", data)
}

func (s *EmailSender) send(to, subject, templateName string, data any) error {
	tmplPath := filepath.Join(s.TemplateDir, templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email over SMTP: %w", err)
	}

	return nil
}
