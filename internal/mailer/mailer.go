package mailer

import (
	"fmt"
	"io"
	"strings"

	"github.com/LeandroPanozzo/Spa-produccion/internal/config"
	"github.com/LeandroPanozzo/Spa-produccion/internal/invoice"
	"gopkg.in/gomail.v2"
)

// Sender abstracts the SMTP dial so tests can intercept the message.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// InvoiceMailer renders an invoice and emails it to the client with the PDF
// attached. It is the post-payment notifier: callers treat failures as
// log-only.
type InvoiceMailer struct {
	sender   Sender
	renderer invoice.Renderer
	from     string
}

func New(cfg *config.Config, renderer invoice.Renderer) *InvoiceMailer {
	return &InvoiceMailer{
		sender:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		renderer: renderer,
		from:     cfg.EmailFrom,
	}
}

// NewWithSender is used by tests and alternative transports.
func NewWithSender(sender Sender, renderer invoice.Renderer, from string) *InvoiceMailer {
	return &InvoiceMailer{sender: sender, renderer: renderer, from: from}
}

func (m *InvoiceMailer) Dispatch(inv *invoice.Invoice) error {
	pdf, err := m.renderer.Render(inv)
	if err != nil {
		return fmt.Errorf("can't render invoice: %w", err)
	}

	services := make([]string, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		services = append(services, line.Name)
	}

	body := fmt.Sprintf(
		"Estimado/a %s,\n\n"+
			"Adjuntamos su factura por el servicio solicitado.\n\n"+
			"Detalles de la cita:\n"+
			"Fecha y Hora: %s\n"+
			"Servicios: %s\n"+
			"Profesional: %s\n\n"+
			"IMPORTANTE: Recuerde que debe presentarse con la factura adjunta, a su reserva\n"+
			"Gracias por confiar en nosotros.",
		inv.ClientFirstName,
		inv.AppointmentDate.Format("02/01/2006 15:04"),
		strings.Join(services, ", "),
		inv.Professional,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", inv.ClientEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Factura para la cita #%d", inv.AppointmentID))
	msg.SetBody("text/plain", body)
	msg.Attach(
		fmt.Sprintf("factura_%d.pdf", inv.AppointmentID),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
	)

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("can't send invoice email: %w", err)
	}
	return nil
}
