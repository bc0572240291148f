package mail

import (
	"fmt"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/estatecrm-api/pkg/config"
)

// Sender envía correos transaccionales por SMTP. Si el host está vacío el
// envío queda deshabilitado: se registra en el log y no se devuelve error.
// El correo nunca debe bloquear la operación que lo origina.
type Sender struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
	log    zerolog.Logger
}

// NewSender construye el colaborador de correo.
func NewSender(cfg config.SMTPConfig, log zerolog.Logger) *Sender {
	s := &Sender{cfg: cfg, log: log}
	if cfg.Host != "" {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return s
}

// Enabled indica si hay SMTP configurado.
func (s *Sender) Enabled() bool {
	return s.dialer != nil
}

// SendWelcome envía el correo de bienvenida a un empleado recién creado,
// incluyendo su contraseña temporal.
func (s *Sender) SendWelcome(toEmail, fullName, tempPassword string) error {
	subject := "Bienvenido al equipo"
	body := fmt.Sprintf(
		"Hola %s,\n\n"+
			"Tu cuenta ha sido creada en el CRM.\n\n"+
			"Usuario: %s\n"+
			"Contraseña temporal: %s\n\n"+
			"Por favor cambia tu contraseña al iniciar sesión.\n",
		fullName, toEmail, tempPassword,
	)
	return s.send(toEmail, subject, body)
}

func (s *Sender) send(to, subject, body string) error {
	if s.dialer == nil {
		s.log.Info().Str("to", to).Str("subject", subject).
			Msg("SMTP deshabilitado; correo no enviado")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
