package smtp

import (
	"bytes"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"labo-isometeer-backend/config"
)

// SendWithAttachment envía un correo con un adjunto en memoria
// (facturas en PDF, planillas). Para texto plano alcanza con SendEMail.
func SendWithAttachment(to, subject, body, fileName string, file []byte) error {
	logger := log.
		WithField("to", to).
		WithField("file_name", fileName)
	cfg := config.Conf.Smtp
	if cfg.User == "" || cfg.Host == "" || cfg.Port == "" {
		logger.Warn("correo con adjunto no enviado: el cliente smtp no está configurado")
		return nil
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", config.Conf.Lab.Name+" - "+subject)
	m.SetBody("text/plain", body)
	m.Attach(fileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(file))
		return err
	}))

	d := gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password)
	err = d.DialAndSend(m)
	if err != nil {
		logger.WithError(err).Error("error enviando el correo con adjunto")
		return err
	}
	logger.Info("correo con adjunto enviado")
	return nil
}
