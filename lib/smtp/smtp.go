package smtp

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEMail(to, message, subject string) error
}

func Connect(user, password, host, port, sender string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		sender:     sender,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	sender     string
	tlsEnabled bool
}

func (i impl) SendEMail(to, message, subject string) (err error) {
	logger := log.WithField("recipient", to)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("E-mail não enviado, cliente smtp não configurado")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)

	msg := gomail.NewMessage()
	msg.SetHeader("From", i.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Talentos - %s", subject))
	msg.SetBody("text/plain", message)
	body := new(bytes.Buffer)
	if _, err = msg.WriteTo(body); err != nil {
		logger.WithError(err).Error("Erro ao montar o e-mail")
		return err
	}

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		log.WithError(err).Error("Erro ao enviar o e-mail")
		return err
	}
	logger.Info("e-mail enviado")
	return nil
}
