package bootstrap

import (
	"dealership-api/internal/infra/mail"
	"dealership-api/internal/infra/template"
	"dealership-api/internal/pkg/config"
	"dealership-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		func(cfg config.Config) (commands.Mailer, error) {
			return mail.NewSMTPMailer(cfg.SMTP)
		},
		func() (commands.TemplateRenderer, error) {
			return template.NewRenderer()
		},
	),
)
