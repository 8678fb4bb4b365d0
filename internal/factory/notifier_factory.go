package factory

import (
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/adapters/smtp"
	"github.com/silambarasu-a/portfolio-backend/internal/config"
	"github.com/silambarasu-a/portfolio-backend/internal/core"
)

// NotifierFactory creates notifiers based on configuration
type NotifierFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewNotifierFactory creates a new notifier factory
func NewNotifierFactory(cfg *config.Config, logger *zap.Logger) *NotifierFactory {
	return &NotifierFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateNotifier creates the SMTP notifier from the configuration
func (f *NotifierFactory) CreateNotifier() core.Notifier {
	smtpCfg := smtp.Config{
		Host:          f.cfg.GetString("smtp.host"),
		Port:          f.cfg.GetInt("smtp.port"),
		Username:      f.cfg.GetString("smtp.user"),
		Password:      f.cfg.GetString("smtp.password"),
		FromName:      f.cfg.GetString("smtp.from_name"),
		NotifyAddress: f.cfg.GetString("notify.email"),
		AutoReply:     f.cfg.GetBool("notify.auto_reply"),
		TemplatePath:  f.cfg.GetString("notify.template_path"),
	}

	// An explicit smtp.secure setting overrides the port-derived TLS mode
	if f.cfg.IsSet("smtp.secure") {
		secure := f.cfg.GetBool("smtp.secure")
		smtpCfg.Secure = &secure
	}

	return smtp.NewNotifier(smtpCfg, f.logger)
}
