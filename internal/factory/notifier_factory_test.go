package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/adapters/smtp"
)

func TestCreateNotifierDerivesTLSFromPort(t *testing.T) {
	factory := NewNotifierFactory(testConfig(map[string]interface{}{
		"smtp.host": "mail.example.com",
		"smtp.port": 465,
	}), zap.NewNop())

	notifier := factory.CreateNotifier()
	require.IsType(t, &smtp.Notifier{}, notifier)
}

func TestCreateNotifierSecureOverride(t *testing.T) {
	factory := NewNotifierFactory(testConfig(map[string]interface{}{
		"smtp.host":   "mail.example.com",
		"smtp.port":   2525,
		"smtp.secure": true,
	}), zap.NewNop())

	notifier := factory.CreateNotifier()
	assert.IsType(t, &smtp.Notifier{}, notifier)
}
