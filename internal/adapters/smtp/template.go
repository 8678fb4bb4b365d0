package smtp

import (
	"os"

	"go.uber.org/zap"
)

// loadTemplate reads the operator-notification template from disk. Any read
// failure falls back to the compiled-in template; this never fails.
func loadTemplate(path string, logger *zap.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to load email template, using built-in fallback",
			zap.String("path", path),
			zap.Error(err))
		return fallbackTemplate
	}
	return string(data)
}

// fallbackTemplate is used when the template file is missing or unreadable
const fallbackTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; background-color: #0f172a; color: #ffffff; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #7c3aed 0%, #ec4899 100%); padding: 20px; border-radius: 10px; text-align: center; }
        .content { background: #1e293b; padding: 20px; margin: 20px 0; border-radius: 10px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #a855f7; }
        .value { background: rgba(255, 255, 255, 0.1); padding: 10px; border-radius: 5px; margin-top: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{email}}</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="value">{{message}}</div>
            </div>
            <p><strong>Received:</strong> {{timestamp}}</p>
        </div>
    </div>
</body>
</html>`

// autoReplyTemplate is the acknowledgement sent to the submitter when the
// auto-reply feature is enabled
const autoReplyTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank you for reaching out!</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #0f172a; color: #ffffff; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: rgba(15, 23, 42, 0.95); border-radius: 16px; overflow: hidden; }
        .header { background: linear-gradient(135deg, #7c3aed 0%, #ec4899 100%); padding: 30px 24px; text-align: center; }
        .content { padding: 30px 24px; line-height: 1.6; }
        .footer { padding: 20px 24px; text-align: center; border-top: 1px solid rgba(255, 255, 255, 0.1); color: rgba(255, 255, 255, 0.7); font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1 style="margin: 0; font-size: 24px;">Thanks for reaching out!</h1>
        </div>
        <div class="content">
            <p>Hi <strong>{{name}}</strong>,</p>
            <p>Thank you for reaching out through my portfolio! I've received your message and truly appreciate you taking the time to connect.</p>
            <p>I typically respond within <strong>24 hours</strong> and am excited to discuss your project or inquiry further.</p>
            <p>Looking forward to our conversation!</p>
            <p style="margin-top: 30px;">Best regards,<br><strong>{{sender}}</strong></p>
        </div>
        <div class="footer">
            <p>This is an automated response. Please don't reply to this email.</p>
        </div>
    </div>
</body>
</html>`
