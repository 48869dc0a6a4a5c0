package notifier

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"
)

// SMSNotifier sends trade notifications through the Twilio messages API.
type SMSNotifier struct {
	fromNumber string
	toNumber   string
	http       *resty.Client
	path       string
}

// NewSMSNotifier returns nil when notifications are disabled or the Twilio
// settings are incomplete. Callers treat a nil notifier as a no-op.
func NewSMSNotifier(config Config) *SMSNotifier {
	if !config.Enabled {
		logger.Info("[notifier] SMS notifications are disabled by configuration")
		return nil
	}

	if config.AccountSID == "" || config.AuthToken == "" || config.FromNumber == "" || config.ToNumber == "" {
		logger.Warn("[notifier] Twilio credentials or phone numbers are not fully configured, SMS notifications will be disabled")
		return nil
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetBasicAuth(config.AccountSID, config.AuthToken)

	logger.Info("[notifier] Twilio client initialized for SMS notifications")
	return &SMSNotifier{
		fromNumber: config.FromNumber,
		toNumber:   config.ToNumber,
		http:       httpClient,
		path:       fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", config.AccountSID),
	}
}

type twilioMessageResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"` // error detail on non-2xx
}

func (n *SMSNotifier) Send(body string) error {
	if body == "" {
		return fmt.Errorf("sms body is empty")
	}

	var parsed twilioMessageResponse
	resp, err := n.http.R().
		SetFormData(map[string]string{
			"From": n.fromNumber,
			"To":   n.toNumber,
			"Body": body,
		}).
		SetResult(&parsed).
		SetError(&parsed).
		Post(n.path)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}

	if resp.StatusCode() >= 300 {
		return fmt.Errorf("twilio API error HTTP %d: %s", resp.StatusCode(), parsed.Message)
	}

	logger.WithFields(map[string]interface{}{
		"to":  n.toNumber,
		"sid": parsed.SID,
	}).Info("[notifier] SMS sent successfully")
	return nil
}
