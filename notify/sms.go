package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lockin-app/lockin/config"
)

var smsHTTPClient = &http.Client{Timeout: 10 * time.Second}

// SendSMS issues a single outbound call to the SMS vendor. Any non-2xx
// response or transport error is returned as an error; the caller decides
// whether it is fatal (it never is in the reminder batch).
func SendSMS(to, message string) error {
	cfg := config.Get()
	if cfg.SMSAPIURL == "" || cfg.SMSAPIKey == "" {
		return fmt.Errorf("sms not configured")
	}

	formatted := FormatPhone(to, cfg.SMSCountryPrefix)
	if formatted == "" {
		return fmt.Errorf("invalid phone number %q", to)
	}

	payload := map[string]string{
		"to":      formatted,
		"from":    cfg.SMSSenderID,
		"message": message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.SMSAPIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.SMSAPIKey)

	resp, err := smsHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms vendor returned status %d", resp.StatusCode)
	}
	return nil
}
