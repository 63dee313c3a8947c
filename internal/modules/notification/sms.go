package notification

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type SMSSender interface {
	Send(to, body string) error
}

// TwilioSender sends SMS through the Twilio REST API. With empty credentials
// it runs disabled and only logs, so local and test environments need no
// Twilio account.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	if accountSID == "" || authToken == "" || from == "" {
		return &TwilioSender{}
	}
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (t *TwilioSender) Send(to, body string) error {
	if t.client == nil {
		log.Printf("sms disabled, skipping message to %s", to)
		return nil
	}
	if to == "" {
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", to, err)
	}
	if resp.Sid != nil {
		log.Printf("sms sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}
