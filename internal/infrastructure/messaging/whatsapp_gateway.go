package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"mototrackr/internal/usecase/interfaces"
)

var ErrMissingWhatsAppAccessToken = errors.New("missing WHATSAPP_ACCESS_TOKEN")

const defaultGraphAPIVersion = "v18.0"

// WhatsAppGateway dispatches composed messages through the WhatsApp Cloud
// API (Meta Graph API).
//
// Supported env vars:
//   - WHATSAPP_ACCESS_TOKEN (required unless mock mode)
//   - WHATSAPP_PHONE_NUMBER_ID (required unless mock mode)
//   - WHATSAPP_API_VERSION (default: v18.0)
//   - WHATSAPP_GATEWAY_MOCK / DISPATCH_MOCK (local-friendly: log instead of send)
//
// Dispatch is accepted-for-dispatch only; there is no delivery receipt.

type WhatsAppGateway struct {
	apiURL         string
	accessToken    string
	trackingOrigin string
	client         *http.Client
	mockMode       bool
}

var _ interfaces.IMessageDispatcher = (*WhatsAppGateway)(nil)

func NewWhatsAppGateway(accessToken, phoneNumberID, trackingOrigin string) (*WhatsAppGateway, error) {
	if isDispatchMockEnabled() {
		log.Printf("[whatsapp][gateway] mock mode enabled")
		return &WhatsAppGateway{mockMode: true, trackingOrigin: trackingOrigin}, nil
	}

	if accessToken == "" || phoneNumberID == "" {
		log.Printf("[whatsapp][gateway] missing WHATSAPP_ACCESS_TOKEN / WHATSAPP_PHONE_NUMBER_ID")
		return nil, ErrMissingWhatsAppAccessToken
	}

	version := os.Getenv("WHATSAPP_API_VERSION")
	if version == "" {
		version = defaultGraphAPIVersion
	}

	return &WhatsAppGateway{
		apiURL:         fmt.Sprintf("https://graph.facebook.com/%s/%s/messages", version, phoneNumberID),
		accessToken:    accessToken,
		trackingOrigin: trackingOrigin,
		client:         &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type textPayload struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type sendRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *WhatsAppGateway) Send(ctx context.Context, phone, message string) error {
	to := NormalizeDispatchPhone(phone)

	if g.mockMode {
		log.Printf("[whatsapp][gateway] mock send to=%s message_len=%d", to, len(message))
		return nil
	}

	body, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             textPayload{PreviewURL: false, Body: message},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var sr sendResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return fmt.Errorf("failed to decode response: %w body=%q", err, string(respBody))
	}

	if resp.StatusCode != http.StatusOK {
		if sr.Error.Message != "" {
			return fmt.Errorf("whatsapp api error: %s", sr.Error.Message)
		}
		return fmt.Errorf("unexpected status code: %d body=%q", resp.StatusCode, string(respBody))
	}
	if len(sr.Messages) == 0 || sr.Messages[0].ID == "" {
		return fmt.Errorf("missing message id in response body=%q", string(respBody))
	}

	log.Printf("[whatsapp][gateway] accepted to=%s message_id=%s", to, sr.Messages[0].ID)
	return nil
}

func (g *WhatsAppGateway) TrackingLink(jobID string) string {
	return TrackingLink(g.trackingOrigin, jobID)
}

func isDispatchMockEnabled() bool {
	for _, key := range []string{"WHATSAPP_GATEWAY_MOCK", "DISPATCH_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
