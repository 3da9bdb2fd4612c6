package bot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the Telegram Bot API. The 10s http timeout also bounds
// every per-recipient send during a broadcast.
type Client struct {
	token  string
	httpc  *http.Client
	apiURL string
}

func NewClient(token string) *Client {
	return &Client{
		token:  token,
		apiURL: "https://api.telegram.org/bot" + token,
		httpc:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) send(method string, payload any) error {
	b, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", c.apiURL+"/"+method, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("telegram %s: %s", method, resp.Status)
	}
	return nil
}

func (c *Client) SendMessage(chatID int64, text string, replyMarkup any) error {
	data := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if replyMarkup != nil {
		data["reply_markup"] = replyMarkup
	}
	return c.send("sendMessage", data)
}

// SendPhoto accepts a Telegram file_id or a public URL in photo.
func (c *Client) SendPhoto(chatID int64, photo, caption string, replyMarkup any) error {
	data := map[string]any{
		"chat_id": chatID,
		"photo":   photo,
	}
	if caption != "" {
		data["caption"] = caption
		data["parse_mode"] = "Markdown"
	}
	if replyMarkup != nil {
		data["reply_markup"] = replyMarkup
	}
	return c.send("sendPhoto", data)
}

func (c *Client) SetWebhook(url string, dropPending bool) error {
	return c.send("setWebhook", map[string]any{
		"url":                  url,
		"drop_pending_updates": dropPending,
	})
}

func (c *Client) DeleteWebhook(dropPending bool) error {
	return c.send("deleteWebhook", map[string]any{
		"drop_pending_updates": dropPending,
	})
}

// RemoveKeyboard clears any custom reply keyboard on the client.
func RemoveKeyboard() any {
	return map[string]any{"remove_keyboard": true}
}
