package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// All times in the bot (deadline gate, sheet timestamps, admin captions)
// are Asia/Tashkent.
var tzTashkent *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Tashkent")
	if err != nil {
		// fallback if tzdata is missing (unlikely on Ubuntu)
		tzTashkent = time.FixedZone("UZT", 5*3600)
		return
	}
	tzTashkent = loc
}

type Config struct {
	Token         string
	AdminChatID   int64
	PublicURL     string
	WebhookSecret string
	Addr          string

	Deadline   time.Time // midnight of the last open day, in TZ
	Capacity27 int
	Capacity28 int

	SheetBackend string // "google" | "sqlite"
	SheetID      string
	SheetTab     string
	CredsJSON    string
	SheetDB      string

	TZ *time.Location
}

func Load() (*Config, error) {
	c := &Config{
		Token:         strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		PublicURL:     strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_URL")), "/"),
		WebhookSecret: strings.TrimSpace(os.Getenv("WEBHOOK_SECRET")),
		Addr:          getEnv("ADDR", ":8080"),
		Capacity27:    getEnvInt("CAPACITY_27", 200),
		Capacity28:    getEnvInt("CAPACITY_28", 200),
		SheetBackend:  getEnv("SHEET_BACKEND", "google"),
		SheetID:       strings.TrimSpace(os.Getenv("GSHEET_ID")),
		SheetTab:      getEnv("GSHEET_TAB", "Sheet1"),
		CredsJSON:     strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")),
		SheetDB:       getEnv("SHEET_DB", "sheet.db"),
		TZ:            tzTashkent,
	}

	if c.Token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is missing")
	}
	admin, err := strconv.ParseInt(getEnv("ADMIN_CHAT_ID", "0"), 10, 64)
	if err != nil || admin == 0 {
		return nil, fmt.Errorf("ADMIN_CHAT_ID is missing")
	}
	c.AdminChatID = admin
	if c.WebhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET is missing")
	}
	if c.PublicURL == "" {
		return nil, fmt.Errorf("PUBLIC_URL is missing")
	}
	if c.SheetBackend == "google" && c.SheetID == "" {
		return nil, fmt.Errorf("GSHEET_ID is missing")
	}
	if c.SheetBackend == "google" && c.CredsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is missing")
	}

	dl, err := time.ParseInLocation("2006-01-02", getEnv("REG_DEADLINE", "2025-12-25"), c.TZ)
	if err != nil {
		return nil, fmt.Errorf("REG_DEADLINE: %v", err)
	}
	c.Deadline = dl

	return c, nil
}

// Closed reports whether registration is closed at the given instant.
// The window stays open through the whole deadline day.
func (c *Config) Closed(now time.Time) bool {
	y, m, d := now.In(c.TZ).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, c.TZ)
	return today.After(c.Deadline)
}

// Now returns the current wall-clock time in the bot's zone.
func (c *Config) Now() time.Time { return time.Now().In(c.TZ) }

func (c *Config) WebhookPath() string {
	return "/telegram/webhook/" + c.WebhookSecret
}

func (c *Config) WebhookURL() string {
	return c.PublicURL + c.WebhookPath()
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
