package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// chdir mirrors t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir()) // no .env present

	cfg := Load()

	assert.Equal(t, "receiptly-api", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "./data/customers.json", cfg.Customers.File)
	assert.Equal(t, 10, cfg.Customers.SuggestLimit)
	assert.Equal(t, "wa.me", cfg.WhatsApp.Domain)
	assert.Equal(t, "91", cfg.WhatsApp.CountryCode)
	assert.Equal(t, "₹", cfg.WhatsApp.Currency)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "./web", cfg.Web.Dir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SUGGEST_LIMIT", "25")
	t.Setenv("WHATSAPP_COUNTRY_CODE", "254")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 25, cfg.Customers.SuggestLimit)
	assert.Equal(t, "254", cfg.WhatsApp.CountryCode)
}

func TestDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host: "db", Port: "5432", Name: "receiptly",
		User: "postgres", Password: "secret",
		SSLMode: "disable", Timezone: "Asia/Kolkata",
	}
	assert.Equal(t,
		"host=db user=postgres password=secret dbname=receiptly port=5432 sslmode=disable TimeZone=Asia/Kolkata",
		cfg.DSN())
}
