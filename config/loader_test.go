package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
mqtt:
  host: broker.example.com
  username: infobot
  password: secret
telegram:
  token: "12345:abc"
  feedbackChatID: -100200300
routes:
  dir: res/routes
tracker:
  sweepAfterMinutes: 90
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.MQTT.Host != "broker.example.com" {
		t.Errorf("unexpected host %q", cfg.MQTT.Host)
	}
	if cfg.Telegram.FeedbackChatID != -100200300 {
		t.Errorf("unexpected feedback chat %d", cfg.Telegram.FeedbackChatID)
	}
	if cfg.Tracker.SweepAfterMinutes != 90 {
		t.Errorf("unexpected sweep %d", cfg.Tracker.SweepAfterMinutes)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  host: localhost
routes:
  dir: res/routes
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.MQTT.Port != 1883 {
		t.Errorf("expected default MQTT port 1883, got %d", cfg.MQTT.Port)
	}
	if cfg.MQTT.ClientID != "eta-digest" {
		t.Errorf("expected default client id, got %q", cfg.MQTT.ClientID)
	}
	if cfg.MQTT.StationTopic != "state/station/+" || cfg.MQTT.TransportTopic != "state/transport/+" {
		t.Errorf("unexpected default topics %q %q", cfg.MQTT.StationTopic, cfg.MQTT.TransportTopic)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("loading a non-existent config should return an error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "mqtt: [[[")
	if _, err := Load(path); err == nil {
		t.Error("loading invalid YAML should return an error")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	// missing mqtt host fails validation
	path := writeConfig(t, `
routes:
  dir: res/routes
`)
	if _, err := Load(path); err == nil {
		t.Error("missing mqtt host should fail validation")
	}
}
