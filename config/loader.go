package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the application configuration. When path is
// empty, a list of default locations is tried in order.
func Load(path string) (*AppConfig, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "/etc/eta-digest/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return nil, err
	}
	if err := v.Struct(cfg.MQTT); err != nil {
		return nil, err
	}
	if err := v.Struct(cfg.Routes); err != nil {
		return nil, err
	}
	if err := v.Struct(cfg.Tracker); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.MQTT.Port == 0 {
		cfg.MQTT.Port = 1883
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "eta-digest"
	}
	if cfg.MQTT.StationTopic == "" {
		cfg.MQTT.StationTopic = "state/station/+"
	}
	if cfg.MQTT.TransportTopic == "" {
		cfg.MQTT.TransportTopic = "state/transport/+"
	}
	if cfg.Routes.Dir == "" {
		cfg.Routes.Dir = "res/routes"
	}
}
