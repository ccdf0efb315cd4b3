package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// MQTTConfig contains the broker subscription configuration for the
// telemetry feed
type MQTTConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"gte=0"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientID"`
	// topic filters for the two logical message families; defaults
	// match the upstream broker layout
	StationTopic   string `yaml:"stationTopic"`
	TransportTopic string `yaml:"transportTopic"`
}

// TelegramConfig contains the chat surface configuration. An empty
// token disables the bot; the HTTP surface keeps working without it.
type TelegramConfig struct {
	Token          string `yaml:"token"`
	FeedbackChatID int64  `yaml:"feedbackChatID"`
}

// RoutesConfig points at the reference-data directory: one CSV per
// route, filename (without extension) = route name
type RoutesConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

// TrackerConfig controls vehicle staleness sweeping. Zero disables the
// sweep, so vehicles are never expired.
type TrackerConfig struct {
	SweepAfterMinutes int `yaml:"sweepAfterMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	MQTT     MQTTConfig     `yaml:"mqtt" validate:"required"`
	Telegram TelegramConfig `yaml:"telegram"`
	Routes   RoutesConfig   `yaml:"routes" validate:"required"`
	Tracker  TrackerConfig  `yaml:"tracker"`
}
