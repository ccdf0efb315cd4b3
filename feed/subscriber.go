package feed

import (
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/theoremus-urban-solutions/eta-digest/config"
)

// qosExactlyOnce is the MQTT quality of service for feed subscriptions.
const qosExactlyOnce byte = 2

// Handler receives every inbound feed message.
type Handler func(topic string, payload []byte)

// Subscriber maintains the MQTT subscription that delivers feed
// messages to a handler. Reconnects and resubscribes are automatic;
// recovery from broker outages is this component's job, the pipeline
// behind it stays stateless with respect to connection health.
type Subscriber struct {
	client mqtt.Client
	topics []string
}

// NewSubscriber builds a subscriber for the configured broker. The
// handler is invoked from the client's receive goroutine for every
// message on the configured topics.
func NewSubscriber(cfg config.MQTTConfig, handler Handler) *Subscriber {
	s := &Subscriber{
		topics: []string{cfg.StationTopic, cfg.TransportTopic},
	}

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(30 * time.Second)
	if cfg.Username != "" && cfg.Password != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("feed: connection lost: %v", err)
	})
	// subscribing from OnConnect restores the subscriptions after every
	// reconnect, not just the first connect
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		for _, topic := range s.topics {
			topic := topic
			token := c.Subscribe(topic, qosExactlyOnce, func(_ mqtt.Client, m mqtt.Message) {
				handler(m.Topic(), m.Payload())
			})
			go func() {
				token.Wait()
				if err := token.Error(); err != nil {
					log.Printf("feed: subscribe %s failed: %v", topic, err)
					return
				}
				log.Printf("feed: subscribed to %s", topic)
			}()
		}
	})

	s.client = mqtt.NewClient(opts)
	return s
}

// Start connects to the broker, retrying with exponential backoff. It
// returns an error only when the broker stays unreachable past the
// backoff budget.
func (s *Subscriber) Start() error {
	connect := func() error {
		token := s.client.Connect()
		token.Wait()
		return token.Error()
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	return backoff.Retry(connect, bo)
}

// Close disconnects from the broker, allowing in-flight work to finish.
func (s *Subscriber) Close() {
	s.client.Disconnect(250)
}
