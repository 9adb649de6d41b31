package telemetry

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/events"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/logger"
)

// Publisher pushes rental lifecycle notifications to subscribed systems.
type Publisher interface {
	PublishTransaction(ev events.TransactionEvent) error
	PublishStateChange(ev events.StateChangeEvent) error
	Disconnect()
}

// Config defines the connection parameters for the Paho MQTT publisher.
type Config struct {
	Enabled bool `json:"enabled"`
	// Mode selects the publisher implementation, "paho" unless overridden.
	Mode        string `json:"mode"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         byte   `json:"qos"`
	UseTLS      bool   `json:"use_tls"`
	ClientCert  string `json:"client_cert"`
	ClientKey   string `json:"client_key"`
	CABundle    string `json:"ca_bundle"`
	MaxRetries  int    `json:"max_retries"`
	BackoffMS   int    `json:"backoff_ms"`
}

// Validate checks mandatory fields when the publisher is enabled.
func (c Config) Validate() error {
	if !c.Enabled || c.Mode == "mock" {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("telemetry: broker is required")
	}
	if c.UseTLS && (c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "") {
		return fmt.Errorf("telemetry: tls requires client_cert, client_key and ca_bundle")
	}
	return nil
}

// pahoClient is the subset of the Paho API the publisher needs.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// PahoPublisher implements Publisher over an MQTT broker.
type PahoPublisher struct {
	cli        pahoClient
	prefix     string
	qos        byte
	maxRetries int
	backoff    time.Duration
	log        logger.Logger
}

// NewPahoPublisher connects to the MQTT broker.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.New("telemetry")
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = "rental/fleet"
	}
	p := &PahoPublisher{
		prefix:     prefix,
		qos:        cfg.QoS,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		log:        log,
	}
	if p.maxRetries <= 0 {
		p.maxRetries = 3
	}
	if p.backoff <= 0 {
		p.backoff = 100 * time.Millisecond
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	p.cli = c
	return p, nil
}

// NewClientOptions builds mqtt client options from Config.
func NewClientOptions(cfg Config) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	return opts, nil
}

// LoadTLSConfig loads the TLS configuration from the file paths in the
// config.
func (c Config) LoadTLSConfig() (*tls.Config, error) {
	if c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "" {
		return nil, fmt.Errorf("tls config requires client_cert, client_key and ca_bundle")
	}
	cert, err := tls.LoadX509KeyPair(c.ClientCert, c.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("load cert: %w", err)
	}
	caBytes, err := os.ReadFile(c.CABundle)
	if err != nil {
		return nil, fmt.Errorf("read ca: %w", err)
	}
	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(caBytes)
	return &tls.Config{Certificates: []tls.Certificate{cert}, RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

type transactionMsg struct {
	Op        string  `json:"op"`
	VehicleID int     `json:"vehicle_id"`
	Kind      string  `json:"kind"`
	Renter    string  `json:"renter,omitempty"`
	Outcome   string  `json:"outcome"`
	Amount    float64 `json:"amount,omitempty"`
	Error     string  `json:"error,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

type stateMsg struct {
	VehicleID int    `json:"vehicle_id"`
	Kind      string `json:"kind"`
	Rented    bool   `json:"rented"`
	Renter    string `json:"renter,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// PublishTransaction emits the transaction outcome on the vehicle's events
// topic.
func (p *PahoPublisher) PublishTransaction(ev events.TransactionEvent) error {
	msg := transactionMsg{
		Op:        string(ev.Op),
		VehicleID: ev.VehicleID,
		Kind:      string(ev.Kind),
		Renter:    ev.Renter,
		Outcome:   ev.Outcome,
		Amount:    ev.Amount,
		Timestamp: ev.Time.UnixMilli(),
	}
	if ev.Err != nil {
		msg.Error = ev.Err.Error()
	}
	topic := fmt.Sprintf("%s/%d/events", p.prefix, ev.VehicleID)
	return p.publish(topic, msg)
}

// PublishStateChange emits the availability transition on the vehicle's
// state topic.
func (p *PahoPublisher) PublishStateChange(ev events.StateChangeEvent) error {
	msg := stateMsg{
		VehicleID: ev.VehicleID,
		Kind:      string(ev.Kind),
		Rented:    ev.Rented,
		Renter:    ev.Renter,
		Timestamp: time.Now().UnixMilli(),
	}
	topic := fmt.Sprintf("%s/%d/state", p.prefix, ev.VehicleID)
	return p.publish(topic, msg)
}

func (p *PahoPublisher) publish(topic string, msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	var publishErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		token := p.cli.Publish(topic, p.qos, false, payload)
		token.Wait()
		publishErr = token.Error()
		if publishErr == nil {
			return nil
		}
		p.log.Errorf("publish attempt %d failed: %v", attempt+1, publishErr)
		time.Sleep(p.backoff * time.Duration(1<<attempt))
	}
	return publishErr
}

// Disconnect gracefully closes the MQTT connection.
func (p *PahoPublisher) Disconnect() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
