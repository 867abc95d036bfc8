package metrics

import (
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
)

// StatsdConfig represents configuration options for the statsd reporter.
type StatsdConfig struct {
	Enabled      bool    `yaml:"enabled" mapstructure:"enabled" default:"false"`
	Address      string  `yaml:"address" mapstructure:"address" default:"127.0.0.1:8125"`
	Prefix       string  `yaml:"prefix" mapstructure:"prefix" default:"meridianApi"`
	SamplingRate float64 `yaml:"sampling_rate" mapstructure:"sampling_rate" default:"1"`
	Separator    string  `yaml:"separator" mapstructure:"separator" default:"."`
}

// StatsdClient reports metrics over the statsd wire protocol. Tags are
// carried inside the stat name in influx format, so the datadog-style
// tag list is never populated.
type StatsdClient struct {
	client *std.Client
	rate   float64
}

func NewStatsdClient(cfg StatsdConfig) (*StatsdClient, error) {
	client, err := std.New(cfg.Address, std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}

	return &StatsdClient{
		client: client,
		rate:   cfg.SamplingRate,
	}, nil
}

// Timing reports a duration in milliseconds under the given stat name.
func (sc *StatsdClient) Timing(name string, value int64) {
	_ = sc.client.Timing(name, time.Duration(value)*time.Millisecond, nil, sc.rate)
}

// Increment bumps the counter under the given stat name.
func (sc *StatsdClient) Increment(name string) {
	_ = sc.client.Incr(name, nil, sc.rate)
}

func (sc *StatsdClient) Close() error {
	return sc.client.Close()
}
