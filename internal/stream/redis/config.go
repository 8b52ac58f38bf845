package redis

const (
	DefaultRequestStream  = "travel-chat-requests"
	DefaultResponseStream = "travel-chat-responses"
	DefaultGroup          = "travel-chat-group"

	payloadField = "payload"
)

type RedisStreamConfig struct {
	RedisAddr      string
	RedisPassword  string
	Stream         string
	ResponseStream string
	Group          string
	ConsumerName   string
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, stream string, responseStream string, group string, consumerName string) *RedisStreamConfig {
	cfg := &RedisStreamConfig{
		RedisAddr:      redisAddr,
		RedisPassword:  redisPassword,
		Stream:         stream,
		ResponseStream: responseStream,
		Group:          group,
		ConsumerName:   consumerName,
	}
	cfg.applyDefaults()
	return cfg
}

func (c *RedisStreamConfig) applyDefaults() {
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.Stream == "" {
		c.Stream = DefaultRequestStream
	}
	if c.ResponseStream == "" {
		c.ResponseStream = DefaultResponseStream
	}
	if c.Group == "" {
		c.Group = DefaultGroup
	}
	if c.ConsumerName == "" {
		c.ConsumerName = "travel-worker"
	}
}
