package config

// TopicsConfig is the on-disk form of the topic landmark table.
type TopicsConfig struct {
	Topics []TopicConfiguration `yaml:"topics"`
}

// TopicConfiguration is one city entry. Order in the file is the detection
// tie-break order.
type TopicConfiguration struct {
	Key     string   `yaml:"key"`
	Aliases []string `yaml:"aliases"`
	Markers []string `yaml:"markers"`
}
