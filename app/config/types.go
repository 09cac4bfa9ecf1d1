package config

// TopicsConfig is the YAML file describing what the pipeline collects: the
// topic queries sent to the search service, plus optional RSS feeds that
// supplement it.
type TopicsConfig struct {
	Topics []string     `yaml:"topics"`
	Feeds  []FeedConfig `yaml:"feeds"`
}

// FeedConfig describes one supplementary RSS feed.
type FeedConfig struct {
	Name           string `yaml:"name"`
	URL            string `yaml:"url"`
	ExtractContent bool   `yaml:"extract_content"` // fetch readable article text when the item has no body
	Timeout        int    `yaml:"timeout"`         // seconds
}
