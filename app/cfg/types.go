package cfg

type Cfg struct {
	// Article search service
	NewsAPIKey string
	NewsAPIURL string
	DaysBack   int
	PageSize   int
	MaxPages   int
	Language   string

	// Leaning classification service
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	LLMRPM     int

	// Application configuration
	TopicsFile      string
	OutputFile      string
	Port            string
	RefreshInterval int // hours
	APIAccessKey    string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
