package newsapi

// ArticlesRequest is the POST body of the getArticles endpoint.
type ArticlesRequest struct {
	Action                 string   `json:"action"`
	Keyword                string   `json:"keyword"`
	ArticlesSortBy         string   `json:"articlesSortBy,omitempty"`
	ArticlesSortByAsc      bool     `json:"articlesSortByAsc"`
	ArticlesPage           int      `json:"articlesPage"`
	ArticlesCount          int      `json:"articlesCount"`
	ArticleBodyLen         int      `json:"articleBodyLen"`
	ResultType             string   `json:"resultType,omitempty"`
	DataType               []string `json:"dataType,omitempty"`
	APIKey                 string   `json:"apiKey"`
	ForceMaxDataTimeWindow int      `json:"forceMaxDataTimeWindow,omitempty"`
	Lang                   string   `json:"lang,omitempty"`
	DateStart              string   `json:"dateStart,omitempty"`
	DateEnd                string   `json:"dateEnd,omitempty"`
}

// ArticlesResponse is the top-level envelope of a getArticles response.
type ArticlesResponse struct {
	Articles ResultPage `json:"articles"`
}

// ResultPage holds one page of search results and the total count the service
// reports across all pages.
type ResultPage struct {
	Results      []RawArticle `json:"results"`
	TotalResults int          `json:"totalResults"`
}

// RawArticle is a single article as the search service returns it. Any field
// may be empty; normalization into the internal shape happens downstream.
type RawArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	Source      Source `json:"source"`
	DateTime    string `json:"dateTime"`
	Date        string `json:"date"`
}

// Source identifies the publisher of an article.
type Source struct {
	Title string `json:"title"`
}
