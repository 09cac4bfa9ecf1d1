package article

// Collection accumulates articles from all sources and deduplicates them by
// URL. The first occurrence wins; later duplicates are dropped. Iteration
// order is first-seen order.
type Collection struct {
	seen     map[string]struct{}
	articles []Article
}

func NewCollection() *Collection {
	return &Collection{
		seen: make(map[string]struct{}),
	}
}

// Add inserts the article unless its URL has already been seen. It reports
// whether the article was added.
func (c *Collection) Add(a Article) bool {
	if _, ok := c.seen[a.URL]; ok {
		return false
	}
	c.seen[a.URL] = struct{}{}
	c.articles = append(c.articles, a)
	return true
}

// Articles returns the deduplicated articles in first-seen order.
func (c *Collection) Articles() []Article {
	return c.articles
}

func (c *Collection) Len() int {
	return len(c.articles)
}
