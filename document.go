package llmsdocs

// Document is one section of segmented llms.txt content. Documents are
// value objects owned by a single extraction call.
type Document struct {
	Filename      string `json:"filename"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	TokenEstimate int    `json:"tokenEstimate"`
	ContentHash   string `json:"contentHash"`
	SourceURL     string `json:"sourceUrl,omitempty"`
}

// Extraction is the full structured output of fetching and segmenting
// a confirmed llms.txt location, including any sibling files referenced
// from the primary content.
type Extraction struct {
	SourceURL   string       `json:"sourceUrl"`
	ContentType ContentType  `json:"contentType"`
	Documents   []*Document  `json:"documents"`
	Combined    string       `json:"combined"` // primary + siblings under per-source headers
	SiblingURLs []string     `json:"siblingUrls,omitempty"`
	TotalTokens int          `json:"totalTokens"`
}
