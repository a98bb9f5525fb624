package models

// PageImage is one <img> found on the page, as reported by the crawler.
type PageImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// PageLink is one hyperlink found on the page.
type PageLink struct {
	Href       string `json:"href"`
	IsInternal bool   `json:"is_internal"`
}

// PageInput is an immutable snapshot of a single crawled page. It is produced
// entirely by the crawler/fetcher side; the scoring engine only reads it.
// Every field except URL is optional - absent data scores as worst case,
// it never causes an error.
type PageInput struct {
	URL             string      `json:"url"`
	Title           string      `json:"title,omitempty"`
	MetaDescription string      `json:"meta_description,omitempty"`
	H1s             []string    `json:"h1s,omitempty"`
	H2s             []string    `json:"h2s,omitempty"`
	H3s             []string    `json:"h3s,omitempty"`
	WordCount       int         `json:"word_count,omitempty"`
	Images          []PageImage `json:"images,omitempty"`
	Links           []PageLink  `json:"links,omitempty"`
	LoadTimeMs      int         `json:"load_time_ms,omitempty"`
	HTMLSize        int         `json:"html_size,omitempty"`
	StructuredData  []string    `json:"structured_data,omitempty"`
	RawHTML         string      `json:"raw_html,omitempty"`
	PlainText       string      `json:"plain_text,omitempty"`
}

// InternalLinkCount counts links the crawler marked as same-site.
func (p *PageInput) InternalLinkCount() int {
	n := 0
	for _, l := range p.Links {
		if l.IsInternal {
			n++
		}
	}
	return n
}

// ExternalLinkCount counts links pointing off-site.
func (p *PageInput) ExternalLinkCount() int {
	n := 0
	for _, l := range p.Links {
		if !l.IsInternal {
			n++
		}
	}
	return n
}
