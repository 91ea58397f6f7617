// Package preview fetches best-effort page metadata for bookmarks.
// It never fails: any network or parse problem degrades to empty fields.
package preview

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/xync/xync/internal/metrics"
)

// Preview holds scraped page metadata. All fields are best-effort.
type Preview struct {
	Title       string
	Description string
	Image       string
	Favicon     string
}

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 10 * time.Second}}
}

// Fetch retrieves pageURL and extracts title, description, image, and
// favicon. OpenGraph tags win over plain <title>/<meta name="description">.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) *Preview {
	p := &Preview{Favicon: faviconURL(pageURL)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		metrics.PreviewFetchesTotal.WithLabelValues("error").Inc()
		return p
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; XyncBot/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		metrics.PreviewFetchesTotal.WithLabelValues("error").Inc()
		return p
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		metrics.PreviewFetchesTotal.WithLabelValues("error").Inc()
		return p
	}

	meta := collectMeta(doc)
	p.Title = firstOf(meta.ogTitle, meta.title)
	p.Description = firstOf(meta.ogDescription, meta.metaDescription)
	if meta.ogImage != "" {
		p.Image = resolveURL(pageURL, meta.ogImage)
	}

	metrics.PreviewFetchesTotal.WithLabelValues("ok").Inc()
	return p
}

type pageMeta struct {
	title           string
	ogTitle         string
	ogDescription   string
	ogImage         string
	metaDescription string
}

// collectMeta walks the parsed document once, picking up the title element
// and the meta tags of interest.
func collectMeta(doc *html.Node) pageMeta {
	var m pageMeta
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if m.title == "" && n.FirstChild != nil {
					m.title = strings.TrimSpace(textContent(n))
				}
			case "meta":
				var name, property, content string
				for _, a := range n.Attr {
					switch a.Key {
					case "name":
						name = a.Val
					case "property":
						property = a.Val
					case "content":
						content = a.Val
					}
				}
				switch {
				case property == "og:title" && m.ogTitle == "":
					m.ogTitle = content
				case property == "og:description" && m.ogDescription == "":
					m.ogDescription = content
				case property == "og:image" && m.ogImage == "":
					m.ogImage = content
				case name == "description" && m.metaDescription == "":
					m.metaDescription = content
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return m
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func faviconURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/favicon.ico"
}

// resolveURL resolves ref against base, returning ref unchanged when it is
// already absolute.
func resolveURL(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return b.ResolveReference(r).String()
}
