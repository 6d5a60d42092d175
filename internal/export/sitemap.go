package export

import (
	"encoding/xml"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	Lastmod string   `xml:"lastmod"`
}

type sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func newSitemap() *sitemap {
	return &sitemap{Xmlns: sitemapNamespace}
}

func (s *sitemap) add(loc, lastmod string) {
	s.URLs = append(s.URLs, sitemapURL{Loc: loc, Lastmod: lastmod})
}

func (s *sitemap) encode() ([]byte, error) {
	body, err := xml.Marshal(s)
	if err != nil {
		return nil, err
	}
	out := append([]byte(xml.Header), body...)
	return append(out, '\n'), nil
}
