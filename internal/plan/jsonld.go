package plan

import (
	"encoding/json"
	"html/template"

	"blogforge/internal/config"
	"blogforge/internal/content"
)

const schemaContext = "https://schema.org"

// jsonLD serializes a structured-data payload for embedding in a page head.
// Marshal cannot fail on these map shapes, so failures reduce to an empty
// payload rather than aborting context assembly.
func jsonLD(payload any) template.JS {
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return template.JS(data)
}

func websiteLD(site *config.Site, baseURL string) template.JS {
	return jsonLD(map[string]any{
		"@context":    schemaContext,
		"@type":       "WebSite",
		"name":        site.Name,
		"url":         baseURL + "/",
		"description": site.Description,
	})
}

func collectionLD(name, url string) template.JS {
	return jsonLD(map[string]any{
		"@context": schemaContext,
		"@type":    "CollectionPage",
		"name":     name,
		"url":      url,
	})
}

func aboutLD(url string) template.JS {
	return jsonLD(map[string]any{
		"@context": schemaContext,
		"@type":    "AboutPage",
		"name":     "About",
		"url":      url,
	})
}

// articleLD emits the BlogPosting payload plus breadcrumbs for a detail page.
func articleLD(site *config.Site, baseURL string, doc *content.Document) template.JS {
	canonical := baseURL + "/article/" + doc.Slug + "/"
	posting := map[string]any{
		"@context":         schemaContext,
		"@type":            "BlogPosting",
		"headline":         doc.Title,
		"datePublished":    doc.DateString(),
		"dateModified":     doc.DateString(),
		"author":           map[string]any{"@type": "Person", "name": site.Author},
		"image":            baseURL + "/" + doc.CoverImage,
		"keywords":         doc.Tags,
		"mainEntityOfPage": canonical,
	}
	breadcrumbs := map[string]any{
		"@context": schemaContext,
		"@type":    "BreadcrumbList",
		"itemListElement": []map[string]any{
			{"@type": "ListItem", "position": 1, "name": "Home", "item": baseURL + "/"},
			{"@type": "ListItem", "position": 2, "name": "Articles", "item": baseURL + "/articles/"},
			{"@type": "ListItem", "position": 3, "name": doc.Title, "item": canonical},
		},
	}
	return jsonLD([]map[string]any{posting, breadcrumbs})
}
