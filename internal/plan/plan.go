package plan

import (
	"fmt"
	"html/template"
	"time"

	"blogforge/internal/config"
	"blogforge/internal/content"
	"blogforge/internal/paths"
	"blogforge/internal/taxonomy"
)

// Template names consumed by the renderer.
const (
	TemplateHome       = "index.html"
	TemplateListing    = "articles.html"
	TemplateCategories = "categories.html"
	TemplateTag        = "tag.html"
	TemplateArticle    = "article.html"
	TemplateAbout      = "about.html"
)

// aboutPath is the fixed output location of the informational page.
const aboutPath = "chi-siamo.html"

const (
	homeLatestCount   = 3
	homeTrendingCount = 5
)

// Page is one unit of output: a template bound to a typed context, plus the
// addressing data the sitemap needs. Pages are created by the Planner and
// consumed exactly once by the renderer.
type Page struct {
	Template   string
	OutputPath string // relative to the site root
	Canonical  string // canonical path, always starting with "/"
	Lastmod    string // YYYY-MM-DD for the sitemap entry
	Data       any
}

// Planner produces the complete page plan for one build. All inputs are
// finalized before planning starts; the plan itself is order-independent for
// rendering but emitted in a stable order so sitemap output is deterministic.
type Planner struct {
	site      *config.Site
	docs      []*content.Document
	tags      *taxonomy.Index
	buildDate string
}

// NewPlanner creates a Planner. buildTime stamps the lastmod of every
// non-article page.
func NewPlanner(site *config.Site, docs []*content.Document, tags *taxonomy.Index, buildTime time.Time) *Planner {
	return &Planner{
		site:      site,
		docs:      docs,
		tags:      tags,
		buildDate: buildTime.UTC().Format("2006-01-02"),
	}
}

// TotalListingPages returns ceil(len(docs)/pageSize), minimum 1.
func TotalListingPages(docCount, pageSize int) int {
	total := (docCount + pageSize - 1) / pageSize
	if total < 1 {
		return 1
	}
	return total
}

// Plan enumerates every page of the build: home, paginated listings, the
// taxonomy index, one page per tag, one detail page per document, and the
// informational page.
func (p *Planner) Plan() []Page {
	pages := []Page{p.homePage()}
	pages = append(pages, p.listingPages()...)
	pages = append(pages, p.categoriesPage(), p.aboutPage())
	pages = append(pages, p.tagPages()...)
	pages = append(pages, p.articlePages()...)
	return pages
}

func (p *Planner) base(outputPath, active string, meta Meta) Base {
	relRoot := paths.RelRoot(outputPath)
	return Base{
		Site:      p.site,
		AssetBase: paths.Resolve(relRoot, "assets"),
		Nav:       navFor(relRoot, active),
		Meta:      meta,
	}
}

// meta assembles the head block. canonicalPath is site-root-absolute ("/",
// "/articles/", ...); imagePath is site-root-relative and may be empty.
func (p *Planner) meta(title, description, canonicalPath, ogType, imagePath string) Meta {
	image := ""
	if imagePath != "" {
		image = p.site.BaseURL + "/" + imagePath
	}
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   p.site.BaseURL + canonicalPath,
		OGType:      ogType,
		Image:       image,
	}
}

func (p *Planner) homePage() Page {
	const outputPath = "index.html"
	relRoot := paths.RelRoot(outputPath)

	meta := p.meta(p.site.Name+" | Home", p.site.Description, "/", "website", p.site.DefaultImage)
	meta.JSONLD = websiteLD(p.site, p.site.BaseURL)

	latest := p.docs
	if len(latest) > homeLatestCount {
		latest = latest[:homeLatestCount]
	}
	trending := p.docs
	if len(trending) > homeTrendingCount {
		trending = trending[:homeTrendingCount]
	}

	return Page{
		Template:   TemplateHome,
		OutputPath: outputPath,
		Canonical:  "/",
		Lastmod:    p.buildDate,
		Data: HomeContext{
			Base:      p.base(outputPath, "home", meta),
			Latest:    postViews(latest, relRoot),
			Trending:  postViews(trending, relRoot),
			Tags:      tagBadges(p.tags.Ranked(), relRoot),
			HeroPanel: p.site.HeroPanel,
		},
	}
}

func (p *Planner) listingPages() []Page {
	total := TotalListingPages(len(p.docs), p.site.PageSize)
	pages := make([]Page, 0, total)

	for page := 1; page <= total; page++ {
		start := (page - 1) * p.site.PageSize
		end := min(start+p.site.PageSize, len(p.docs))

		outputPath := listingOutputPath(page)
		canonical := listingCanonical(page)
		relRoot := paths.RelRoot(outputPath)

		var pagination *Pagination
		if total > 1 {
			pagination = &Pagination{Current: page, Total: total}
			if page > 1 {
				pagination.PrevURL = paths.Resolve(relRoot, listingOutputPath(page-1))
			}
			if page < total {
				pagination.NextURL = paths.Resolve(relRoot, listingOutputPath(page+1))
			}
		}

		meta := p.meta(
			fmt.Sprintf("Articles | Page %d", page),
			"All published articles, newest first.",
			canonical, "website", p.site.DefaultImage,
		)
		meta.JSONLD = collectionLD("Articles", p.site.BaseURL+canonical)

		pages = append(pages, Page{
			Template:   TemplateListing,
			OutputPath: outputPath,
			Canonical:  canonical,
			Lastmod:    p.buildDate,
			Data: ListingContext{
				Base:         p.base(outputPath, "articles", meta),
				PageTitle:    "Articles",
				PageSubtitle: "All published articles, ordered by date.",
				Posts:        postViews(p.docs[start:end], relRoot),
				Pagination:   pagination,
			},
		})
	}
	return pages
}

func (p *Planner) categoriesPage() Page {
	const outputPath = "categories/index.html"
	relRoot := paths.RelRoot(outputPath)

	meta := p.meta("Categories", "Tags and categories, kept up to date automatically.",
		"/categories/", "website", p.site.DefaultImage)
	meta.JSONLD = collectionLD("Categories", p.site.BaseURL+"/categories/")

	return Page{
		Template:   TemplateCategories,
		OutputPath: outputPath,
		Canonical:  "/categories/",
		Lastmod:    p.buildDate,
		Data: CategoriesContext{
			Base: p.base(outputPath, "categories", meta),
			Tags: tagBadges(p.tags.Ranked(), relRoot),
		},
	}
}

func (p *Planner) aboutPage() Page {
	relRoot := paths.RelRoot(aboutPath)

	meta := p.meta("About | "+p.site.Name, "Who writes this site and how.",
		"/"+aboutPath, "website", p.site.DefaultImage)
	meta.JSONLD = aboutLD(p.site.BaseURL + "/" + aboutPath)

	about := p.site.About
	return Page{
		Template:   TemplateAbout,
		OutputPath: aboutPath,
		Canonical:  "/" + aboutPath,
		Lastmod:    p.buildDate,
		Data: AboutContext{
			Base:       p.base(aboutPath, "about", meta),
			Title:      about.Title,
			Subtitle:   about.Subtitle,
			Image:      paths.Resolve(relRoot, about.Image),
			Paragraphs: about.Paragraphs,
		},
	}
}

func (p *Planner) tagPages() []Page {
	ranked := p.tags.Ranked()
	pages := make([]Page, 0, len(ranked))

	for _, tag := range ranked {
		outputPath := tag.PagePath()
		canonical := "/tag/" + tag.Slug + "/"
		relRoot := paths.RelRoot(outputPath)

		meta := p.meta("Tag: "+tag.Label, "Articles tagged "+tag.Label+".",
			canonical, "website", p.site.DefaultImage)
		meta.JSONLD = collectionLD("Tag: "+tag.Label, p.site.BaseURL+canonical)

		pages = append(pages, Page{
			Template:   TemplateTag,
			OutputPath: outputPath,
			Canonical:  canonical,
			Lastmod:    p.buildDate,
			Data: TagContext{
				Base:  p.base(outputPath, "categories", meta),
				Tag:   TagInfo{Label: tag.Label, Count: tag.Count},
				Posts: postViews(tag.Documents, relRoot),
			},
		})
	}
	return pages
}

func (p *Planner) articlePages() []Page {
	pages := make([]Page, 0, len(p.docs))

	for _, doc := range p.docs {
		outputPath := doc.DetailPath()
		canonical := "/article/" + doc.Slug + "/"
		relRoot := paths.RelRoot(outputPath)

		meta := p.meta(doc.Title, doc.Excerpt, canonical, "article", doc.CoverImage)
		meta.JSONLD = articleLD(p.site, p.site.BaseURL, doc)

		view := ArticleView{
			PostView:    postView(doc, relRoot),
			ContentHTML: template.HTML(doc.BodyHTML),
		}

		pages = append(pages, Page{
			Template:   TemplateArticle,
			OutputPath: outputPath,
			Canonical:  canonical,
			Lastmod:    doc.DateString(),
			Data: ArticleContext{
				Base: p.base(outputPath, "articles", meta),
				Post: view,
			},
		})
	}
	return pages
}

func listingOutputPath(page int) string {
	if page == 1 {
		return "articles/index.html"
	}
	return fmt.Sprintf("articles/page/%d/index.html", page)
}

func listingCanonical(page int) string {
	if page == 1 {
		return "/articles/"
	}
	return fmt.Sprintf("/articles/page/%d/", page)
}

func postViews(docs []*content.Document, relRoot string) []PostView {
	views := make([]PostView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, postView(doc, relRoot))
	}
	return views
}
