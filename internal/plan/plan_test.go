package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"blogforge/internal/config"
	"blogforge/internal/content"
	"blogforge/internal/taxonomy"
)

var buildTime = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func planSite(pageSize int) *config.Site {
	site := config.Default()
	site.PageSize = pageSize
	site.BaseURL = "https://blog.example.org"
	return site
}

func sampleDoc(title, date string, tags ...string) *content.Document {
	d, _ := time.Parse("2006-01-02", date)
	return &content.Document{
		Title:       title,
		Slug:        content.Slugify(title),
		Date:        d,
		Excerpt:     "excerpt for " + title,
		CoverImage:  "assets/images/chip.svg",
		Author:      "Diego",
		Tags:        tags,
		BodyHTML:    "<p>body</p>",
		ReadMinutes: 3,
	}
}

func planFor(t *testing.T, site *config.Site, docs []*content.Document) []Page {
	t.Helper()
	return NewPlanner(site, docs, taxonomy.Aggregate(docs), buildTime).Plan()
}

func pagesByTemplate(pages []Page, tmpl string) []Page {
	var out []Page
	for _, p := range pages {
		if p.Template == tmpl {
			out = append(out, p)
		}
	}
	return out
}

func TestTotalListingPages_CeilDivision_MinimumOne(t *testing.T) {
	require.Equal(t, 1, TotalListingPages(0, 8))
	require.Equal(t, 1, TotalListingPages(8, 8))
	require.Equal(t, 2, TotalListingPages(9, 8))
	require.Equal(t, 2, TotalListingPages(16, 8))
	require.Equal(t, 3, TotalListingPages(17, 8))
}

func TestPlan_ThreeDocsPageSizeTwo_SplitsChronologically(t *testing.T) {
	docs := []*content.Document{
		sampleDoc("Newest", "2024-01-03"),
		sampleDoc("Middle", "2024-01-02"),
		sampleDoc("Oldest", "2024-01-01"),
	}
	pages := planFor(t, planSite(2), docs)

	listings := pagesByTemplate(pages, TemplateListing)
	require.Len(t, listings, 2)

	first := listings[0].Data.(ListingContext)
	require.Equal(t, "articles/index.html", listings[0].OutputPath)
	require.Len(t, first.Posts, 2)
	require.Equal(t, "Newest", first.Posts[0].Title)
	require.Equal(t, "Middle", first.Posts[1].Title)
	require.NotNil(t, first.Pagination)
	require.Equal(t, 2, first.Pagination.Total)
	require.Equal(t, 1, first.Pagination.Current)
	require.Empty(t, first.Pagination.PrevURL)
	require.NotEmpty(t, first.Pagination.NextURL)

	second := listings[1].Data.(ListingContext)
	require.Equal(t, "articles/page/2/index.html", listings[1].OutputPath)
	require.Len(t, second.Posts, 1)
	require.Equal(t, "Oldest", second.Posts[0].Title)
	require.NotEmpty(t, second.Pagination.PrevURL)
	require.Empty(t, second.Pagination.NextURL)
}

func TestPlan_PaginationLinks_ResolvedForPageDepth(t *testing.T) {
	docs := []*content.Document{
		sampleDoc("A", "2024-01-05"),
		sampleDoc("B", "2024-01-04"),
		sampleDoc("C", "2024-01-03"),
		sampleDoc("D", "2024-01-02"),
		sampleDoc("E", "2024-01-01"),
	}
	pages := pagesByTemplate(planFor(t, planSite(2), docs), TemplateListing)
	require.Len(t, pages, 3)

	// Page 1 sits at depth 1; its next link points under articles/page/.
	first := pages[0].Data.(ListingContext)
	require.Equal(t, "../articles/page/2/index.html", first.Pagination.NextURL)

	// Page 2 sits at depth 3.
	second := pages[1].Data.(ListingContext)
	require.Equal(t, "../../../articles/index.html", second.Pagination.PrevURL)
	require.Equal(t, "../../../articles/page/3/index.html", second.Pagination.NextURL)
}

func TestPlan_SinglePageListing_NoPaginationBlock(t *testing.T) {
	pages := pagesByTemplate(planFor(t, planSite(8), []*content.Document{sampleDoc("Only", "2024-01-01")}), TemplateListing)
	require.Len(t, pages, 1)
	require.Nil(t, pages[0].Data.(ListingContext).Pagination)
}

func TestPlan_ZeroDocuments_StillProducesFixedPages(t *testing.T) {
	pages := planFor(t, planSite(8), nil)

	require.Len(t, pagesByTemplate(pages, TemplateHome), 1)
	require.Len(t, pagesByTemplate(pages, TemplateListing), 1)
	require.Len(t, pagesByTemplate(pages, TemplateCategories), 1)
	require.Len(t, pagesByTemplate(pages, TemplateAbout), 1)
	require.Empty(t, pagesByTemplate(pages, TemplateTag))
	require.Empty(t, pagesByTemplate(pages, TemplateArticle))
}

func TestPlan_OneDetailPagePerDocument(t *testing.T) {
	docs := []*content.Document{
		sampleDoc("First Post", "2024-01-02"),
		sampleDoc("Second Post", "2024-01-01"),
	}
	articles := pagesByTemplate(planFor(t, planSite(8), docs), TemplateArticle)
	require.Len(t, articles, 2)
	require.Equal(t, "article/first-post/index.html", articles[0].OutputPath)
	require.Equal(t, "/article/first-post/", articles[0].Canonical)
	require.Equal(t, "article/second-post/index.html", articles[1].OutputPath)
}

func TestPlan_ArticleLastmod_IsPublishDate_OthersBuildDate(t *testing.T) {
	docs := []*content.Document{sampleDoc("Dated", "2024-01-02")}
	pages := planFor(t, planSite(8), docs)

	require.Equal(t, "2024-05-20", pagesByTemplate(pages, TemplateHome)[0].Lastmod)
	require.Equal(t, "2024-01-02", pagesByTemplate(pages, TemplateArticle)[0].Lastmod)
}

func TestPlan_HomeSlices_BoundedLatestAndTrending(t *testing.T) {
	docs := make([]*content.Document, 0, 6)
	dates := []string{"2024-01-06", "2024-01-05", "2024-01-04", "2024-01-03", "2024-01-02", "2024-01-01"}
	names := []string{"P1", "P2", "P3", "P4", "P5", "P6"}
	for i := range dates {
		docs = append(docs, sampleDoc(names[i], dates[i]))
	}

	home := pagesByTemplate(planFor(t, planSite(8), docs), TemplateHome)[0].Data.(HomeContext)
	require.Len(t, home.Latest, 3)
	require.Len(t, home.Trending, 5)
	require.Equal(t, "P1", home.Latest[0].Title)
}

func TestPlan_TagPages_OnePerTagInRankedOrder(t *testing.T) {
	docs := []*content.Document{
		sampleDoc("A", "2024-01-03", "linux"),
		sampleDoc("B", "2024-01-02", "linux", "security"),
		sampleDoc("C", "2024-01-01", "security", "linux"),
	}
	tagPages := pagesByTemplate(planFor(t, planSite(8), docs), TemplateTag)
	require.Len(t, tagPages, 2)
	require.Equal(t, "tag/linux/index.html", tagPages[0].OutputPath)

	linux := tagPages[0].Data.(TagContext)
	require.Equal(t, 3, linux.Tag.Count)
	require.Equal(t, []string{"A", "B", "C"}, []string{linux.Posts[0].Title, linux.Posts[1].Title, linux.Posts[2].Title})
}

func TestPlan_NavAndAssets_ResolvedPerDepth(t *testing.T) {
	docs := []*content.Document{sampleDoc("Deep", "2024-01-01", "linux")}
	pages := planFor(t, planSite(8), docs)

	home := pagesByTemplate(pages, TemplateHome)[0].Data.(HomeContext)
	require.Equal(t, "assets", home.AssetBase)
	require.Equal(t, "index.html", home.Nav.Home)

	tag := pagesByTemplate(pages, TemplateTag)[0].Data.(TagContext)
	require.Equal(t, "../../assets", tag.AssetBase)
	require.Equal(t, "../../index.html", tag.Nav.Home)
	require.Equal(t, "categories", tag.Nav.Active)
}

func TestPlan_Meta_CanonicalAbsoluteAndTyped(t *testing.T) {
	docs := []*content.Document{sampleDoc("Canonical Check", "2024-01-01")}
	pages := planFor(t, planSite(8), docs)

	home := pagesByTemplate(pages, TemplateHome)[0].Data.(HomeContext)
	require.Equal(t, "https://blog.example.org/", home.Meta.Canonical)
	require.Contains(t, string(home.Meta.JSONLD), `"@type":"WebSite"`)

	article := pagesByTemplate(pages, TemplateArticle)[0].Data.(ArticleContext)
	require.Equal(t, "https://blog.example.org/article/canonical-check/", article.Meta.Canonical)
	require.Equal(t, "article", article.Meta.OGType)
	require.Contains(t, string(article.Meta.JSONLD), `"@type":"BlogPosting"`)
	require.Contains(t, string(article.Meta.JSONLD), `"@type":"BreadcrumbList"`)
}

func TestPlan_EveryPageHasExactlyOneSitemapIdentity(t *testing.T) {
	docs := []*content.Document{
		sampleDoc("A", "2024-01-02", "linux"),
		sampleDoc("B", "2024-01-01"),
	}
	pages := planFor(t, planSite(8), docs)

	seen := map[string]bool{}
	for _, page := range pages {
		require.NotEmpty(t, page.Canonical)
		require.NotEmpty(t, page.Lastmod)
		require.False(t, seen[page.Canonical], "duplicate canonical %s", page.Canonical)
		seen[page.Canonical] = true
	}
}
