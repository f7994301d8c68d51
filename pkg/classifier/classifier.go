// Package classifier maps a URL and domain onto one of the fixed website
// categories using ordered keyword tables.
package classifier

import (
	"strings"

	"github.com/Evronai/website-analyzer/models"
)

// Categories holds the static metadata bundle for each category type.
// Exported so the DeepSeek override path can select metadata directly.
var Categories = map[models.CategoryType]models.WebsiteCategory{
	models.CategoryEcommerce: {
		Type:           models.CategoryEcommerce,
		Industry:       "Retail",
		Description:    "online retail store selling products",
		EntityFocus:    []string{"Products", "Brands", "Categories", "Reviews", "Prices", "Inventory", "Shipping"},
		SchemaPriority: []string{"Product", "Offer", "Review", "AggregateRating", "Breadcrumb", "Shipping"},
	},
	models.CategoryService: {
		Type:           models.CategoryService,
		Industry:       "Professional Services",
		Description:    "service-based business",
		EntityFocus:    []string{"Services", "Team", "Expertise", "Process", "Testimonials", "Case Studies"},
		SchemaPriority: []string{"Service", "Organization", "Person", "FAQ", "LocalBusiness", "Review"},
	},
	models.CategoryMedia: {
		Type:           models.CategoryMedia,
		Industry:       "Digital Media",
		Description:    "content publishing platform",
		EntityFocus:    []string{"Articles", "Authors", "Topics", "Categories", "Publications", "Media"},
		SchemaPriority: []string{"Article", "Person", "Organization", "Breadcrumb", "HowTo", "VideoObject"},
	},
	models.CategoryBusiness: {
		Type:           models.CategoryBusiness,
		Industry:       "General Business",
		Description:    "corporate website",
		EntityFocus:    []string{"Company", "Services", "Contact", "About", "Team", "Careers"},
		SchemaPriority: []string{"Organization", "LocalBusiness", "ContactPoint", "AboutPage", "FAQ", "Event"},
	},
}

// rule pairs a category with its trigger keywords. Rule order is the
// tie-break policy: commerce beats services beats media.
type rule struct {
	category models.CategoryType
	keywords []string
}

var rules = []rule{
	{
		category: models.CategoryEcommerce,
		keywords: []string{
			"shoe", "footwear", "store", "shop", "product", "buy", "cart",
			"checkout", "retail", "merch", "merchandise", "clothing",
			"apparel", "fashion", "bag", "accessory", "electronics",
			"furniture", "home", "decor", "beauty", "cosmetic", "toy",
			"book", "amazon", "etsy", "ebay", "walmart", "target",
			"payless", "zappos", "nike", "adidas", "reebok", "puma",
		},
	},
	{
		category: models.CategoryService,
		keywords: []string{
			"service", "consulting", "agency", "solutions", "professional",
			"marketing", "design", "development", "legal", "law", "medical",
			"health", "hr", "recruiting", "financial", "insurance",
		},
	},
	{
		category: models.CategoryMedia,
		keywords: []string{
			"blog", "news", "magazine", "media", "publishing", "journal",
			"review", "tech", "science", "education", "learn", "tutorial",
		},
	},
}

// Classify returns the first category whose keyword list matches a substring
// of the lower-cased url or domain. It is total: unmatched input falls back
// to the Business Website category, and no input can make it fail.
func Classify(rawURL, domain string) models.WebsiteCategory {
	urlLower := strings.ToLower(rawURL)
	domainLower := strings.ToLower(domain)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(urlLower, kw) || strings.Contains(domainLower, kw) {
				return Categories[r.category]
			}
		}
	}

	return Categories[models.CategoryBusiness]
}
