package mockgen

import "github.com/Evronai/website-analyzer/models"

// tableEntry names one mock entity and its type tag.
type tableEntry struct {
	text       string
	entityType string
}

var entityTables = map[models.CategoryType][]tableEntry{
	models.CategoryEcommerce: {
		{"Product Catalog", "Product"},
		{"Brand Identity", "Organization"},
		{"Customer Reviews", "Review"},
		{"Pricing & Offers", "Offer"},
		{"Shipping Policy", "Service"},
		{"Return Policy", "Service"},
		{"Category Pages", "CollectionPage"},
		{"Inventory Status", "Product"},
	},
	models.CategoryService: {
		{"Service Offerings", "Service"},
		{"Team Members", "Person"},
		{"Client Testimonials", "Review"},
		{"Case Studies", "Article"},
		{"Consultation Process", "HowTo"},
		{"Office Locations", "LocalBusiness"},
		{"Certifications", "Credential"},
	},
	models.CategoryMedia: {
		{"Published Articles", "Article"},
		{"Author Profiles", "Person"},
		{"Topic Clusters", "Thing"},
		{"Editorial Categories", "CollectionPage"},
		{"Video Content", "VideoObject"},
		{"Newsletter", "Publication"},
		{"Archives", "CollectionPage"},
	},
	models.CategoryBusiness: {
		{"Company Overview", "Organization"},
		{"Contact Details", "ContactPoint"},
		{"Leadership Team", "Person"},
		{"About Page", "AboutPage"},
		{"Career Openings", "JobPosting"},
		{"Press Mentions", "Article"},
	},
}

var entityRecommendations = map[models.CategoryType][]string{
	models.CategoryEcommerce: {
		"Add Product schema with price, availability and SKU to every product page",
		"Mark up customer reviews with AggregateRating so AI answers can cite ratings",
		"Publish a structured shipping and returns policy page",
		"Strengthen brand entity signals with a complete Organization profile",
	},
	models.CategoryService: {
		"Describe each service with dedicated Service schema and clear pricing signals",
		"Add Person markup for key team members to build expertise signals",
		"Publish FAQ pages answering the questions prospects ask AI assistants",
		"Collect and mark up client reviews to reinforce trust entities",
	},
	models.CategoryMedia: {
		"Use Article schema with author, datePublished and headline on every story",
		"Create author profile pages with Person markup and external references",
		"Group related coverage into topic hubs so AI platforms see topical depth",
		"Add VideoObject markup to embedded video content",
	},
	models.CategoryBusiness: {
		"Complete the Organization schema with logo, sameAs and contact points",
		"Add LocalBusiness markup if the company serves a physical area",
		"Publish an FAQ covering the company basics AI assistants get asked",
		"Keep the About page factual and entity-rich for knowledge graph pickup",
	},
}

var featuredSnippets = map[models.CategoryType][]string{
	models.CategoryEcommerce: {
		"What is the return window for orders?",
		"How long does standard shipping take?",
		"Which payment methods are accepted?",
	},
	models.CategoryService: {
		"How much does an initial consultation cost?",
		"What industries does the team specialize in?",
		"How long does a typical engagement run?",
	},
	models.CategoryMedia: {
		"Who writes the coverage on this topic?",
		"How often is new content published?",
		"What are the top stories this week?",
	},
	models.CategoryBusiness: {
		"What does the company do?",
		"Where is the company located?",
		"How can I contact support?",
	},
}

var generativeRecommendations = map[models.CategoryType][]string{
	models.CategoryEcommerce: {
		"Write comparison-friendly product descriptions that answer buyer questions directly",
		"Expose stock and pricing data in structured form so generative results stay accurate",
		"Maintain consistent product naming across feeds, pages and markup",
	},
	models.CategoryService: {
		"Publish process explainers that generative engines can quote step by step",
		"Answer cost and timeline questions explicitly instead of behind contact forms",
		"Use consistent service names across the site and third-party profiles",
	},
	models.CategoryMedia: {
		"Lead articles with a one-paragraph factual summary generative engines can lift",
		"Keep bylines and publication dates machine-readable",
		"Cross-link related coverage to signal topical authority",
	},
	models.CategoryBusiness: {
		"State what the company does in plain language on the homepage",
		"Keep name, address and phone data identical everywhere it appears",
		"Add succinct answers for the questions assistants are most likely to relay",
	},
}
