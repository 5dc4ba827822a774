// Package content holds the marketing copy served to the site's static
// pages. It is the single source of truth for services, process and project
// copy so page revisions cannot drift from each other.
package content

// ServiceItem describes one entry on the services page.
type ServiceItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// ProcessStep describes one stage of the delivery process.
type ProcessStep struct {
	Step    int      `json:"step"`
	Title   string   `json:"title"`
	Tagline string   `json:"tagline"`
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
}

// ProjectHighlight describes a featured project on the projects page.
type ProjectHighlight struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// Services is the services page content.
var Services = []ServiceItem{
	{
		ID:       "landscape-design",
		Title:    "Landscape Design",
		Subtitle: "Consultation • Options • Budget-led planning",
		Description: "We begin by listening. We take time to understand what you want, how you use the space, " +
			"and what level of maintenance fits your lifestyle. If you already have a clear vision, we refine it " +
			"and prepare it for smooth execution. If you're open to ideas, we propose practical options and " +
			"layouts that match your priorities and budget, from cost-effective slab-and-gravel solutions to " +
			"premium finishes like Indian stone or porcelain.",
		Highlights: []string{
			"Client-first consultation (we listen before we propose)",
			"Material options aligned to budget and goals",
			"Clear recommendations for layout, levels, drainage, and planting",
		},
	},
	{
		ID:       "design-build",
		Title:    "Design & Build",
		Subtitle: "Measured quoting • Planned delivery • Quality guaranteed",
		Description: "Once the direction is agreed, we manage the entire build professionally. We take site " +
			"measurements, explain what the project includes, and walk you through the materials and process, " +
			"so there are no surprises. After you approve the quote, we set a defined start date and a realistic " +
			"completion schedule. We deliver every project based on a plan, following professional standards and " +
			"legal requirements, and we install the exact quality level you have paid for.",
		Highlights: []string{
			"Accurate measurements and a clearly scoped quote",
			"Planned start date and completion target",
			"Professional delivery with standards and legal compliance",
			"Materials and finishes match the approved specification",
		},
	},
	{
		ID:       "garden-maintenance",
		Title:    "Garden Maintenance",
		Subtitle: "Ongoing care • Small upgrades • Low-maintenance improvements",
		Description: "We provide reliable maintenance to keep your garden healthy, tidy, and consistent through " +
			"the seasons. We also help clients upgrade existing spaces without a large budget: replacing fences, " +
			"building timber or brick borders, refreshing planting, and introducing low-maintenance " +
			"gravel-and-border solutions that make a meaningful visual difference.",
		Highlights: []string{
			"Routine maintenance programs for year-round consistency",
			"Fence upgrades, borders (brick or timber), and planting refreshes",
			"Budget-friendly improvements with high visual impact",
		},
	},
}

// Process is the process page content.
var Process = []ProcessStep{
	{
		Step:    1,
		Title:   "Intake",
		Tagline: "We learn what you want and why it matters.",
		Summary: "We start with a quick conversation to understand your goals, the look you're going for, " +
			"any constraints, and what success looks like for you.",
		Points: []string{
			"Short call or message-based intake",
			"Define priorities, style, and must-haves",
			"Confirm service area and timeline expectations",
		},
	},
	{
		Step:    2,
		Title:   "Site visit & assessment",
		Tagline: "We evaluate the space like builders.",
		Summary: "We review the property in real conditions: grading, drainage, access, sunlight, existing " +
			"features, and anything that could affect the build.",
		Points: []string{
			"Measurements and on-site notes",
			"Identify risks and opportunities early",
			"Confirm logistics (access, staging, utilities)",
		},
	},
	{
		Step:    3,
		Title:   "Proposal",
		Tagline: "A clear direction before any work begins.",
		Summary: "We plan around materials, weather, site access, and scheduling, so expectations stay " +
			"accurate and your project stays on track.",
		Points: []string{
			"Scoped quote with defined inclusions",
			"Planned start date and completion target",
			"Single point of contact throughout",
		},
	},
	{
		Step:    4,
		Title:   "Build & handover",
		Tagline: "Quality-first execution.",
		Summary: "From prep to finishing touches, we focus on workmanship, cleanliness, and long-term " +
			"performance, not quick fixes.",
		Points: []string{
			"Professional communication during the build",
			"Clean, organized site management",
			"Final walkthrough and care guidance",
		},
	},
}

// Projects is the featured projects content.
var Projects = []ProjectHighlight{
	{
		ID:       "didsbury-patio",
		Title:    "Porcelain patio and planting refresh",
		Location: "Didsbury, Manchester",
		Summary:  "Full rear-garden rebuild with a porcelain patio, raised brick borders, and low-maintenance planting.",
	},
	{
		ID:       "sale-family-garden",
		Title:    "Family garden with new lawn and fencing",
		Location: "Sale",
		Summary:  "Levelled and returfed lawn, replacement fencing, and a gravel seating area designed around the family's use of the space.",
	},
	{
		ID:       "chorlton-front-garden",
		Title:    "Low-maintenance front garden",
		Location: "Chorlton",
		Summary:  "Indian stone path, slate borders, and structured evergreen planting for year-round kerb appeal.",
	},
}
