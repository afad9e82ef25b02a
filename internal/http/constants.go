package httpx

// Page identifiers shared by handlers, navigation and the template map.
const (
	PageLogin      = "login"
	PageDashboard  = "dashboard"
	PageContainers = "containers"
	PageLockers    = "lockers"
	PageOrders     = "orders"
	PageBanners    = "banner"
)

// Template paths used for loading templates in tests and in dev mode.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

// Flash kinds understood by the flash partial and the toast script.
const (
	flashSuccess = "success"
	flashError   = "error"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageDashboard:  "dashboard-content",
	PageContainers: "containers-content",
	PageLockers:    "lockers-content",
	PageOrders:     "orders-content",
	PageBanners:    "banner-content",
}

// ContentTemplateFor returns the content template for page.
// Unknown pages fall back to the dashboard.
func ContentTemplateFor(page string) string {
	if name, ok := contentTemplates[page]; ok {
		return name
	}
	return "dashboard-content"
}
