// Package defaults supplies the canonical initial application state and the
// current data version. The persistent store reconciles stored payloads
// against this state on every load, so catalog entries, roles, and settings
// added here reach existing installations through the merge layer.
package defaults

import (
	"time"

	"github.com/kmorrow/evq/internal/domain"
)

// DataVersion is the schema version stamped onto every persisted payload.
// Bumping it without registering a migration step is legal and acts as a
// no-op upgrade.
const DataVersion = 12

// StorageKey is the fixed key under which the serialized state is stored.
const StorageKey = "evq-state"

// DefaultState returns the canonical initial AppState for a fresh install.
// Callers own the returned value; it shares no memory across calls.
func DefaultState() domain.AppState {
	return domain.AppState{
		Users: []domain.User{
			{ID: "US-00001", Name: "Administrator", Role: "Admin", Active: true},
		},
		Events:               []domain.Event{},
		Services:             DefaultServices(),
		Clients:              []domain.Client{},
		RFQs:                 []domain.RFQ{},
		QuotationTemplates:   DefaultQuotationTemplates(),
		ProposalTemplates:    DefaultProposalTemplates(),
		Roles:                DefaultRoles(),
		CurrentUserID:        "",
		Settings:             DefaultSettings(),
		IsLoggedIn:           false,
		CustomThemes:         []domain.CustomTheme{},
		Notifications:        []domain.Notification{},
		Suppliers:            []domain.Supplier{},
		ProcurementDocuments: []domain.ProcurementDocument{},
	}
}

// DefaultServices returns the shipped service catalog
func DefaultServices() []domain.Service {
	return []domain.Service{
		{ID: "s-cat-001", Name: "Full Catering", Category: "catering", Unit: "guest", UnitPrice: 85, Description: "Plated dinner service including staff"},
		{ID: "s-cat-002", Name: "Canapes & Drinks", Category: "catering", Unit: "guest", UnitPrice: 40},
		{ID: "s-av-001", Name: "Sound System", Category: "av", Unit: "day", UnitPrice: 450},
		{ID: "s-av-004", Name: "Stage Lighting Rig", Category: "av", Unit: "day", UnitPrice: 900},
		{ID: "s-dec-001", Name: "Floral Arrangements", Category: "decor", Unit: "table", UnitPrice: 65},
		{ID: "s-dec-005", Name: "Thematic Backdrops", Category: "decor", Unit: "piece", UnitPrice: 320},
		{ID: "s-pho-001", Name: "Event Photography", Category: "media", Unit: "hour", UnitPrice: 150},
		{ID: "s-sec-001", Name: "Security Detail", Category: "operations", Unit: "guard/day", UnitPrice: 280},
		{ID: "s-ven-001", Name: "Venue Sourcing", Category: "venue", Unit: "engagement", UnitPrice: 1200, Description: "Shortlisting, site visits, and contract negotiation"},
		{ID: "s-ven-002", Name: "Venue Styling", Category: "venue", Unit: "engagement", UnitPrice: 750},
	}
}

// DefaultRoles returns the shipped role/permission table
func DefaultRoles() domain.RoleTable {
	return domain.RoleTable{
		"Admin": {
			"canManageEvents":      true,
			"canManageClients":     true,
			"canManageServices":    true,
			"canManageRFQs":        true,
			"canManageUsers":       true,
			"canManageSuppliers":   true,
			"canManageProcurement": true,
			"canManageTemplates":   true,
			"canEditSettings":      true,
			"canViewFinancials":    true,
		},
		"Manager": {
			"canManageEvents":      true,
			"canManageClients":     true,
			"canManageServices":    true,
			"canManageRFQs":        true,
			"canManageUsers":       false,
			"canManageSuppliers":   true,
			"canManageProcurement": true,
			"canManageTemplates":   true,
			"canEditSettings":      false,
			"canViewFinancials":    true,
		},
		"Sales": {
			"canManageEvents":      true,
			"canManageClients":     true,
			"canManageServices":    false,
			"canManageRFQs":        true,
			"canManageUsers":       false,
			"canManageSuppliers":   false,
			"canManageProcurement": false,
			"canManageTemplates":   false,
			"canEditSettings":      false,
			"canViewFinancials":    false,
		},
		"Viewer": {
			"canManageEvents":      false,
			"canManageClients":     false,
			"canManageServices":    false,
			"canManageRFQs":        false,
			"canManageUsers":       false,
			"canManageSuppliers":   false,
			"canManageProcurement": false,
			"canManageTemplates":   false,
			"canEditSettings":      false,
			"canViewFinancials":    false,
		},
	}
}

// DefaultSettings returns the shipped settings tree
func DefaultSettings() domain.Settings {
	return domain.Settings{
		Appearance: domain.AppearanceSettings{
			Theme:       "light",
			AccentColor: "#4f46e5",
			Background:  "#f8fafc",
			Surface:     "#ffffff",
		},
		Typography: domain.TypographySettings{
			FontFamily:    "Inter",
			HeadingFamily: "Inter",
			BaseSize:      14,
			Scale:         1.25,
		},
		Layout: domain.LayoutSettings{
			PageSize:    "A4",
			Margin:      "normal",
			ShowFooter:  true,
			CompactMode: false,
		},
		Motion: domain.MotionSettings{
			Enabled:    true,
			DurationMS: 200,
			Easing:     "ease-out",
		},
		Branding: domain.BrandingSettings{
			CompanyName: "Your Events Co.",
		},
		Finance: domain.FinanceSettings{
			Currency:       "USD",
			TaxRatePercent: 0,
			PaymentTerms:   "Net 30",
		},
	}
}

// DefaultProposalTemplates returns the shipped proposal templates. Only
// entries flagged as system defaults are injected into existing user data by
// the merge layer; the draft template stays install-only.
func DefaultProposalTemplates() []domain.Template {
	stamp := templateStamp()
	return []domain.Template{
		{TemplateID: "tpl-prop-standard", Name: "Standard Proposal", IsSystemDefault: true, UpdatedAt: stamp,
			Body: "## Proposal\n\n{{eventName}} for {{clientName}}\n\n### Scope\n{{services}}\n\n### Investment\n{{total}}"},
		{TemplateID: "tpl-prop-premium", Name: "Premium Proposal", IsSystemDefault: true, UpdatedAt: stamp,
			Body: "## {{companyName}} — {{eventName}}\n\n{{coverLetter}}\n\n### Detailed Scope\n{{serviceTable}}\n\n### Terms\n{{paymentTerms}}"},
		{TemplateID: "tpl-prop-draft", Name: "Working Draft", IsSystemDefault: false, UpdatedAt: stamp,
			Body: "{{notes}}"},
	}
}

// DefaultQuotationTemplates returns the shipped quotation templates
func DefaultQuotationTemplates() []domain.Template {
	return []domain.Template{
		{TemplateID: "tpl-quot-standard", Name: "Standard Quotation", IsSystemDefault: true, UpdatedAt: templateStamp(),
			Body: "# Quotation {{number}}\n\n{{lineItems}}\n\nSubtotal: {{subtotal}}\nTax: {{tax}}\nTotal: {{total}}"},
	}
}

func templateStamp() time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}
