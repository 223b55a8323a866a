package domain

import (
	"time"
)

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	EventStatusDraft      EventStatus = "draft"
	EventStatusConfirmed  EventStatus = "confirmed"
	EventStatusInProgress EventStatus = "in_progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// RFQStatus represents the state of a request for quotation
type RFQStatus string

const (
	RFQStatusOpen     RFQStatus = "open"
	RFQStatusQuoted   RFQStatus = "quoted"
	RFQStatusAccepted RFQStatus = "accepted"
	RFQStatusDeclined RFQStatus = "declined"
)

// ProcurementKind represents the type of a procurement document
type ProcurementKind string

const (
	ProcurementKindPurchaseOrder ProcurementKind = "purchase_order"
	ProcurementKindInvoice       ProcurementKind = "invoice"
)

// NotificationKind classifies an entry in the notification feed
type NotificationKind string

const (
	NotificationKindCreated NotificationKind = "created"
	NotificationKindUpdated NotificationKind = "updated"
	NotificationKindDeleted NotificationKind = "deleted"
	NotificationKindSystem  NotificationKind = "system"
)

// User represents an operator account
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Event represents a managed event engagement
type Event struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	ClientID   string      `json:"clientId,omitempty"`
	Status     EventStatus `json:"status"`
	Venue      string      `json:"venue,omitempty"`
	StartAt    *time.Time  `json:"startAt,omitempty"`
	EndAt      *time.Time  `json:"endAt,omitempty"`
	Budget     float64     `json:"budget,omitempty"`
	ServiceIDs []string    `json:"serviceIds,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// Client represents a customer record
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Service represents a catalog entry that can be attached to events and RFQs.
// Catalog entries shipped with the application use stable slug IDs
// (e.g. "s-ven-001"); user-created services get generated slugs.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	UnitPrice   float64 `json:"unitPrice,omitempty"`
}

// RFQItem is a single line item on a request for quotation
type RFQItem struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// RFQ represents a request for quotation
type RFQ struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"clientId,omitempty"`
	EventID   string     `json:"eventId,omitempty"`
	Status    RFQStatus  `json:"status"`
	Items     []RFQItem  `json:"items,omitempty"`
	DueAt     *time.Time `json:"dueAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Template represents a document template for quotations or proposals.
// System-default templates ship with the application and are flagged so the
// merge layer can tell them apart from user-authored ones.
type Template struct {
	TemplateID      string    `json:"templateId"`
	Name            string    `json:"name"`
	Body            string    `json:"body,omitempty"`
	IsSystemDefault bool      `json:"isSystemDefault,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Permissions maps permission keys to grants for one role
type Permissions map[string]bool

// RoleTable maps role names to their permission sets
type RoleTable map[string]Permissions

// CustomTheme represents a user-defined color theme
type CustomTheme struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors,omitempty"`
}

// Notification represents an entry in the in-app activity feed
type Notification struct {
	ID           string           `json:"id"`
	Kind         NotificationKind `json:"kind"`
	Message      string           `json:"message"`
	ResourceType string           `json:"resourceType,omitempty"`
	ResourceID   string           `json:"resourceId,omitempty"`
	Read         bool             `json:"read,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Supplier represents an external vendor
type Supplier struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Contact    string   `json:"contact,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
	Rating     int      `json:"rating,omitempty"`
}

// ProcurementDocument represents a purchase order or supplier invoice
type ProcurementDocument struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplierId,omitempty"`
	EventID    string          `json:"eventId,omitempty"`
	Kind       ProcurementKind `json:"kind"`
	Status     string          `json:"status,omitempty"`
	Amount     float64         `json:"amount,omitempty"`
	IssuedAt   *time.Time      `json:"issuedAt,omitempty"`
}

// AppearanceSettings controls application colors
type AppearanceSettings struct {
	Theme       string `json:"theme"`
	AccentColor string `json:"accentColor"`
	Background  string `json:"background"`
	Surface     string `json:"surface"`
}

// TypographySettings controls fonts
type TypographySettings struct {
	FontFamily    string  `json:"fontFamily"`
	HeadingFamily string  `json:"headingFamily"`
	BaseSize      int     `json:"baseSize"`
	Scale         float64 `json:"scale"`
}

// LayoutSettings controls document layout defaults
type LayoutSettings struct {
	PageSize    string `json:"pageSize"`
	Margin      string `json:"margin"`
	ShowFooter  bool   `json:"showFooter"`
	CompactMode bool   `json:"compactMode"`
}

// MotionSettings controls transition behavior
type MotionSettings struct {
	Enabled    bool   `json:"enabled"`
	DurationMS int    `json:"durationMs"`
	Easing     string `json:"easing"`
}

// BrandingSettings holds company identity used on generated documents
type BrandingSettings struct {
	CompanyName string `json:"companyName"`
	Tagline     string `json:"tagline,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Website     string `json:"website,omitempty"`
}

// FinanceSettings holds financial defaults for quotations and invoices
type FinanceSettings struct {
	Currency       string  `json:"currency"`
	TaxRatePercent float64 `json:"taxRatePercent"`
	PaymentTerms   string  `json:"paymentTerms"`
}

// Settings is the nested configuration tree. Every leaf shipped in the
// defaults must survive a merge even when absent from an older user payload.
type Settings struct {
	Appearance AppearanceSettings `json:"appearance"`
	Typography TypographySettings `json:"typography"`
	Layout     LayoutSettings     `json:"layout"`
	Motion     MotionSettings     `json:"motion"`
	Branding   BrandingSettings   `json:"branding"`
	Finance    FinanceSettings    `json:"finance"`
}

// AppState is the root aggregate owned by the persistent store. All other
// packages receive copies and request mutations through store actions.
type AppState struct {
	Users                []User                `json:"users"`
	Events               []Event               `json:"events"`
	Services             []Service             `json:"services"`
	Clients              []Client              `json:"clients"`
	RFQs                 []RFQ                 `json:"rfqs"`
	QuotationTemplates   []Template            `json:"quotationTemplates"`
	ProposalTemplates    []Template            `json:"proposalTemplates"`
	Roles                RoleTable             `json:"roles"`
	CurrentUserID        string                `json:"currentUserId"`
	Settings             Settings              `json:"settings"`
	IsLoggedIn           bool                  `json:"isLoggedIn"`
	CustomThemes         []CustomTheme         `json:"customThemes"`
	Notifications        []Notification        `json:"notifications"`
	Suppliers            []Supplier            `json:"suppliers"`
	ProcurementDocuments []ProcurementDocument `json:"procurementDocuments"`
}
