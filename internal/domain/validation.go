package domain

import (
	"fmt"
	"strings"
)

// ValidateEventStatus validates an event status
func ValidateEventStatus(status string) error {
	switch EventStatus(status) {
	case EventStatusDraft, EventStatusConfirmed, EventStatusInProgress, EventStatusCompleted, EventStatusCancelled:
		return nil
	default:
		return fmt.Errorf("invalid event status: must be one of: draft, confirmed, in_progress, completed, cancelled")
	}
}

// ValidateRFQStatus validates an RFQ status
func ValidateRFQStatus(status string) error {
	switch RFQStatus(status) {
	case RFQStatusOpen, RFQStatusQuoted, RFQStatusAccepted, RFQStatusDeclined:
		return nil
	default:
		return fmt.Errorf("invalid rfq status: must be one of: open, quoted, accepted, declined")
	}
}

// ValidateProcurementKind validates a procurement document kind
func ValidateProcurementKind(kind string) error {
	switch ProcurementKind(kind) {
	case ProcurementKindPurchaseOrder, ProcurementKindInvoice:
		return nil
	default:
		return fmt.Errorf("invalid procurement kind: must be one of: purchase_order, invoice")
	}
}

// ValidateRoleName validates a role name against a role table
func ValidateRoleName(roles RoleTable, name string) error {
	if _, ok := roles[name]; ok {
		return nil
	}
	known := make([]string, 0, len(roles))
	for role := range roles {
		known = append(known, role)
	}
	return fmt.Errorf("unknown role %q (known roles: %s)", name, strings.Join(known, ", "))
}

// ValidateRating validates a supplier rating
func ValidateRating(rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("invalid rating: must be between 0 and 5")
	}
	return nil
}

// NotFoundError indicates a lookup by ID found no entity
type NotFoundError struct {
	ResourceType string
	ID           string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.ResourceType, e.ID)
}

// DuplicateIDError indicates an insert would collide with an existing ID
type DuplicateIDError struct {
	ResourceType string
	ID           string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.ResourceType, e.ID)
}
