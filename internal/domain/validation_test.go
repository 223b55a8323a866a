package domain

import (
	"errors"
	"testing"
)

func TestValidateEventStatus(t *testing.T) {
	for _, status := range []string{"draft", "confirmed", "in_progress", "completed", "cancelled"} {
		if err := ValidateEventStatus(status); err != nil {
			t.Errorf("ValidateEventStatus(%q): %v", status, err)
		}
	}
	for _, status := range []string{"", "archived", "Draft"} {
		if err := ValidateEventStatus(status); err == nil {
			t.Errorf("ValidateEventStatus(%q) accepted", status)
		}
	}
}

func TestValidateRFQStatus(t *testing.T) {
	for _, status := range []string{"open", "quoted", "accepted", "declined"} {
		if err := ValidateRFQStatus(status); err != nil {
			t.Errorf("ValidateRFQStatus(%q): %v", status, err)
		}
	}
	if err := ValidateRFQStatus("pending"); err == nil {
		t.Error("ValidateRFQStatus(pending) accepted")
	}
}

func TestValidateProcurementKind(t *testing.T) {
	for _, kind := range []string{"purchase_order", "invoice"} {
		if err := ValidateProcurementKind(kind); err != nil {
			t.Errorf("ValidateProcurementKind(%q): %v", kind, err)
		}
	}
	if err := ValidateProcurementKind("receipt"); err == nil {
		t.Error("ValidateProcurementKind(receipt) accepted")
	}
}

func TestValidateRoleName(t *testing.T) {
	roles := RoleTable{"Admin": Permissions{}, "Viewer": Permissions{}}
	if err := ValidateRoleName(roles, "Admin"); err != nil {
		t.Errorf("ValidateRoleName(Admin): %v", err)
	}
	if err := ValidateRoleName(roles, "Ghost"); err == nil {
		t.Error("ValidateRoleName(Ghost) accepted")
	}
}

func TestValidateRating(t *testing.T) {
	for _, rating := range []int{0, 3, 5} {
		if err := ValidateRating(rating); err != nil {
			t.Errorf("ValidateRating(%d): %v", rating, err)
		}
	}
	for _, rating := range []int{-1, 6} {
		if err := ValidateRating(rating); err == nil {
			t.Errorf("ValidateRating(%d) accepted", rating)
		}
	}
}

func TestErrorTypes(t *testing.T) {
	var err error = &NotFoundError{ResourceType: "event", ID: "EV-00001"}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Error("NotFoundError does not satisfy errors.As")
	}
	if err.Error() != "event not found: EV-00001" {
		t.Errorf("message = %q", err.Error())
	}

	err = &DuplicateIDError{ResourceType: "service", ID: "s-cat-001"}
	if err.Error() != "service already exists: s-cat-001" {
		t.Errorf("message = %q", err.Error())
	}
}
