package id

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	userIDPattern        = regexp.MustCompile(`^US-\d{5}$`)
	eventIDPattern       = regexp.MustCompile(`^EV-\d{5}$`)
	clientIDPattern      = regexp.MustCompile(`^CL-\d{5}$`)
	rfqIDPattern         = regexp.MustCompile(`^RQ-\d{5}$`)
	supplierIDPattern    = regexp.MustCompile(`^SP-\d{5}$`)
	procurementIDPattern = regexp.MustCompile(`^PD-\d{5}$`)
	uuidPattern          = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// Type represents the type of resource
type Type string

const (
	TypeUser        Type = "user"
	TypeEvent       Type = "event"
	TypeClient      Type = "client"
	TypeRFQ         Type = "rfq"
	TypeSupplier    Type = "supplier"
	TypeProcurement Type = "procurement"
)

var prefixes = map[Type]string{
	TypeUser:        "US",
	TypeEvent:       "EV",
	TypeClient:      "CL",
	TypeRFQ:         "RQ",
	TypeSupplier:    "SP",
	TypeProcurement: "PD",
}

// Format formats a friendly ID for the given resource type
func Format(t Type, seq int) string {
	return fmt.Sprintf("%s-%05d", prefixes[t], seq)
}

// Parse parses a friendly ID string and returns the type and sequence number
func Parse(id string) (Type, int, error) {
	id = strings.TrimSpace(id)

	switch {
	case userIDPattern.MatchString(id):
		return TypeUser, seqOf(id), nil
	case eventIDPattern.MatchString(id):
		return TypeEvent, seqOf(id), nil
	case clientIDPattern.MatchString(id):
		return TypeClient, seqOf(id), nil
	case rfqIDPattern.MatchString(id):
		return TypeRFQ, seqOf(id), nil
	case supplierIDPattern.MatchString(id):
		return TypeSupplier, seqOf(id), nil
	case procurementIDPattern.MatchString(id):
		return TypeProcurement, seqOf(id), nil
	default:
		return "", 0, fmt.Errorf("invalid friendly ID format: %s", id)
	}
}

func seqOf(id string) int {
	seq, _ := strconv.Atoi(id[3:])
	return seq
}

// Next returns the next friendly ID of the given type after the highest
// sequence present in existing. IDs of other types or formats are ignored.
func Next(t Type, existing []string) string {
	max := 0
	for _, candidate := range existing {
		parsedType, seq, err := Parse(candidate)
		if err != nil || parsedType != t {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return Format(t, max+1)
}

// NewServiceID returns a slug ID for a user-created catalog service.
// Shipped catalog entries use curated slugs (e.g. "s-ven-001"); user entries
// get a random suffix so they can never collide with future catalog drops.
func NewServiceID() string {
	return "s-usr-" + uuid.NewString()[:8]
}

// NewUUID returns a random UUID string
func NewUUID() string {
	return uuid.NewString()
}

// IsUUID checks if a string is a valid UUID
func IsUUID(s string) bool {
	return uuidPattern.MatchString(strings.ToLower(s))
}

// IsFriendlyID checks if a string is a valid friendly ID
func IsFriendlyID(s string) bool {
	_, _, err := Parse(s)
	return err == nil
}
