package state

import (
	"fmt"
	"time"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/kmorrow/evq/internal/id"
)

// Typed per-collection actions. Every mutation goes through Update so it is
// validated, persisted, and broadcast in one place, and every mutating
// action records an entry in the notification feed.

// Login sets the current user and marks the session as logged in.
func (s *Store) Login(userID string) error {
	return s.Update(func(state *domain.AppState) error {
		for _, user := range state.Users {
			if user.ID == userID {
				if !user.Active {
					return fmt.Errorf("user %s is deactivated", userID)
				}
				state.CurrentUserID = userID
				state.IsLoggedIn = true
				return nil
			}
		}
		return &domain.NotFoundError{ResourceType: "user", ID: userID}
	})
}

// Logout clears the session.
func (s *Store) Logout() error {
	return s.Update(func(state *domain.AppState) error {
		state.CurrentUserID = ""
		state.IsLoggedIn = false
		return nil
	})
}

// AddEvent inserts a new event, assigning its ID and timestamps.
func (s *Store) AddEvent(event domain.Event) (domain.Event, error) {
	if event.Status == "" {
		event.Status = domain.EventStatusDraft
	}
	if err := domain.ValidateEventStatus(string(event.Status)); err != nil {
		return domain.Event{}, err
	}

	err := s.Update(func(state *domain.AppState) error {
		event.ID = id.Next(id.TypeEvent, eventIDs(state.Events))
		now := time.Now().UTC()
		event.CreatedAt = now
		event.UpdatedAt = now
		state.Events = append(state.Events, event)
		recordActivity(state, domain.NotificationKindCreated, "event", event.ID, fmt.Sprintf("Event %q created", event.Name))
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// UpdateEvent applies fn to the event with the given ID.
func (s *Store) UpdateEvent(eventID string, fn func(*domain.Event) error) (domain.Event, error) {
	var updated domain.Event
	err := s.Update(func(state *domain.AppState) error {
		for i := range state.Events {
			if state.Events[i].ID != eventID {
				continue
			}
			if err := fn(&state.Events[i]); err != nil {
				return err
			}
			if err := domain.ValidateEventStatus(string(state.Events[i].Status)); err != nil {
				return err
			}
			state.Events[i].UpdatedAt = time.Now().UTC()
			updated = state.Events[i]
			recordActivity(state, domain.NotificationKindUpdated, "event", eventID, fmt.Sprintf("Event %q updated", updated.Name))
			return nil
		}
		return &domain.NotFoundError{ResourceType: "event", ID: eventID}
	})
	return updated, err
}

// RemoveEvent deletes the event with the given ID.
func (s *Store) RemoveEvent(eventID string) error {
	return s.Update(func(state *domain.AppState) error {
		for i := range state.Events {
			if state.Events[i].ID == eventID {
				state.Events = append(state.Events[:i], state.Events[i+1:]...)
				recordActivity(state, domain.NotificationKindDeleted, "event", eventID, fmt.Sprintf("Event %s removed", eventID))
				return nil
			}
		}
		return &domain.NotFoundError{ResourceType: "event", ID: eventID}
	})
}

// AddClient inserts a new client record.
func (s *Store) AddClient(client domain.Client) (domain.Client, error) {
	err := s.Update(func(state *domain.AppState) error {
		client.ID = id.Next(id.TypeClient, clientIDs(state.Clients))
		now := time.Now().UTC()
		client.CreatedAt = now
		client.UpdatedAt = now
		state.Clients = append(state.Clients, client)
		recordActivity(state, domain.NotificationKindCreated, "client", client.ID, fmt.Sprintf("Client %q added", client.Name))
		return nil
	})
	if err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

// UpdateClient applies fn to the client with the given ID.
func (s *Store) UpdateClient(clientID string, fn func(*domain.Client) error) (domain.Client, error) {
	var updated domain.Client
	err := s.Update(func(state *domain.AppState) error {
		for i := range state.Clients {
			if state.Clients[i].ID != clientID {
				continue
			}
			if err := fn(&state.Clients[i]); err != nil {
				return err
			}
			state.Clients[i].UpdatedAt = time.Now().UTC()
			updated = state.Clients[i]
			recordActivity(state, domain.NotificationKindUpdated, "client", clientID, fmt.Sprintf("Client %q updated", updated.Name))
			return nil
		}
		return &domain.NotFoundError{ResourceType: "client", ID: clientID}
	})
	return updated, err
}

// RemoveClient deletes the client with the given ID.
func (s *Store) RemoveClient(clientID string) error {
	return s.Update(func(state *domain.AppState) error {
		for i := range state.Clients {
			if state.Clients[i].ID == clientID {
				state.Clients = append(state.Clients[:i], state.Clients[i+1:]...)
				recordActivity(state, domain.NotificationKindDeleted, "client", clientID, fmt.Sprintf("Client %s removed", clientID))
				return nil
			}
		}
		return &domain.NotFoundError{ResourceType: "client", ID: clientID}
	})
}

// AddService inserts a user-created catalog service. The ID is generated
// unless the caller supplies one that does not collide.
func (s *Store) AddService(service domain.Service) (domain.Service, error) {
	err := s.Update(func(state *domain.AppState) error {
		if service.ID == "" {
			service.ID = id.NewServiceID()
		}
		for _, existing := range state.Services {
			if existing.ID == service.ID {
				return &domain.DuplicateIDError{ResourceType: "service", ID: service.ID}
			}
		}
		if service.Unit == "" {
			service.Unit = "unit"
		}
		state.Services = append(state.Services, service)
		recordActivity(state, domain.NotificationKindCreated, "service", service.ID, fmt.Sprintf("Service %q added", service.Name))
		return nil
	})
	if err != nil {
		return domain.Service{}, err
	}
	return service, nil
}

// RemoveService deletes the service with the given ID.
func (s *Store) RemoveService(serviceID string) error {
	return s.Update(func(state *domain.AppState) error {
		for i := range state.Services {
			if state.Services[i].ID == serviceID {
				state.Services = append(state.Services[:i], state.Services[i+1:]...)
				recordActivity(state, domain.NotificationKindDeleted, "service", serviceID, fmt.Sprintf("Service %s removed", serviceID))
				return nil
			}
		}
		return &domain.NotFoundError{ResourceType: "service", ID: serviceID}
	})
}

// AddRFQ inserts a new request for quotation.
func (s *Store) AddRFQ(rfq domain.RFQ) (domain.RFQ, error) {
	if rfq.Status == "" {
		rfq.Status = domain.RFQStatusOpen
	}
	if err := domain.ValidateRFQStatus(string(rfq.Status)); err != nil {
		return domain.RFQ{}, err
	}

	err := s.Update(func(state *domain.AppState) error {
		rfq.ID = id.Next(id.TypeRFQ, rfqIDs(state.RFQs))
		now := time.Now().UTC()
		rfq.CreatedAt = now
		rfq.UpdatedAt = now
		state.RFQs = append(state.RFQs, rfq)
		recordActivity(state, domain.NotificationKindCreated, "rfq", rfq.ID, fmt.Sprintf("RFQ %s opened", rfq.ID))
		return nil
	})
	if err != nil {
		return domain.RFQ{}, err
	}
	return rfq, nil
}

// SetRFQStatus transitions an RFQ to a new status.
func (s *Store) SetRFQStatus(rfqID string, status domain.RFQStatus) (domain.RFQ, error) {
	if err := domain.ValidateRFQStatus(string(status)); err != nil {
		return domain.RFQ{}, err
	}

	var updated domain.RFQ
	err := s.Update(func(state *domain.AppState) error {
		for i := range state.RFQs {
			if state.RFQs[i].ID != rfqID {
				continue
			}
			state.RFQs[i].Status = status
			state.RFQs[i].UpdatedAt = time.Now().UTC()
			updated = state.RFQs[i]
			recordActivity(state, domain.NotificationKindUpdated, "rfq", rfqID, fmt.Sprintf("RFQ %s is now %s", rfqID, status))
			return nil
		}
		return &domain.NotFoundError{ResourceType: "rfq", ID: rfqID}
	})
	return updated, err
}

// AddSupplier inserts a new supplier.
func (s *Store) AddSupplier(supplier domain.Supplier) (domain.Supplier, error) {
	if err := domain.ValidateRating(supplier.Rating); err != nil {
		return domain.Supplier{}, err
	}

	err := s.Update(func(state *domain.AppState) error {
		supplier.ID = id.Next(id.TypeSupplier, supplierIDs(state.Suppliers))
		state.Suppliers = append(state.Suppliers, supplier)
		recordActivity(state, domain.NotificationKindCreated, "supplier", supplier.ID, fmt.Sprintf("Supplier %q added", supplier.Name))
		return nil
	})
	if err != nil {
		return domain.Supplier{}, err
	}
	return supplier, nil
}

// RemoveSupplier deletes the supplier with the given ID.
func (s *Store) RemoveSupplier(supplierID string) error {
	return s.Update(func(state *domain.AppState) error {
		for i := range state.Suppliers {
			if state.Suppliers[i].ID == supplierID {
				state.Suppliers = append(state.Suppliers[:i], state.Suppliers[i+1:]...)
				recordActivity(state, domain.NotificationKindDeleted, "supplier", supplierID, fmt.Sprintf("Supplier %s removed", supplierID))
				return nil
			}
		}
		return &domain.NotFoundError{ResourceType: "supplier", ID: supplierID}
	})
}

// AddProcurementDocument inserts a purchase order or supplier invoice.
func (s *Store) AddProcurementDocument(doc domain.ProcurementDocument) (domain.ProcurementDocument, error) {
	if err := domain.ValidateProcurementKind(string(doc.Kind)); err != nil {
		return domain.ProcurementDocument{}, err
	}

	err := s.Update(func(state *domain.AppState) error {
		doc.ID = id.Next(id.TypeProcurement, procurementIDs(state.ProcurementDocuments))
		state.ProcurementDocuments = append(state.ProcurementDocuments, doc)
		recordActivity(state, domain.NotificationKindCreated, "procurement", doc.ID, fmt.Sprintf("%s %s recorded", doc.Kind, doc.ID))
		return nil
	})
	if err != nil {
		return domain.ProcurementDocument{}, err
	}
	return doc, nil
}

// SetPermission grants or revokes a permission on an existing role.
func (s *Store) SetPermission(role, permission string, granted bool) error {
	return s.Update(func(state *domain.AppState) error {
		if err := domain.ValidateRoleName(state.Roles, role); err != nil {
			return err
		}
		if state.Roles[role] == nil {
			state.Roles[role] = domain.Permissions{}
		}
		state.Roles[role][permission] = granted
		verb := "granted to"
		if !granted {
			verb = "revoked from"
		}
		recordActivity(state, domain.NotificationKindSystem, "role", role, fmt.Sprintf("Permission %s %s %s", permission, verb, role))
		return nil
	})
}

// MarkNotificationsRead marks every notification as read.
func (s *Store) MarkNotificationsRead() error {
	return s.Update(func(state *domain.AppState) error {
		for i := range state.Notifications {
			state.Notifications[i].Read = true
		}
		return nil
	})
}

// ClearNotifications removes all notifications.
func (s *Store) ClearNotifications() error {
	return s.Update(func(state *domain.AppState) error {
		state.Notifications = []domain.Notification{}
		return nil
	})
}

// maxNotifications caps the feed so continuous snapshotting stays cheap.
const maxNotifications = 200

func recordActivity(state *domain.AppState, kind domain.NotificationKind, resourceType, resourceID, message string) {
	state.Notifications = append(state.Notifications, domain.Notification{
		ID:           id.NewUUID(),
		Kind:         kind,
		Message:      message,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	})
	if overflow := len(state.Notifications) - maxNotifications; overflow > 0 {
		state.Notifications = state.Notifications[overflow:]
	}
}

func eventIDs(events []domain.Event) []string {
	ids := make([]string, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}
	return ids
}

func clientIDs(clients []domain.Client) []string {
	ids := make([]string, len(clients))
	for i, client := range clients {
		ids[i] = client.ID
	}
	return ids
}

func rfqIDs(rfqs []domain.RFQ) []string {
	ids := make([]string, len(rfqs))
	for i, rfq := range rfqs {
		ids[i] = rfq.ID
	}
	return ids
}

func supplierIDs(suppliers []domain.Supplier) []string {
	ids := make([]string, len(suppliers))
	for i, supplier := range suppliers {
		ids[i] = supplier.ID
	}
	return ids
}

func procurementIDs(docs []domain.ProcurementDocument) []string {
	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids
}
