package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sahaayak/internal/model"
)

const HelplineTapAction = "helpline_tap"

func (s *Service) SaveEmergencyContact(userID string, contact model.EmergencyContact) (model.EmergencyContact, error) {
	if strings.TrimSpace(userID) == "" {
		return model.EmergencyContact{}, nil
	}
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Phone = strings.TrimSpace(contact.Phone)
	if contact.Name == "" || contact.Phone == "" {
		return model.EmergencyContact{}, ErrContentRequired
	}
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	if err := s.store.SaveEmergencyContact(userID, contact); err != nil {
		return model.EmergencyContact{}, err
	}
	return contact, nil
}

func (s *Service) DeleteEmergencyContact(userID string, id string) error {
	if strings.TrimSpace(userID) == "" {
		return nil
	}
	contacts, err := s.store.ListEmergencyContacts(userID)
	if err != nil {
		return err
	}
	for _, contact := range contacts {
		if contact.ID == id {
			return s.store.DeleteEmergencyContact(userID, id)
		}
	}
	return ErrContactNotFound
}

func (s *Service) ListEmergencyContacts(userID string) ([]model.EmergencyContact, error) {
	if strings.TrimSpace(userID) == "" {
		return []model.EmergencyContact{}, nil
	}
	return s.store.ListEmergencyContacts(userID)
}

// RecordHelplineTap logs that the user reached for the helpline, so the
// client's crisis flow has an audit trail.
func (s *Service) RecordHelplineTap(userID string) (model.EmergencyEvent, error) {
	if strings.TrimSpace(userID) == "" {
		return model.EmergencyEvent{}, nil
	}
	event := model.EmergencyEvent{
		ID:        uuid.NewString(),
		Action:    HelplineTapAction,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.SaveEmergencyEvent(userID, event); err != nil {
		return model.EmergencyEvent{}, err
	}
	return event, nil
}
