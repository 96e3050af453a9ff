package service

import (
	"errors"
	"testing"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestSendAndMarkRead(t *testing.T) {
	s := NewNotificationService(repository.NewMemoryNotificationRepository(), nil)

	n, err := s.Send("user-1", "your agreement is active")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if n.ID == "" || n.Read {
		t.Fatalf("unexpected notification: %+v", n)
	}

	if err := s.MarkRead(n.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	list, err := s.GetForRecipient("user-1")
	if err != nil {
		t.Fatalf("get for recipient failed: %v", err)
	}
	if len(list) != 1 || !list[0].Read {
		t.Fatalf("unexpected notifications: %+v", list)
	}

	if err := s.MarkRead("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNotificationsFilteredByRecipient(t *testing.T) {
	s := NewNotificationService(repository.NewMemoryNotificationRepository(), nil)
	for _, recipient := range []string{"user-1", "user-2", "user-1"} {
		if _, err := s.Send(recipient, "hello"); err != nil {
			t.Fatalf("send failed: %v", err)
		}
	}

	list, err := s.GetForRecipient("user-1")
	if err != nil {
		t.Fatalf("get for recipient failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications for user-1, got %d", len(list))
	}
}
