package service

import (
	"errors"
	"testing"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func newChatFixture(t *testing.T) *ChatService {
	t.Helper()
	return NewChatService(repository.NewMemoryConversationRepository(), nil)
}

func TestSendAndListMessages(t *testing.T) {
	s := newChatFixture(t)
	if _, err := s.Start("conv-1", []string{"u1", "u2"}); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if _, err := s.SendMessage("conv-1", "u1", "u2", "hi"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := s.SendMessage("conv-1", "u2", "u1", "hello"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	msgs, err := s.Messages("conv-1")
	if err != nil {
		t.Fatalf("messages failed: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "hi" || msgs[1].Content != "hello" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestSendToUnknownConversation(t *testing.T) {
	s := newChatFixture(t)
	if _, err := s.SendMessage("missing", "u1", "u2", "hi"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubscribeReceivesNewMessages(t *testing.T) {
	s := newChatFixture(t)
	if _, err := s.Start("conv-1", []string{"u1", "u2"}); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	ch, cancel, err := s.Subscribe("conv-1")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	sent, err := s.SendMessage("conv-1", "u1", "u2", "ping")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	select {
	case got := <-ch:
		if got.ID != sent.ID || got.Content != "ping" {
			t.Fatalf("unexpected message: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestCloseDisconnectsSubscribers(t *testing.T) {
	s := newChatFixture(t)
	if _, err := s.Start("conv-1", []string{"u1", "u2"}); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	ch, cancel, err := s.Subscribe("conv-1")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	if err := s.Close("conv-1"); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, open := <-ch; open {
		t.Fatal("expected subscriber channel to be closed")
	}
	if _, err := s.Messages("conv-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after close, got %v", err)
	}
}
