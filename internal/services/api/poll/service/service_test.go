package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/services/api/poll/domain"
)

func TestCreate(t *testing.T) {
	id := uuid.MustParse("4f3c2a9e-8d1b-4b1e-9c55-0a7e2f6d9b10")
	s := &Svc{newID: func() uuid.UUID { return id }}

	got, err := s.Create(context.Background(), domain.CreateInput{Title: "Lunch?", Options: []string{"pizza", "tacos", "soup"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != id.String() || got.Description != "🇦 - pizza\n🇧 - tacos\n🇨 - soup" {
		t.Fatalf("unexpected poll %+v", got)
	}
}

func TestCreate_ValidationMessages(t *testing.T) {
	_, err := New().Create(context.Background(), domain.CreateInput{Title: "t", Options: []string{"only"}})
	if w := perr.WireFrom(err); w.Code != perr.ErrorCodeValidation || w.Message != "Please provide at least 2 options." {
		t.Fatalf("got %+v", w)
	}
}
