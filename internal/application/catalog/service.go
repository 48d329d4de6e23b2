package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/notification-types-api/internal/domain"
)

// Service assembles the client-facing notification type catalog.
type Service interface {
	// List returns all available notification types sorted ascending by
	// key. The full descriptions map is returned for every type; picking
	// the display language is a client concern (lang is validated at the
	// HTTP surface and carried here for the contract only).
	List(ctx context.Context, lang string) ([]domain.NotificationType, error)
}

// typeStore is the minimal capability set the assembler needs from the
// record store.
type typeStore interface {
	Scan(ctx context.Context) ([]domain.NotificationType, error)
}

type service struct {
	repo typeStore
}

func NewService(repo typeStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, _ string) ([]domain.NotificationType, error) {
	records, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch notification types: %w: %v", domain.ErrStore, err)
	}

	types := make([]domain.NotificationType, 0, len(records))
	for _, nt := range records {
		// Unavailable types are invisible to API consumers. Deprecated
		// ones stay visible, flagged with their reason.
		if !nt.Available {
			continue
		}
		types = append(types, nt)
	}

	sort.Slice(types, func(i, j int) bool { return types[i].Key < types[j].Key })
	return types, nil
}
