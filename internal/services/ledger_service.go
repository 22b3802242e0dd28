package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"globehopper/internal/models/db_models"
	"globehopper/internal/models/response_models"
	"globehopper/pkg/utils"
)

type LedgerServiceInterface interface {
	Ledger() response_models.LedgerResponse
	AddEntry(ctx context.Context, note string, amount float64, category string) (db_models.LedgerEntry, error)
	RemoveEntry(ctx context.Context, id string) error

	ShoppingList() []db_models.ShoppingItem
	AddShoppingItem(ctx context.Context, name string) (db_models.ShoppingItem, error)
	ToggleShoppingItem(ctx context.Context, id string) error
	RemoveShoppingItem(ctx context.Context, id string) error
}

type LedgerService struct {
	state StateServiceInterface
}

func NewLedgerService(state StateServiceInterface) LedgerServiceInterface {
	return &LedgerService{state: state}
}

func (l *LedgerService) Ledger() response_models.LedgerResponse {
	out := response_models.LedgerResponse{Entries: []db_models.LedgerEntry{}}
	l.state.View(func(s *db_models.AppState) {
		out.Entries = append(out.Entries, s.Ledger...)
		for _, e := range s.Ledger {
			out.Total += e.Amount
		}
		out.Currency = s.TripDetails.DestCurrency
	})
	return out
}

// AddEntry prepends so the newest expense shows first.
func (l *LedgerService) AddEntry(ctx context.Context, note string, amount float64, category string) (db_models.LedgerEntry, error) {
	note = strings.TrimSpace(note)
	if note == "" || amount <= 0 {
		return db_models.LedgerEntry{}, utils.ErrInvalidInput
	}
	if !validLedgerCategory(category) {
		category = "Misc"
	}

	entry := db_models.LedgerEntry{
		ID:       uuid.New().String(),
		Note:     note,
		Amount:   amount,
		Category: category,
	}
	err := l.state.Update(ctx, func(s *db_models.AppState) {
		s.Ledger = append([]db_models.LedgerEntry{entry}, s.Ledger...)
	})
	return entry, err
}

func (l *LedgerService) RemoveEntry(ctx context.Context, id string) error {
	found := false
	err := l.state.Update(ctx, func(s *db_models.AppState) {
		for idx, e := range s.Ledger {
			if e.ID == id {
				s.Ledger = append(s.Ledger[:idx], s.Ledger[idx+1:]...)
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return utils.ErrNotFound
	}
	return nil
}

func (l *LedgerService) ShoppingList() []db_models.ShoppingItem {
	items := []db_models.ShoppingItem{}
	l.state.View(func(s *db_models.AppState) {
		items = append(items, s.ShoppingList...)
	})
	return items
}

func (l *LedgerService) AddShoppingItem(ctx context.Context, name string) (db_models.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return db_models.ShoppingItem{}, utils.ErrInvalidInput
	}

	item := db_models.ShoppingItem{ID: uuid.New().String(), Name: name}
	err := l.state.Update(ctx, func(s *db_models.AppState) {
		s.ShoppingList = append(s.ShoppingList, item)
	})
	return item, err
}

func (l *LedgerService) ToggleShoppingItem(ctx context.Context, id string) error {
	found := false
	err := l.state.Update(ctx, func(s *db_models.AppState) {
		for idx := range s.ShoppingList {
			if s.ShoppingList[idx].ID == id {
				s.ShoppingList[idx].Done = !s.ShoppingList[idx].Done
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return utils.ErrNotFound
	}
	return nil
}

func (l *LedgerService) RemoveShoppingItem(ctx context.Context, id string) error {
	found := false
	err := l.state.Update(ctx, func(s *db_models.AppState) {
		for idx, item := range s.ShoppingList {
			if item.ID == id {
				s.ShoppingList = append(s.ShoppingList[:idx], s.ShoppingList[idx+1:]...)
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return utils.ErrNotFound
	}
	return nil
}

func validLedgerCategory(category string) bool {
	for _, c := range db_models.LedgerCategories {
		if c == category {
			return true
		}
	}
	return false
}
