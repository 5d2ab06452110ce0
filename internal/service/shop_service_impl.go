package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/repository"
)

// Listing is a catalogue item as seen by one profile.
type Listing struct {
	Item     domain.ShopItem
	Owned    bool
	Equipped bool
}

type shopService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewShopService(profiles repository.ProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ShopService {
	return &shopService{profiles: profiles, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *shopService) Listings(ctx context.Context, userID string) ([]Listing, error) {
	p, err := s.profile(ctx, s.profiles, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Listing, 0, len(domain.Catalogue))
	for _, it := range domain.Catalogue {
		out = append(out, Listing{
			Item:     it,
			Owned:    p.Owns(it),
			Equipped: equipped(p, it),
		})
	}
	return out, nil
}

// Buy spends the item's price and unlocks it in one transaction.
func (s *shopService) Buy(ctx context.Context, userID, itemID string) (p *domain.Profile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "item": itemID}
	defer func() { observe(ctx, s.observer, "shop-buy", startedAt, fields, err) }()

	item, err := lookup(itemID)
	if err != nil {
		return nil, err
	}
	fields["price"] = item.Price

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		current, err := s.profile(ctx, txProfiles, userID)
		if err != nil {
			return err
		}
		if current.Owns(item) {
			return fmt.Errorf("%w: %s", ErrAlreadyOwned, item.Name)
		}
		if err := txProfiles.SpendCoins(ctx, userID, item.Price); err != nil {
			return err
		}
		return txProfiles.Unlock(ctx, userID, item.Kind, item.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, s.profiles, userID)
}

func (s *shopService) Equip(ctx context.Context, userID, itemID string) (*domain.Profile, error) {
	item, err := lookup(itemID)
	if err != nil {
		return nil, err
	}
	p, err := s.profile(ctx, s.profiles, userID)
	if err != nil {
		return nil, err
	}
	if !p.Owns(item) {
		return nil, fmt.Errorf("%w: %s", ErrNotOwned, item.Name)
	}
	switch item.Kind {
	case domain.ItemBorder:
		p.SelectedBorderID = item.ID
	case domain.ItemTheme:
		p.SelectedTheme = item.ID
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotEquippable, item.Name)
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *shopService) profile(ctx context.Context, repo repository.ProfileRepo, userID string) (*domain.Profile, error) {
	p, err := repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoProfile, userID)
	}
	return p, err
}

func lookup(itemID string) (domain.ShopItem, error) {
	item, err := domain.LookupItem(itemID)
	if err != nil {
		return domain.ShopItem{}, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}
	return item, nil
}

func equipped(p *domain.Profile, it domain.ShopItem) bool {
	switch it.Kind {
	case domain.ItemBorder:
		return p.SelectedBorderID == it.ID
	case domain.ItemTheme:
		return p.SelectedTheme == it.ID
	}
	return false
}
