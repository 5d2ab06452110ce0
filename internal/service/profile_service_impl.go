package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	profiles repository.ProfileRepo
	avatars  AvatarStore
	observer UseCaseObserver
}

// NewProfileService returns a ProfileService. avatars may be nil, in which
// case uploads fail with ErrStorageDisabled.
func NewProfileService(profiles repository.ProfileRepo, avatars AvatarStore, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		avatars:  avatars,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Ensure(ctx context.Context, id, name, email string) (*domain.Profile, error) {
	if id != "" {
		p, err := s.profiles.GetByID(ctx, id)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	} else {
		id = uuid.New().String()
	}

	p := domain.NewProfile(id, name, email)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	if id == "" {
		return nil, ErrNoProfile
	}
	p, err := s.profiles.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoProfile, id)
	}
	return p, err
}

func (s *profileService) Update(ctx context.Context, p *domain.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.School = domain.CoalesceStr(p.School, domain.DefaultSchool)
	p.YearLevel = domain.CoalesceStr(p.YearLevel, domain.DefaultYearLevel)
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Update(ctx, p)
}

func (s *profileService) UploadAvatar(ctx context.Context, userID, filename string, r io.Reader, size int64) (url string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "bytes": size}
	defer func() { observe(ctx, s.observer, "upload-avatar", startedAt, fields, err) }()

	if s.avatars == nil {
		return "", ErrStorageDisabled
	}
	var p *domain.Profile
	p, err = s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if !p.CustomAvatarUnlocked {
		return "", ErrAvatarLocked
	}

	url, err = s.avatars.UploadAvatar(ctx, userID, filename, r, size)
	if err != nil {
		return "", err
	}
	previous := p.AvatarURL
	p.AvatarURL = url
	if err = s.profiles.Update(ctx, p); err != nil {
		if delErr := s.avatars.DeleteAvatar(ctx, url); delErr != nil {
			fields["orphaned_avatar"] = url
		}
		return "", err
	}
	if previous != "" {
		if delErr := s.avatars.DeleteAvatar(ctx, previous); delErr != nil {
			fields["stale_avatar"] = previous
		}
	}
	return url, nil
}
