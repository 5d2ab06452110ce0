package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Defaults applied to a freshly created profile.
const (
	DefaultYearLevel = "1st Year"
	DefaultSchool    = "N/A"
	DefaultBorderID  = "border_none"
	DefaultThemeID   = "default"
)

type Profile struct {
	ID                   string
	Name                 string
	Email                string
	School               string
	YearLevel            string
	Coins                int
	AvatarURL            string
	SelectedBorderID     string
	SelectedTheme        string
	UnlockedBorders      []string
	UnlockedThemes       []string
	CustomAvatarUnlocked bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewProfile returns a profile with the signup defaults filled in.
func NewProfile(id, name, email string) *Profile {
	return &Profile{
		ID:               id,
		Name:             strings.TrimSpace(name),
		Email:            strings.TrimSpace(email),
		School:           DefaultSchool,
		YearLevel:        DefaultYearLevel,
		SelectedBorderID: DefaultBorderID,
		SelectedTheme:    DefaultThemeID,
	}
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	return nil
}

// Owns reports whether the catalogue item is available to this profile.
// Free items are always owned.
func (p *Profile) Owns(item ShopItem) bool {
	if item.Price == 0 {
		return true
	}
	switch item.Kind {
	case ItemBorder:
		return slices.Contains(p.UnlockedBorders, item.ID)
	case ItemTheme:
		return slices.Contains(p.UnlockedThemes, item.ID)
	case ItemFeature:
		return item.ID == FeatureCustomAvatar && p.CustomAvatarUnlocked
	}
	return false
}
