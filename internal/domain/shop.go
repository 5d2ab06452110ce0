package domain

import "fmt"

// FeatureCustomAvatar unlocks uploading a custom profile picture.
const FeatureCustomAvatar = "custom_avatar"

// CustomAvatarCost is the coin price of FeatureCustomAvatar.
const CustomAvatarCost = 100

type ShopItem struct {
	ID    string
	Kind  ItemKind
	Name  string
	Price int
}

// Catalogue is everything sold in the shop, in display order.
var Catalogue = []ShopItem{
	{ID: DefaultBorderID, Kind: ItemBorder, Name: "No Border", Price: 0},
	{ID: "border_stethoscope", Kind: ItemBorder, Name: "Stethoscope", Price: 50},
	{ID: "border_heartbeat", Kind: ItemBorder, Name: "Heartbeat", Price: 75},
	{ID: "border_gold", Kind: ItemBorder, Name: "Gold Caduceus", Price: 150},
	{ID: "border_rainbow", Kind: ItemBorder, Name: "Rainbow Scrubs", Price: 250},
	{ID: DefaultThemeID, Kind: ItemTheme, Name: "Default", Price: 0},
	{ID: "ube", Kind: ItemTheme, Name: "Ube", Price: 120},
	{ID: "strawberry", Kind: ItemTheme, Name: "Strawberry", Price: 120},
	{ID: FeatureCustomAvatar, Kind: ItemFeature, Name: "Custom Avatar", Price: CustomAvatarCost},
}

// LookupItem finds a catalogue item by id.
func LookupItem(id string) (ShopItem, error) {
	for _, it := range Catalogue {
		if it.ID == id {
			return it, nil
		}
	}
	return ShopItem{}, fmt.Errorf("unknown shop item %q", id)
}
