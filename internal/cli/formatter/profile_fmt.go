package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/service"
)

// FormatProfile renders the profile card.
func FormatProfile(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString(Bold(p.Name))
	if p.Email != "" {
		b.WriteString("  " + Dim(p.Email))
	}
	b.WriteString("\n\n")
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render(fmt.Sprintf("%-7s", label)), value))
	}
	row("School", p.School)
	row("Year", p.YearLevel)
	row("Coins", Coins(p.Coins))
	row("Border", itemName(p.SelectedBorderID))
	row("Theme", itemName(p.SelectedTheme))
	if p.AvatarURL != "" {
		row("Avatar", Dim(p.AvatarURL))
	}
	return RenderBox("Profile", b.String())
}

// FormatShop renders the catalogue with ownership state.
func FormatShop(coins int, listings []service.Listing) string {
	headers := []string{"ITEM", "KIND", "PRICE", ""}
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		state := ""
		switch {
		case l.Equipped:
			state = StyleGreen.Render("● equipped")
		case l.Owned:
			state = StyleBlue.Render("owned")
		}
		price := Coins(l.Item.Price)
		if l.Item.Price == 0 {
			price = Dim("free")
		}
		rows = append(rows, []string{
			Bold(l.Item.Name) + " " + Dim("("+l.Item.ID+")"),
			string(l.Item.Kind),
			price,
			state,
		})
	}
	return RenderBox("Shop", "Balance: "+Coins(coins)+"\n\n"+RenderTable(headers, rows))
}

func itemName(id string) string {
	if it, err := domain.LookupItem(id); err == nil {
		return it.Name
	}
	return id
}
