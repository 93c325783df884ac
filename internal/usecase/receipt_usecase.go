package usecase

import (
	"context"
	"html/template"
	"log"
	"strings"

	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IReceiptUseCase renders an order into a self-contained printable document.
//
// Line prices use the price_at_time snapshot when present and only fall back
// to the live menu price, so receipts stay accurate after menu edits. The
// stored order total is authoritative; nothing is re-summed from the lines.

type IReceiptUseCase interface {
	Render(ctx context.Context, orderID string) (string, error)
}

type ReceiptUseCase struct {
	orderRepo      interfaces.IOrderRepository
	restaurantRepo interfaces.IRestaurantRepository
	menuRepo       interfaces.IMenuItemRepository
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(orderRepo interfaces.IOrderRepository, restaurantRepo interfaces.IRestaurantRepository, menuRepo interfaces.IMenuItemRepository) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, restaurantRepo: restaurantRepo, menuRepo: menuRepo}
}

type receiptLine struct {
	Name     string
	Quantity int
	Price    string
	Note     string
	Variants []entities.VariantSelection
}

type receiptView struct {
	Restaurant entities.Restaurant
	OrderID    string
	OrderType  string
	PlacedAt   string
	Lines      []receiptLine
	Total      string
}

func (u *ReceiptUseCase) Render(ctx context.Context, orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.ID == "" {
		return "", ErrOrderNotFound
	}

	// Missing tenant metadata or menu rows degrade to blanks; a receipt with
	// an empty header still prints.
	restaurant, err := u.restaurantRepo.GetByID(ctx, order.RestaurantID)
	if err != nil {
		log.Printf("[receipt][usecase] restaurant fetch failed restaurant_id=%s err=%v; rendering without header", order.RestaurantID, err)
		restaurant = entities.Restaurant{}
	}

	menu := map[string]entities.MenuItem{}
	menuItems, err := u.menuRepo.ListByRestaurantID(ctx, order.RestaurantID)
	if err != nil {
		log.Printf("[receipt][usecase] menu fetch failed restaurant_id=%s err=%v; rendering without live prices", order.RestaurantID, err)
	} else {
		for _, m := range menuItems {
			menu[m.ID] = m
		}
	}

	view := receiptView{
		Restaurant: restaurant,
		OrderID:    order.ID,
		OrderType:  string(order.OrderType),
		PlacedAt:   order.CreatedAt.UTC().Format("2006-01-02 15:04"),
		Lines:      buildReceiptLines(order.Items, menu),
		Total:      order.TotalAmount.StringFixed(2),
	}

	var b strings.Builder
	if err := receiptTemplate.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

func buildReceiptLines(items []entities.OrderLineItem, menu map[string]entities.MenuItem) []receiptLine {
	lines := make([]receiptLine, 0, len(items))
	for _, it := range items {
		menuItem, onMenu := menu[it.MenuItemID]

		name := it.Name
		if name == "" && onMenu {
			name = menuItem.Name
		}
		if name == "" {
			name = "Item"
		}

		price := it.PriceAtTime
		if !price.IsPositive() && onMenu {
			price = menuItem.Price
		}
		if !price.IsPositive() {
			price = decimal.Zero
		}

		notes := entities.ParseLineItemNotes(it.Notes)
		lines = append(lines, receiptLine{
			Name:     name,
			Quantity: it.Quantity,
			Price:    price.StringFixed(2),
			Note:     notes.Note,
			Variants: notes.Variants,
		})
	}
	return lines
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.OrderID}}</title>
<style>
body { font-family: monospace; max-width: 360px; margin: 0 auto; padding: 16px; }
h1 { font-size: 16px; text-align: center; margin: 4px 0; }
.meta { text-align: center; font-size: 11px; margin-bottom: 12px; }
.line { display: flex; justify-content: space-between; font-size: 12px; }
.annotation { font-size: 10px; color: #555; padding-left: 12px; }
.total { border-top: 1px dashed #000; margin-top: 8px; padding-top: 8px; font-weight: bold; }
img.logo { display: block; margin: 0 auto 8px; max-height: 48px; }
</style>
</head>
<body>
{{if .Restaurant.LogoURL}}<img class="logo" src="{{.Restaurant.LogoURL}}" alt="">{{end}}
<h1>{{.Restaurant.Name}}</h1>
<div class="meta">
{{if .Restaurant.Address}}{{.Restaurant.Address}}<br>{{end}}
{{if .Restaurant.Phone}}{{.Restaurant.Phone}}<br>{{end}}
{{if .Restaurant.Website}}{{.Restaurant.Website}}<br>{{end}}
Order {{.OrderID}} &middot; {{.OrderType}} &middot; {{.PlacedAt}}
</div>
{{range .Lines}}
<div class="line"><span>{{.Quantity}} x {{.Name}}</span><span>{{.Price}}</span></div>
{{range .Variants}}<div class="annotation">{{if .GroupName}}{{.GroupName}}: {{end}}{{.Name}}</div>
{{end}}{{if .Note}}<div class="annotation">&ldquo;{{.Note}}&rdquo;</div>
{{end}}{{end}}
<div class="line total"><span>Total</span><span>{{.Total}}</span></div>
</body>
</html>
`))
