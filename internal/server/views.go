package server

import (
	"example/storefront/internal/kvstore"
	"example/storefront/internal/models"
	"example/storefront/internal/repository"
)

// Views resolve soft references for display. Anything that no longer
// resolves is shown as unknown rather than treated as an error.

type cartLine struct {
	models.CartItem
	ProductName string  `json:"product_name"`
	Subtotal    float64 `json:"subtotal"`
}

type cartView struct {
	Items []cartLine `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

type orderView struct {
	models.Order
	UserName string `json:"user_name"`
}

type messageView struct {
	models.Message
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
}

type productView struct {
	models.Product
	CategoryName string `json:"category_name"`
}

type notificationsView struct {
	Notifications  []models.Notification `json:"notifications"`
	Unread         int                   `json:"unread"`
	UnreadMessages int                   `json:"unread_messages"`
}

type partnerView struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// userNames indexes user names by id
func userNames(st *kvstore.Store) map[string]string {
	names := map[string]string{}
	for _, u := range repository.GetAllUsers(st) {
		names[u.ID] = u.Name
	}
	return names
}

func resolveName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return repository.UnknownUserName
}

// publicUser strips the password before a user leaves the process
func publicUser(u models.User) models.User {
	u.Password = ""
	return u
}

func publicUsers(users []models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, publicUser(u))
	}
	return out
}

func buildCartView(st *kvstore.Store) cartView {
	products := map[string]string{}
	for _, p := range repository.GetAllProducts(st) {
		products[p.ID] = p.Name
	}

	view := cartView{Items: []cartLine{}}
	for _, item := range repository.GetCart(st) {
		name, ok := products[item.ProductID]
		if !ok {
			name = "Unknown product"
		}
		line := cartLine{CartItem: item, ProductName: name, Subtotal: item.Price * float64(item.Quantity)}
		view.Items = append(view.Items, line)
	}
	view.Total = repository.GetCartTotal(st)
	view.Count = repository.GetCartCount(st)
	return view
}

func buildOrderViews(st *kvstore.Store, orders []models.Order) []orderView {
	names := userNames(st)
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView{Order: o, UserName: resolveName(names, o.UserID)})
	}
	return views
}

func buildMessageViews(st *kvstore.Store, messages []models.Message) []messageView {
	names := userNames(st)
	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, messageView{
			Message:  m,
			FromName: resolveName(names, m.FromUserID),
			ToName:   resolveName(names, m.ToUserID),
		})
	}
	return views
}

func buildProductViews(st *kvstore.Store, products []models.Product) []productView {
	categories := map[string]string{}
	for _, c := range repository.GetAllCategories(st) {
		categories[c.ID] = c.Name
	}
	views := make([]productView, 0, len(products))
	for _, p := range products {
		name, ok := categories[p.CategoryID]
		if !ok {
			name = "Uncategorized"
		}
		views = append(views, productView{Product: p, CategoryName: name})
	}
	return views
}

func buildPartnerViews(st *kvstore.Store, ids []string) []partnerView {
	names := userNames(st)
	views := make([]partnerView, 0, len(ids))
	for _, id := range ids {
		views = append(views, partnerView{UserID: id, Name: resolveName(names, id)})
	}
	return views
}
