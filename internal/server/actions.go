package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"example/storefront/internal/models"
	"example/storefront/internal/repository"
)

type actionFunc func(s *Server, data json.RawMessage) (interface{}, error)

var actions = map[string]actionFunc{
	// session and accounts
	"register":    (*Server).register,
	"login":       (*Server).login,
	"logout":      (*Server).logout,
	"currentUser": (*Server).currentUser,
	"getUsers":    (*Server).getUsers,
	"updateUser":  (*Server).updateUser,
	"deleteUser":  (*Server).deleteUser,

	// catalog
	"getCategories":         (*Server).getCategories,
	"getCategory":           (*Server).getCategory,
	"saveCategories":        (*Server).saveCategories,
	"getProducts":           (*Server).getProducts,
	"getProduct":            (*Server).getProduct,
	"getProductsByCategory": (*Server).getProductsByCategory,
	"getFeaturedProducts":   (*Server).getFeaturedProducts,
	"addProduct":            (*Server).addProduct,
	"updateProduct":         (*Server).updateProduct,
	"deleteProduct":         (*Server).deleteProduct,

	// cart
	"getCart":         (*Server).getCart,
	"addToCart":       (*Server).addToCart,
	"removeFromCart":  (*Server).removeFromCart,
	"setCartQuantity": (*Server).setCartQuantity,
	"clearCart":       (*Server).clearCart,

	// orders
	"placeOrder":        (*Server).placeOrder,
	"getOrders":         (*Server).getOrders,
	"getMyOrders":       (*Server).getMyOrders,
	"updateOrderStatus": (*Server).updateOrderStatus,

	// messages and notifications
	"sendMessage":              (*Server).sendMessage,
	"getConversation":          (*Server).getConversation,
	"getConversationPartners":  (*Server).getConversationPartners,
	"markMessageRead":          (*Server).markMessageRead,
	"getNotifications":         (*Server).getNotifications,
	"markNotificationRead":     (*Server).markNotificationRead,
	"markAllNotificationsRead": (*Server).markAllNotificationsRead,
}

var (
	errNotLoggedIn       = errors.New("not logged in")
	errForbidden         = errors.New("admin access required")
	errInvalidRole       = errors.New("invalid role")
	errCategoryNotFound  = errors.New("category not found")
	errEmailExists       = errors.New("email already exists")
	errInvalidLogin      = errors.New("invalid email or password")
	errUserNotFound      = errors.New("user not found")
	errProductNotFound   = errors.New("product not found")
	errOrderNotFound     = errors.New("order not found")
	errSelfDemotion      = errors.New("cannot change your own role")
	errSelfDeletion      = errors.New("cannot delete your own account")
	errEmptyCart         = errors.New("cart is empty")
	errEmptyMessage      = errors.New("message content is empty")
	errMissingAddress    = errors.New("shipping address is required")
	errInvalidStatus     = errors.New("invalid order status")
	errMissingIdentifier = errors.New("id is required")
)

type idRequest struct {
	ID string `json:"id"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Image    string `json:"image"`
}

type productUpdateRequest struct {
	ID     string               `json:"id"`
	Fields models.ProductUpdate `json:"fields"`
}

type cartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type placeOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
	ShippingMethod  string `json:"shipping_method"`
}

type statusRequest struct {
	OrderID string             `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
}

type sendMessageRequest struct {
	ToUserID string `json:"to_user_id"`
	Content  string `json:"content"`
}

type conversationRequest struct {
	UserID string `json:"user_id"`
}

func decode(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return errors.New("missing data")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid data: %w", err)
	}
	return nil
}

func decodeID(data json.RawMessage) (string, error) {
	var req idRequest
	if err := decode(data, &req); err != nil {
		return "", err
	}
	if req.ID == "" {
		return "", errMissingIdentifier
	}
	return req.ID, nil
}

func (s *Server) sessionUser() (models.User, error) {
	u, ok := repository.GetCurrentUser(s.store)
	if !ok {
		return models.User{}, errNotLoggedIn
	}
	return u, nil
}

// requireAdmin returns the logged-in user if they are an admin
func (s *Server) requireAdmin() (models.User, error) {
	u, err := s.sessionUser()
	if err != nil {
		return models.User{}, err
	}
	if u.Role != models.RoleAdmin {
		return models.User{}, errForbidden
	}
	return u, nil
}

// Session and accounts

func (s *Server) register(data json.RawMessage) (interface{}, error) {
	var req registerRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if req.Email == "" || req.Password == "" {
		return nil, errInvalidLogin
	}
	u, ok := repository.RegisterUser(s.store, models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.RoleUser,
		Image:    req.Image,
	})
	if !ok {
		return nil, errEmailExists
	}
	return publicUser(u), nil
}

func (s *Server) login(data json.RawMessage) (interface{}, error) {
	var req credentials
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	u, ok := repository.LoginUser(s.store, req.Email, req.Password)
	if !ok {
		return nil, errInvalidLogin
	}
	return publicUser(u), nil
}

// logout ends the session and empties the cart
func (s *Server) logout(json.RawMessage) (interface{}, error) {
	repository.EndSession(s.store)
	repository.ClearCart(s.store)
	return nil, nil
}

func (s *Server) currentUser(json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	return publicUser(u), nil
}

func (s *Server) getUsers(json.RawMessage) (interface{}, error) {
	return publicUsers(repository.GetAllUsers(s.store)), nil
}

// updateUser edits a user record and writes the whole collection back.
// Admins may edit anyone, other users only themselves. Nobody may change
// their own role. Empty fields keep the stored values.
func (s *Server) updateUser(data json.RawMessage) (interface{}, error) {
	current, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	var req models.User
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, errMissingIdentifier
	}
	if current.Role != models.RoleAdmin && current.ID != req.ID {
		return nil, errForbidden
	}
	if req.Role != "" && !req.Role.Valid() {
		return nil, errInvalidRole
	}
	if current.ID == req.ID && req.Role != "" && req.Role != current.Role {
		return nil, errSelfDemotion
	}

	users := repository.GetAllUsers(s.store)
	idx := -1
	for i, u := range users {
		if u.ID == req.ID {
			idx = i
		} else if req.Email != "" && u.Email == req.Email {
			return nil, errEmailExists
		}
	}
	if idx < 0 {
		return nil, errUserNotFound
	}

	updated := users[idx]
	if req.Email != "" {
		updated.Email = req.Email
	}
	if req.Name != "" {
		updated.Name = req.Name
	}
	if req.Image != "" {
		updated.Image = req.Image
	}
	if req.Role != "" {
		updated.Role = req.Role
	}
	if req.Password != "" {
		updated.Password = req.Password
	}
	users[idx] = updated
	repository.SaveUsers(s.store, users)

	// keep the session copy in step with the stored record
	if current.ID == updated.ID {
		repository.SetCurrentUser(s.store, updated)
	}
	return publicUser(updated), nil
}

// deleteUser removes a user. Their orders and messages stay behind and
// display the owner as unknown.
func (s *Server) deleteUser(data json.RawMessage) (interface{}, error) {
	current, err := s.requireAdmin()
	if err != nil {
		return nil, err
	}
	id, err := decodeID(data)
	if err != nil {
		return nil, err
	}
	if current.ID == id {
		return nil, errSelfDeletion
	}

	users := repository.GetAllUsers(s.store)
	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return nil, errUserNotFound
	}
	repository.SaveUsers(s.store, kept)
	return nil, nil
}

// Catalog

func (s *Server) getCategories(json.RawMessage) (interface{}, error) {
	return repository.GetAllCategories(s.store), nil
}

func (s *Server) getCategory(data json.RawMessage) (interface{}, error) {
	id, err := decodeID(data)
	if err != nil {
		return nil, err
	}
	c, ok := repository.GetCategoryByID(s.store, id)
	if !ok {
		return nil, errCategoryNotFound
	}
	return c, nil
}

func (s *Server) saveCategories(data json.RawMessage) (interface{}, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := decode(data, &categories); err != nil {
		return nil, err
	}
	repository.SaveCategories(s.store, categories)
	return repository.GetAllCategories(s.store), nil
}

func (s *Server) getProducts(json.RawMessage) (interface{}, error) {
	return buildProductViews(s.store, repository.GetAllProducts(s.store)), nil
}

// getProductsByCategory takes the category id as its id
func (s *Server) getProductsByCategory(data json.RawMessage) (interface{}, error) {
	id, err := decodeID(data)
	if err != nil {
		return nil, err
	}
	return buildProductViews(s.store, repository.GetProductsByCategory(s.store, id)), nil
}

func (s *Server) getFeaturedProducts(json.RawMessage) (interface{}, error) {
	return buildProductViews(s.store, repository.GetFeaturedProducts(s.store)), nil
}

func (s *Server) getProduct(data json.RawMessage) (interface{}, error) {
	id, err := decodeID(data)
	if err != nil {
		return nil, err
	}
	p, ok := repository.GetProductByID(s.store, id)
	if !ok {
		return nil, errProductNotFound
	}
	return buildProductViews(s.store, []models.Product{p})[0], nil
}

func (s *Server) addProduct(data json.RawMessage) (interface{}, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	var p models.Product
	if err := decode(data, &p); err != nil {
		return nil, err
	}
	return repository.AddProduct(s.store, p), nil
}

func (s *Server) updateProduct(data json.RawMessage) (interface{}, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	var req productUpdateRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if !repository.UpdateProduct(s.store, req.ID, req.Fields) {
		return nil, errProductNotFound
	}
	p, _ := repository.GetProductByID(s.store, req.ID)
	return p, nil
}

func (s *Server) deleteProduct(data json.RawMessage) (interface{}, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	id, err := decodeID(data)
	if err != nil {
		return nil, err
	}
	if !repository.DeleteProduct(s.store, id) {
		return nil, errProductNotFound
	}
	return nil, nil
}

// Cart

func (s *Server) getCart(json.RawMessage) (interface{}, error) {
	return buildCartView(s.store), nil
}

// addToCart adds a product at its current catalog price
func (s *Server) addToCart(data json.RawMessage) (interface{}, error) {
	var req cartRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	p, ok := repository.GetProductByID(s.store, req.ProductID)
	if !ok {
		return nil, errProductNotFound
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	repository.AddToCart(s.store, p.ID, p.Price, req.Quantity)
	return buildCartView(s.store), nil
}

func (s *Server) removeFromCart(data json.RawMessage) (interface{}, error) {
	var req cartRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	repository.RemoveFromCart(s.store, req.ProductID)
	return buildCartView(s.store), nil
}

func (s *Server) setCartQuantity(data json.RawMessage) (interface{}, error) {
	var req cartRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	repository.UpdateCartQuantity(s.store, req.ProductID, req.Quantity)
	return buildCartView(s.store), nil
}

func (s *Server) clearCart(json.RawMessage) (interface{}, error) {
	repository.ClearCart(s.store)
	return buildCartView(s.store), nil
}

// Orders

// placeOrder turns the cart into an order for the logged-in user and then
// empties the cart
func (s *Server) placeOrder(data json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	var req placeOrderRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return nil, errMissingAddress
	}
	items := repository.GetCart(s.store)
	if len(items) == 0 {
		return nil, errEmptyCart
	}

	order := repository.CreateOrder(s.store, u.ID, items, req.ShippingAddress, req.ShippingMethod)
	repository.ClearCart(s.store)
	return order, nil
}

func (s *Server) getOrders(json.RawMessage) (interface{}, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return buildOrderViews(s.store, repository.GetAllOrders(s.store)), nil
}

func (s *Server) getMyOrders(json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	return buildOrderViews(s.store, repository.GetOrdersByUserID(s.store, u.ID)), nil
}

func (s *Server) updateOrderStatus(data json.RawMessage) (interface{}, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	var req statusRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if !req.Status.Valid() {
		return nil, errInvalidStatus
	}
	if !repository.UpdateOrderStatus(s.store, req.OrderID, req.Status) {
		return nil, errOrderNotFound
	}
	o, _ := repository.GetOrderByID(s.store, req.OrderID)
	return o, nil
}

// Messages and notifications

func (s *Server) sendMessage(data json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	var req sendMessageRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, errEmptyMessage
	}
	if req.ToUserID == "" {
		return nil, errMissingIdentifier
	}
	return repository.SendMessage(s.store, u.ID, req.ToUserID, req.Content), nil
}

func (s *Server) getConversation(data json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	var req conversationRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	return buildMessageViews(s.store, repository.GetConversation(s.store, u.ID, req.UserID)), nil
}

func (s *Server) getConversationPartners(json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	return buildPartnerViews(s.store, repository.GetConversationPartners(s.store, u.ID)), nil
}

func (s *Server) markMessageRead(data json.RawMessage) (interface{}, error) {
	id, err := decodeID(data)
	if err != nil {
		return nil, err
	}
	repository.MarkMessageRead(s.store, id)
	return nil, nil
}

func (s *Server) getNotifications(json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	notifications := repository.GetNotificationsForUser(s.store, u.ID)
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notificationsView{
		Notifications:  notifications,
		Unread:         repository.GetUnreadNotificationCount(s.store, u.ID),
		UnreadMessages: repository.GetUnreadMessageCount(s.store, u.ID),
	}, nil
}

func (s *Server) markNotificationRead(data json.RawMessage) (interface{}, error) {
	id, err := decodeID(data)
	if err != nil {
		return nil, err
	}
	repository.MarkNotificationRead(s.store, id)
	return nil, nil
}

func (s *Server) markAllNotificationsRead(json.RawMessage) (interface{}, error) {
	u, err := s.sessionUser()
	if err != nil {
		return nil, err
	}
	repository.MarkAllNotificationsRead(s.store, u.ID)
	return nil, nil
}
