package repository

import (
	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// User store operations

// GetAllUsers returns every registered user
func GetAllUsers(s *kvstore.Store) []models.User {
	return kvstore.GetCollection[models.User](s, UsersKey)
}

// SaveUsers replaces the whole user collection
func SaveUsers(s *kvstore.Store, users []models.User) {
	kvstore.SetCollection(s, UsersKey, users)
}

// GetUserByID looks up the user with the specified ID
func GetUserByID(s *kvstore.Store, id string) (models.User, bool) {
	for _, u := range GetAllUsers(s) {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// GetCurrentUser returns the logged-in user, if any
func GetCurrentUser(s *kvstore.Store) (models.User, bool) {
	return kvstore.GetSingleton[models.User](s, CurrentUserKey)
}

// SetCurrentUser makes user the logged-in user
func SetCurrentUser(s *kvstore.Store, user models.User) {
	kvstore.SetSingleton(s, CurrentUserKey, user)
}

// EndSession forgets the logged-in user. User records are left untouched.
func EndSession(s *kvstore.Store) {
	kvstore.Clear(s, CurrentUserKey)
}

// RegisterUser adds a new user, assigning its ID and creation time.
// It returns false, without writing, when the email is already taken.
func RegisterUser(s *kvstore.Store, user models.User) (models.User, bool) {
	users := GetAllUsers(s)
	for _, u := range users {
		if u.Email == user.Email {
			logger.Log.Infow("Registration rejected, email exists", "email", user.Email)
			return models.User{}, false
		}
	}

	user.ID = newID()
	user.CreatedAt = now()
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	SaveUsers(s, append(users, user))
	logger.Log.Infow("User registered", "user_id", user.ID, "email", user.Email)
	return user, true
}

// LoginUser finds the user whose email and password both match exactly and
// starts a session for it.
func LoginUser(s *kvstore.Store, email, password string) (models.User, bool) {
	for _, u := range GetAllUsers(s) {
		if u.Email == email && u.Password == password {
			SetCurrentUser(s, u)
			logger.Log.Infow("User logged in", "user_id", u.ID)
			return u, true
		}
	}
	logger.Log.Infow("Login failed", "email", email)
	return models.User{}, false
}
