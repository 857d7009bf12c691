package application

import (
	"github.com/mydrtv/backend/pkg/domain"
)

const UserRegisteredEventName = "user.registered"

// UserRegisteredEvent records a completed user registration.
type UserRegisteredEvent struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (e UserRegisteredEvent) EventName() string {
	return UserRegisteredEventName
}

func NewUserRegisteredEvent(userID, username, email string) domain.Event {
	return UserRegisteredEvent{UserID: userID, Username: username, Email: email}
}
