package models

import (
	"time"

	"gamereviews/backend/internal/serializer"
)

// User represents a reviewer.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Name      string

	Reviews []*Review `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// Games returns the game of each of the user's reviews, in review order.
func (u *User) Games() []*Game {
	games := make([]*Game, 0, len(u.Reviews))
	for _, r := range u.Reviews {
		if r != nil && r.Game != nil {
			games = append(games, r.Game)
		}
	}
	return games
}

// ModelName implements serializer.Model.
func (u *User) ModelName() string { return "user" }

// Fields lists the user's columns, reviews and the derived games view.
func (u *User) Fields() []serializer.Field {
	return []serializer.Field{
		{Name: "id", Value: u.ID},
		{Name: "created_at", Value: u.CreatedAt},
		{Name: "updated_at", Value: u.UpdatedAt},
		{Name: "name", Value: u.Name},
		{Name: "reviews", Value: reviewModels(u.Reviews)},
		{Name: "games", Value: gameModels(u.Games()), Derived: true},
	}
}

// SerializeRules keeps a user's reviews from embedding the user again. The
// games view lists games only, without their reviews.
func (u *User) SerializeRules() []string {
	return []string{"-reviews.user", "-games.reviews"}
}

func userModels(users []*User) []serializer.Model {
	out := make([]serializer.Model, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	return out
}
