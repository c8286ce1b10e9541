package models

import (
	"time"

	"gamereviews/backend/internal/serializer"
)

// Game represents a game in the catalog.
type Game struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Title     string    `gorm:"size:255;unique;not null"`
	Genre     string
	Platform  string
	Price     int

	Reviews []*Review `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// Users returns the author of each of the game's reviews, in review order.
// A user who reviewed the game twice appears twice.
func (g *Game) Users() []*User {
	users := make([]*User, 0, len(g.Reviews))
	for _, r := range g.Reviews {
		if r != nil && r.User != nil {
			users = append(users, r.User)
		}
	}
	return users
}

// ModelName implements serializer.Model.
func (g *Game) ModelName() string { return "game" }

// Fields lists the game's columns, its reviews and the derived users view.
func (g *Game) Fields() []serializer.Field {
	return []serializer.Field{
		{Name: "id", Value: g.ID},
		{Name: "created_at", Value: g.CreatedAt},
		{Name: "updated_at", Value: g.UpdatedAt},
		{Name: "title", Value: g.Title},
		{Name: "genre", Value: g.Genre},
		{Name: "platform", Value: g.Platform},
		{Name: "price", Value: g.Price},
		{Name: "reviews", Value: reviewModels(g.Reviews)},
		{Name: "users", Value: userModels(g.Users()), Derived: true},
	}
}

// SerializeRules keeps a game's reviews from embedding the game again. The
// users view lists reviewers only; their review lists are not loaded with it.
func (g *Game) SerializeRules() []string {
	return []string{"-reviews.game", "-users.reviews"}
}

func gameModels(games []*Game) []serializer.Model {
	out := make([]serializer.Model, 0, len(games))
	for _, g := range games {
		out = append(out, g)
	}
	return out
}
