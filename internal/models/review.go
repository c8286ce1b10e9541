package models

import (
	"fmt"
	"time"

	"gamereviews/backend/internal/serializer"
)

// Review is a user's score and comment for a game. It belongs to exactly one
// Game and one User; both foreign keys are enforced by the database.
type Review struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Score     int
	Comment   string
	GameID    uint `gorm:"not null;index"`
	UserID    uint `gorm:"not null;index"`

	Game *Game `gorm:"foreignKey:GameID"`
	User *User `gorm:"foreignKey:UserID"`
}

// String describes the review for logs.
func (r *Review) String() string {
	title := "<unknown game>"
	if r.Game != nil {
		title = r.Game.Title
	}
	return fmt.Sprintf("Review(%d) of %s: %d/10", r.ID, title, r.Score)
}

// ModelName implements serializer.Model.
func (r *Review) ModelName() string { return "review" }

// Fields lists the review's columns and its game and user.
func (r *Review) Fields() []serializer.Field {
	return []serializer.Field{
		{Name: "id", Value: r.ID},
		{Name: "created_at", Value: r.CreatedAt},
		{Name: "updated_at", Value: r.UpdatedAt},
		{Name: "score", Value: r.Score},
		{Name: "comment", Value: r.Comment},
		{Name: "game_id", Value: r.GameID},
		{Name: "user_id", Value: r.UserID},
		{Name: "game", Value: r.Game},
		{Name: "user", Value: r.User},
	}
}

// SerializeRules embed the review's game and user without their review lists.
func (r *Review) SerializeRules() []string {
	return []string{"-game.reviews", "-user.reviews"}
}

func reviewModels(reviews []*Review) []serializer.Model {
	out := make([]serializer.Model, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r)
	}
	return out
}
