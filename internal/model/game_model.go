package model

import "time"

// The game-side tables below are owned by other subsystems; this service only
// ever touches them inside the hard-delete cascade, so they are declared with
// just enough columns to address the rows by user.

type ReviewModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;index"`
	GameID    string `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (ReviewModel) TableName() string { return "reviews" }

type GameInteractionModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;index"`
	GameID    string `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (GameInteractionModel) TableName() string { return "user_game_interactions" }

type GameScoreModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;index"`
	GameID    string `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (GameScoreModel) TableName() string { return "game_scores" }

type SavedGameModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;index"`
	GameID    string `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (SavedGameModel) TableName() string { return "saved_games" }

type GameRoomModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	HostID    string `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (GameRoomModel) TableName() string { return "game_rooms" }

type RoomPlayerModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	RoomID    string `gorm:"type:uuid;index"`
	UserID    string `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (RoomPlayerModel) TableName() string { return "room_players" }

type GameInviteModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	InviterID string `gorm:"type:uuid;index"`
	InviteeID string `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (GameInviteModel) TableName() string { return "game_invites" }
