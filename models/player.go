package models

import "time"

// Player is a registered tournament participant. Registration is global:
// a player joins a tournament implicitly by having a match reported there.
type Player struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
