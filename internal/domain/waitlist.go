package domain

import "time"

// WaitlistSignup Model
type WaitlistSignup struct {
	ID            uint      `gorm:"primaryKey" json:"id"`                       // Primary key
	Email         string    `gorm:"uniqueIndex;not null;size:255" json:"email"` // Unique email address
	Source        string    `gorm:"size:50;default:landing_page" json:"source"` // Where the signup came from
	GamePlayed    bool      `gorm:"default:false" json:"game_played"`           // Whether the visitor played the demo game
	FinalBankroll *float64  `json:"final_bankroll"`                             // Bankroll at the end of the game session
	TotalBets     *int      `json:"total_bets"`                                 // Number of bets placed in the game session
	WinRate       *float64  `json:"win_rate"`                                   // Win percentage, 0-100
	CreatedAt     time.Time `json:"created_at"`                                 // Timestamp of creation
}

// TableName overrides the default table name
func (WaitlistSignup) TableName() string {
	return "waitlist_signups"
}
