package render

import (
	"fmt"
	"strings"
)

// HUD is the header state shown above the playfield
type HUD struct {
	Score    int
	Lives    int
	MaxLives int
	Combo    int
	Speed    float64
	Mode     string
	Set      string
	Player   string

	// Unlocked tiers, only those the player enabled
	Dakuten bool
	Yoon    bool

	// LosesLives hides the lives gauge in modes without life loss
	LosesLives bool
}

// Line formats the header; segments are separated by two spaces
func (h HUD) Line() string {
	parts := []string{fmt.Sprintf("score %d", h.Score)}

	if h.LosesLives {
		parts = append(parts, "lives "+lifeGauge(h.Lives, h.MaxLives))
	}
	parts = append(parts, fmt.Sprintf("combo %d", h.Combo))
	if h.Speed > 0 {
		parts = append(parts, fmt.Sprintf("speed x%.2f", h.Speed))
	}

	mode := h.Mode
	if h.Set != "" {
		mode += " " + h.Set
	}
	if h.Dakuten {
		mode += " +dakuten"
	}
	if h.Yoon {
		mode += " +yoon"
	}
	if mode != "" {
		parts = append(parts, strings.TrimSpace(mode))
	}
	if h.Player != "" {
		parts = append(parts, h.Player)
	}
	return " " + strings.Join(parts, "  ")
}

func lifeGauge(lives, max int) string {
	if max < lives {
		max = lives
	}
	if lives < 0 {
		lives = 0
	}
	return strings.Repeat("♥", lives) + strings.Repeat("·", max-lives)
}
