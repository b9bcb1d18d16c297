package engine

import (
	"math"

	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/vmath"
)

// AvailableKana filters the loaded catalog down to what may spawn now.
// Basic kana always qualify; dakuten and yoon need both their unlock
// threshold and the matching user toggle. Ids outside the known tiers are
// always included.
func (e *Engine) AvailableKana() []content.Entry {
	dakuten := e.includeDakuten && e.correctAnswers >= constants.UnlockDakutenThreshold
	yoon := e.includeYoon && e.correctAnswers >= constants.UnlockYoonThreshold

	out := make([]content.Entry, 0, len(e.kana))
	for _, entry := range e.kana {
		switch content.TierOf(entry.ID) {
		case content.TierDakuten:
			if !dakuten {
				continue
			}
		case content.TierYoon:
			if !yoon {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

// DifficultyMultiplier scales scores by how much of the kana space is enabled
func (e *Engine) DifficultyMultiplier() float64 {
	enabled := 0
	if e.includeDakuten {
		enabled++
	}
	if e.includeYoon {
		enabled++
	}

	base := constants.DifficultyNoTiers
	switch enabled {
	case 1:
		base = constants.DifficultyOneTier
	case 2:
		base = constants.DifficultyAllTiers
	}

	if e.kanaSet == content.SetMixed {
		return base * constants.MixedSetMultiplier
	}
	return base
}

// CalculateScore prices a match on t at the current game time and combo.
// The time bonus falls linearly from MaxTimeBonus at spawn to zero at the
// danger line.
func (e *Engine) CalculateScore(t *Token) int {
	timeBonus := 0
	if lifetime := e.lifetime(); lifetime > 0 {
		elapsed := e.gameTime - t.SpawnTime
		raw := math.Round((lifetime - elapsed) / lifetime * constants.MaxTimeBonus)
		timeBonus = vmath.Clamp(int(raw), 0, constants.MaxTimeBonus)
	}

	comboMultiplier := 1 + float64(e.combo)*constants.ComboMultiplier
	points := float64(constants.BasePoints+timeBonus) * comboMultiplier * e.DifficultyMultiplier()
	return int(math.Round(points))
}

// lifetime is the seconds a token needs to fall from spawn to the danger line
func (e *Engine) lifetime() float64 {
	if e.speed <= 0 {
		return 0
	}
	return e.renderer.Playfield().DangerLine() / e.speed
}
