package debris

import "github.com/vovakirdan/tui-debris/internal/core"

// FallHazards moves every hazard down by speed and removes those whose top
// edge has passed the bottom of the arena. Returns the surviving hazards and
// how many fell through.
func FallHazards(hazards []Hazard, speed, bottom float64) ([]Hazard, int) {
	dodged := 0
	kept := hazards[:0]
	for _, h := range hazards {
		h.Y += speed
		if h.Y > bottom {
			dodged++
			continue
		}
		kept = append(kept, h)
	}
	return kept, dodged
}

// HitPlayer removes hazards overlapping the player, one life per hazard.
// It stops after lives hits so the last life is never over-counted.
// Returns the surviving hazards and the number of hits.
func HitPlayer(hazards []Hazard, player core.Rect, lives int) ([]Hazard, int) {
	hits := 0
	kept := hazards[:0]
	for i, h := range hazards {
		if hits >= lives {
			kept = append(kept, hazards[i:]...)
			break
		}
		if h.Rect().Intersects(player) {
			hits++
			continue
		}
		kept = append(kept, h)
	}
	return kept, hits
}

// ResolveArrows moves arrows up by speed and resolves hits against enemies.
// Arrows leaving the top are dropped without reward. Each remaining arrow
// destroys at most one enemy, the lowest-indexed one it overlaps, and is
// consumed by the hit. Returns the surviving arrows and enemies and the kill count.
func ResolveArrows(arrows []Arrow, enemies []Enemy, speed float64) ([]Arrow, []Enemy, int) {
	kills := 0
	kept := arrows[:0]
	for _, a := range arrows {
		a.Y -= speed
		if a.Y < 0 {
			continue
		}

		hit := -1
		rect := a.Rect()
		for j, e := range enemies {
			if e.Rect().Intersects(rect) {
				hit = j
				break
			}
		}
		if hit >= 0 {
			enemies = append(enemies[:hit], enemies[hit+1:]...)
			kills++
			continue
		}
		kept = append(kept, a)
	}
	return kept, enemies, kills
}
