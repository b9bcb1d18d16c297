package constants

// Token Placement
// All values are in playfield cells (columns horizontally, rows vertically)
const (
	// SpawnMargin keeps tokens away from the playfield edges
	SpawnMargin = 2

	// TokenWidth is the horizontal footprint reserved for one token
	TokenWidth = 6

	// NarrowTokenWidth replaces TokenWidth on narrow playfields
	NarrowTokenWidth = 4

	// NarrowViewportWidth is the width below which NarrowTokenWidth applies
	NarrowViewportWidth = 48

	// SpawnOverlapHeight is the distance below the spawn line within which
	// existing tokens still count as overlapping a new spawn
	SpawnOverlapHeight = 2

	// SpawnMaxAttempts caps the random placement retries
	SpawnMaxAttempts = 12

	// DangerZoneHeight is the number of rows at the bottom that count as a miss
	DangerZoneHeight = 2
)
