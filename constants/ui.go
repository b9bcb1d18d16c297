package constants

import "time"

// UI Layout Constants
const (
	// HeaderRows is the number of screen rows above the playfield
	HeaderRows = 1

	// FooterRows is the number of screen rows below the playfield (input echo)
	FooterRows = 1
)

// UI Timing Constants
const (
	// FlashDuration is how long a matched or missed token lingers
	FlashDuration = 250 * time.Millisecond

	// FloatTextDuration is how long floating feedback text stays visible
	FloatTextDuration = 900 * time.Millisecond

	// FloatTextRise is how many rows floating text climbs over its lifetime
	FloatTextRise = 2.0
)
