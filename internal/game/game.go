package game

import "time"

// Version of the game.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, a random version number will be
// used, and force the reload of the WASM on every restart (the reload
// still only happens after the first page is loaded, so there is a delay).
// This is useful during development.
var Version = "v0.1.0"

// TimeLimit is the countdown every session plays against, in both modes.
const TimeLimit = 120 * time.Second

// MissPenalty is subtracted from the running score on every mismatch.
const MissPenalty = 50

// PairsPerGame is the number of distinct card values in every deck.
const PairsPerGame = 4
