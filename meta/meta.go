// meta/meta.go
package meta

// MAX_MOVES defines the default move budget of a game.
const MAX_MOVES = 30

// MOVE_LOG defines the file a game's moves are recorded in.
const MOVE_LOG = "moves.txt"

// NUM_LEVELS defines the number of bundled levels (level1.txt..level4.txt).
const NUM_LEVELS = 4

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 8
