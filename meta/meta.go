// meta/meta.go
package meta

// DefaultMaxDepth is the look-ahead depth used when a request names none.
const DefaultMaxDepth = 2

// MaxTurns caps a local game.
const MaxTurns = 500

// DefaultWidth and DefaultHeight size the local arena.
const DefaultWidth = 30
const DefaultHeight = 30

// DefaultAddr is where the websocket host listens.
const DefaultAddr = ":8080"

// DefaultGames is the number of games per experiment matchup.
const DefaultGames = 10
