package core

// RuntimeConfig contains settings the platform passes to the game at start.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation frames per second (default 60)

	// Room coordinates the player starts in.
	StartRoomX int
	StartRoomY int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		StartRoomX: 8,
		StartRoomY: 8,
	}
}

// GameState is the read-only snapshot the platform uses for its chrome.
type GameState struct {
	Health   int
	GameOver bool
	Paused   bool
	RoomName string
	RoomX    int
	RoomY    int
}
