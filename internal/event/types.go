// internal/event/types.go
package event

const (
	TurretPlaced     EventType = "TurretPlaced"
	TurretRemoved    EventType = "TurretRemoved"
	TurretFired      EventType = "TurretFired"
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled"
	EnemyReachedExit EventType = "EnemyReachedExit"
	WaveStarted      EventType = "WaveStarted"
	WaveEnded        EventType = "WaveEnded"
	LevelLoaded      EventType = "LevelLoaded"
	GameOver         EventType = "GameOver"
)
