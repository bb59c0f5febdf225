// internal/state/context.go
package state

import (
	"github.com/danvargg/tower-defense/internal/audio"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/utils"
)

// Context carries everything shared across states: the machine itself,
// the loaded settings, and the long-lived services.
type Context struct {
	Machine  *StateMachine
	Settings config.Settings
	Sound    *audio.SoundManager
	Rng      *utils.PRNGService

	// Quit tells the run loop to terminate on the next tick.
	Quit bool
}
