package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FireCooldown int // frames until the next shot is allowed
}

var Player = donburi.NewComponentType[PlayerData]()
