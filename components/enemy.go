package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Speed    float64 // units per tick, fixed at spawn
	Rotation float64 // facing, radians
	Alive    bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
