package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// bindings lists the keys that hold each action down.
var bindings = []struct {
	action core.Action
	keys   []int32
}{
	{core.ActionUp, []int32{rl.KeyUp, rl.KeyW}},
	{core.ActionDown, []int32{rl.KeyDown, rl.KeyS}},
	{core.ActionLeft, []int32{rl.KeyLeft, rl.KeyA}},
	{core.ActionRight, []int32{rl.KeyRight, rl.KeyD}},
	{core.ActionRestart, []int32{rl.KeyEnter, rl.KeyKpEnter}},
}

// pollInput fills frame with every action whose key isDown reports held.
func pollInput(frame *core.InputFrame, isDown func(key int32) bool) {
	frame.Clear()
	for _, b := range bindings {
		for _, k := range b.keys {
			if isDown(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}
