package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closable 是一个可选接口，场景被替换时释放资源（取消订阅、销毁实体）
type Closable interface {
	Close()
}
