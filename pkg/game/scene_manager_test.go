package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// closableScene 记录 Close 调用次数
type closableScene struct {
	MockScene
	closed int
}

func (c *closableScene) Close() {
	c.closed++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(10, 10))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(100, 100))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerClosesPreviousScene 测试切换场景时关闭旧场景
func TestSceneManagerClosesPreviousScene(t *testing.T) {
	sm := NewSceneManager()
	first := &closableScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first) // 切换到同一场景不关闭
	if first.closed != 0 {
		t.Fatalf("switching to the same scene closed it %d times", first.closed)
	}

	sm.SwitchTo(second)
	if first.closed != 1 {
		t.Errorf("previous scene closed %d times, want 1", first.closed)
	}
	if sm.GetCurrentScene() != second {
		t.Error("current scene not updated")
	}
}

// TestSceneManagerClose 测试退出时关闭当前场景
func TestSceneManagerClose(t *testing.T) {
	sm := NewSceneManager()
	scene := &closableScene{}
	sm.SwitchTo(scene)

	sm.Close()
	if scene.closed != 1 {
		t.Errorf("scene closed %d times, want 1", scene.closed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("current scene should be nil after Close")
	}

	// 重复关闭无副作用
	sm.Close()
	if scene.closed != 1 {
		t.Errorf("second Close closed scene again (%d)", scene.closed)
	}
}
