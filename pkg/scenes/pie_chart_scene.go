package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/gonewx/piechart/pkg/components"
	"github.com/gonewx/piechart/pkg/config"
	"github.com/gonewx/piechart/pkg/ecs"
	"github.com/gonewx/piechart/pkg/entities"
	"github.com/gonewx/piechart/pkg/game"
	"github.com/gonewx/piechart/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// PieChartScene 饼图演示场景
// 一个数值模型、一个饼图控件，以及一行数值文字（模型的第二个观察者）
type PieChartScene struct {
	entityManager *ecs.EntityManager
	model         *game.Percentage
	pieEntity     ecs.EntityID

	inputSystem  *systems.PieChartInputSystem
	renderSystem *systems.PieChartRenderSystem

	background color.RGBA
	label      string

	unsubscribeLabel func()
}

// NewPieChartScene 根据配置创建演示场景
func NewPieChartScene(cfg *config.PieChartAppConfig) (*PieChartScene, error) {
	return newPieChartScene(cfg, nil)
}

// NewPieChartSceneWithInput 创建使用自定义输入的演示场景（用于测试）
func NewPieChartSceneWithInput(cfg *config.PieChartAppConfig, input systems.PieMouseInput, cursor systems.CursorSetter) (*PieChartScene, error) {
	return newPieChartScene(cfg, func(em *ecs.EntityManager) *systems.PieChartInputSystem {
		return systems.NewPieChartInputSystemWithInput(em, input, cursor)
	})
}

func newPieChartScene(cfg *config.PieChartAppConfig, newInput func(em *ecs.EntityManager) *systems.PieChartInputSystem) (*PieChartScene, error) {
	if cfg == nil {
		cfg = config.DefaultPieChartAppConfig()
	}
	colors, err := cfg.Colors.Resolve()
	if err != nil {
		return nil, fmt.Errorf("解析颜色配置失败: %w", err)
	}

	em := ecs.NewEntityManager()
	model := game.NewPercentage(cfg.PieChart.InitialValue)

	s := &PieChartScene{
		entityManager: em,
		model:         model,
		background:    colors.Background,
		renderSystem:  systems.NewPieChartRenderSystem(em),
	}
	if newInput != nil {
		s.inputSystem = newInput(em)
	} else {
		s.inputSystem = systems.NewPieChartInputSystem(em)
	}

	s.pieEntity = entities.NewPieChartEntity(
		em,
		model,
		cfg.PieChart.X, cfg.PieChart.Y,
		cfg.PieChart.Width, cfg.PieChart.Height,
		components.PieChartColors{Disc: colors.Disc, Arc: colors.Arc, Pin: colors.Pin},
	)

	s.updateLabel(model)
	s.unsubscribeLabel = model.Subscribe(s.updateLabel)

	log.Printf("[PieChartScene] 场景初始化完成，初始值 %.2f", model.Value())
	return s, nil
}

// updateLabel 数值观察者：刷新文字（保留一位小数，去掉末尾的 0）
func (s *PieChartScene) updateLabel(model game.PercentageModel) {
	s.label = "Value: " + humanize.FtoaWithDigits(model.Value()*100, 1) + "%"
}

// Update 处理指针输入
func (s *PieChartScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制背景、饼图和数值文字
func (s *PieChartScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)
	ebitenutil.DebugPrintAt(screen, s.label, 8, 8)
}

// Close 取消订阅并销毁饼图实体
func (s *PieChartScene) Close() {
	if s.unsubscribeLabel != nil {
		s.unsubscribeLabel()
		s.unsubscribeLabel = nil
	}
	entities.DestroyPieChartEntity(s.entityManager, s.pieEntity)
	s.entityManager.RemoveMarkedEntities()
	log.Printf("[PieChartScene] 场景已关闭，剩余实体 %d", s.entityManager.EntityCount())
}

// Model 返回场景编辑的数值模型
func (s *PieChartScene) Model() game.PercentageModel {
	return s.model
}

// PieEntity 返回饼图实体ID
func (s *PieChartScene) PieEntity() ecs.EntityID {
	return s.pieEntity
}

// EntityManager 返回场景的实体管理器
func (s *PieChartScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Label 返回当前数值文字
func (s *PieChartScene) Label() string {
	return s.label
}
