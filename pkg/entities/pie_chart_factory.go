package entities

import (
	"log"

	"github.com/gonewx/piechart/pkg/components"
	"github.com/gonewx/piechart/pkg/ecs"
	"github.com/gonewx/piechart/pkg/game"
)

// NewPieChartEntity 创建百分比饼图实体
//
// 实体注册为 model 的观察者：每次数值变化都会请求重绘
//
// 参数：
//   - em: 实体管理器
//   - model: 被编辑的数值持有者
//   - x, y: 控件左上角位置（屏幕坐标）
//   - width, height: 控件尺寸
//   - colors: 绘制颜色
//
// 返回：
//   - 饼图实体ID
func NewPieChartEntity(
	em *ecs.EntityManager,
	model game.PercentageModel,
	x, y, width, height int,
	colors components.PieChartColors,
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.SizeComponent{Width: width, Height: height})

	pie := &components.PieChartComponent{
		Model:  model,
		State:  components.PieStateIdle,
		Colors: colors,
		Dirty:  true, // 首帧需要绘制
	}
	if model != nil {
		pie.Unsubscribe = model.Subscribe(func(game.PercentageModel) {
			pie.RequestRepaint()
		})
	}
	ecs.AddComponent(em, entity, pie)

	log.Printf("[PieChartFactory] 创建饼图实体 %d: pos=(%d, %d) size=%dx%d", entity, x, y, width, height)
	return entity
}

// DestroyPieChartEntity 取消对 model 的订阅并标记实体待删除
func DestroyPieChartEntity(em *ecs.EntityManager, entity ecs.EntityID) {
	if pie, ok := ecs.GetComponent[*components.PieChartComponent](em, entity); ok && pie.Unsubscribe != nil {
		pie.Unsubscribe()
		pie.Unsubscribe = nil
	}
	em.DestroyEntity(entity)
}
