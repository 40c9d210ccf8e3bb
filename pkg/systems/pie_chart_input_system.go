package systems

import (
	"log"

	"github.com/gonewx/piechart/pkg/components"
	"github.com/gonewx/piechart/pkg/ecs"
	"github.com/gonewx/piechart/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEventType 指针事件类型
type PointerEventType int

const (
	// PointerMove 未按下时移动
	PointerMove PointerEventType = iota
	// PointerDown 按下
	PointerDown
	// PointerUp 释放
	PointerUp
	// PointerDrag 按下时移动
	PointerDrag
)

// String 返回事件名称（用于日志）
func (t PointerEventType) String() string {
	switch t {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// PointerEvent 指针事件，坐标为控件局部坐标
type PointerEvent struct {
	Type PointerEventType
	X, Y int
}

// PieMouseInput 饼图系统鼠标输入接口
// 用于依赖注入，支持测试时 mock
type PieMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// CursorSetter 光标形状设置接口
type CursorSetter interface {
	SetCursorShape(shape ebiten.CursorShapeType)
}

// ebitenPieMouseInput Ebitengine 默认实现（同时支持触摸）
// Update 每帧先调用 CursorPosition 再调用 IsMouseButtonPressed，按下状态随位置一起采样
type ebitenPieMouseInput struct {
	tracker utils.PointerTracker
	pressed bool
}

func (e *ebitenPieMouseInput) CursorPosition() (int, int) {
	x, y, pressed := e.tracker.Poll()
	e.pressed = pressed
	return x, y
}

func (e *ebitenPieMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return e.pressed
}

// ebitenCursorSetter Ebitengine 默认光标实现，形状未变化时不重复设置
type ebitenCursorSetter struct {
	current ebiten.CursorShapeType
	set     bool
}

func (e *ebitenCursorSetter) SetCursorShape(shape ebiten.CursorShapeType) {
	if e.set && e.current == shape {
		return
	}
	ebiten.SetCursorShape(shape)
	e.current = shape
	e.set = true
}

// PieChartInputSystem 饼图交互系统
// 负责把指针输入转换为事件，并驱动每个饼图实体的三态状态机
//
// 状态转换：
//   - Idle     + move(在 Pin 上)   -> HoverPin，手形光标
//   - HoverPin + down              -> Dragging，十字光标
//   - HoverPin + move(离开 Pin)    -> Idle，默认光标
//   - Dragging + move/drag         -> Dragging，更新数值
//   - Dragging + up(在 Pin 上)     -> HoverPin，十字光标
//   - Dragging + up(不在 Pin 上)   -> Idle，默认光标
//
// 其他组合不做任何处理
type PieChartInputSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    PieMouseInput
	cursor        CursorSetter

	// 上一帧的指针状态，用于推导事件
	lastX, lastY int
	lastPressed  bool
	hasLast      bool
}

// NewPieChartInputSystem 创建饼图交互系统
func NewPieChartInputSystem(em *ecs.EntityManager) *PieChartInputSystem {
	return NewPieChartInputSystemWithInput(em, &ebitenPieMouseInput{}, &ebitenCursorSetter{})
}

// NewPieChartInputSystemWithInput 创建带自定义输入和光标实现的交互系统（用于测试）
func NewPieChartInputSystemWithInput(em *ecs.EntityManager, input PieMouseInput, cursor CursorSetter) *PieChartInputSystem {
	return &PieChartInputSystem{
		entityManager: em,
		mouseInput:    input,
		cursor:        cursor,
	}
}

// Update 采样指针状态并分发本帧产生的事件
// 同一帧内先分发移动事件，再分发按下/释放事件
func (s *PieChartInputSystem) Update(deltaTime float64) {
	x, y := s.mouseInput.CursorPosition()
	pressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	events := make([]PointerEventType, 0, 2)
	if !s.hasLast || x != s.lastX || y != s.lastY {
		if s.lastPressed {
			events = append(events, PointerDrag)
		} else {
			events = append(events, PointerMove)
		}
	}
	if pressed && !s.lastPressed {
		events = append(events, PointerDown)
	} else if !pressed && s.lastPressed {
		events = append(events, PointerUp)
	}

	s.lastX, s.lastY = x, y
	s.lastPressed = pressed
	s.hasLast = true

	if len(events) == 0 {
		return
	}

	entities := ecs.GetEntitiesWith3[*components.PieChartComponent, *components.PositionComponent, *components.SizeComponent](s.entityManager)
	for _, entityID := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		for _, t := range events {
			s.HandlePointerEvent(entityID, PointerEvent{Type: t, X: x - pos.X, Y: y - pos.Y})
		}
	}
}

// HandlePointerEvent 把一个控件局部坐标的指针事件交给实体当前状态处理
func (s *PieChartInputSystem) HandlePointerEvent(entityID ecs.EntityID, ev PointerEvent) {
	pie, ok := ecs.GetComponent[*components.PieChartComponent](s.entityManager, entityID)
	if !ok || pie == nil || pie.Model == nil {
		return
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, entityID)
	if !ok || size == nil {
		return
	}

	// 几何数据每次重新计算：尺寸和数值都可能在帧之间变化
	geom := utils.ComputePieGeometry(size.Width, size.Height, pie.Model.Value())

	switch pie.State {
	case components.PieStateIdle:
		if ev.Type == PointerMove && geom.InPin(ev.X, ev.Y) {
			s.transition(pie, components.PieStateHoverPin, ebiten.CursorShapePointer)
		}

	case components.PieStateHoverPin:
		switch ev.Type {
		case PointerDown:
			s.transition(pie, components.PieStateDragging, ebiten.CursorShapeCrosshair)
		case PointerMove:
			if !geom.InPin(ev.X, ev.Y) {
				s.transition(pie, components.PieStateIdle, ebiten.CursorShapeDefault)
			}
		}

	case components.PieStateDragging:
		switch ev.Type {
		case PointerMove, PointerDrag:
			// 指针恰好在圆心时方向无定义，保留原值
			if v, ok := utils.PointToPercentage(size.Width, size.Height, ev.X, ev.Y); ok {
				pie.Model.SetValue(v)
			}
			pie.RequestRepaint()
		case PointerUp:
			if geom.InPin(ev.X, ev.Y) {
				s.transition(pie, components.PieStateHoverPin, ebiten.CursorShapeCrosshair)
			} else {
				s.transition(pie, components.PieStateIdle, ebiten.CursorShapeDefault)
			}
		}
	}
}

// transition 切换状态、设置光标并请求重绘
func (s *PieChartInputSystem) transition(pie *components.PieChartComponent, next components.PieState, cursor ebiten.CursorShapeType) {
	log.Printf("[PieChartInputSystem] %s -> %s", pie.State, next)
	pie.State = next
	pie.Cursor = cursor
	if s.cursor != nil {
		s.cursor.SetCursorShape(cursor)
	}
	pie.RequestRepaint()
}
