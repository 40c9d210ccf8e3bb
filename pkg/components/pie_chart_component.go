package components

import (
	"image/color"

	"github.com/gonewx/piechart/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// PieState 饼图控件的交互状态
type PieState int

const (
	// PieStateIdle 初始状态，指针不在 Pin 上
	PieStateIdle PieState = iota
	// PieStateHoverPin 指针悬停在 Pin 上
	PieStateHoverPin
	// PieStateDragging 正在拖拽 Pin 修改数值
	PieStateDragging
)

// String 返回状态名称（用于日志）
func (s PieState) String() string {
	switch s {
	case PieStateIdle:
		return "Idle"
	case PieStateHoverPin:
		return "HoverPin"
	case PieStateDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// PieChartColors 饼图三种绘制颜色
type PieChartColors struct {
	Disc color.RGBA // 底盘
	Arc  color.RGBA // 扇形
	Pin  color.RGBA // 拖拽手柄
}

// DefaultPieChartColors 默认配色：深灰底盘、黄色扇形、浅灰手柄
func DefaultPieChartColors() PieChartColors {
	return PieChartColors{
		Disc: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Arc:  color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
		Pin:  color.RGBA{R: 0xb6, G: 0xb6, B: 0xb6, A: 0xff},
	}
}

// PieChartComponent 百分比饼图组件
// 既是 Model 的视图（绘制数值），也是控制器（拖拽修改数值）
type PieChartComponent struct {
	// 数值持有者，只有拖拽状态会修改它
	Model game.PercentageModel

	// 当前交互状态
	State PieState

	// 最近一次设置的光标形状
	Cursor ebiten.CursorShapeType

	Colors PieChartColors

	// 重绘请求
	Dirty           bool // 下一帧需要重绘离屏图像
	RepaintRequests int  // 累计重绘请求次数

	// 取消对 Model 的订阅，实体销毁时调用
	Unsubscribe func()
}

// RequestRepaint 请求重绘
func (p *PieChartComponent) RequestRepaint() {
	p.Dirty = true
	p.RepaintRequests++
}
