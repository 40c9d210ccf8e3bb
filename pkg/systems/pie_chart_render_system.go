package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/piechart/pkg/components"
	"github.com/gonewx/piechart/pkg/ecs"
	"github.com/gonewx/piechart/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PieCanvas 饼图绘制所需的 2D 图元
// 坐标均为控件局部坐标，角度以度为单位，0 度为正东，正值为屏幕上的逆时针方向
type PieCanvas interface {
	FillCircle(cx, cy, radius int, clr color.Color)
	FillArc(cx, cy, radius, startDeg, sweepDeg int, clr color.Color)
	FillRect(x, y, width, height int, clr color.Color)
}

// ebitenCanvas 基于 ebiten/vector 的 PieCanvas 实现
type ebitenCanvas struct {
	dst *ebiten.Image
}

// NewEbitenCanvas 创建绘制到 dst 的画布
func NewEbitenCanvas(dst *ebiten.Image) PieCanvas {
	return &ebitenCanvas{dst: dst}
}

func (c *ebitenCanvas) FillCircle(cx, cy, radius int, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), clr, true)
}

func (c *ebitenCanvas) FillArc(cx, cy, radius, startDeg, sweepDeg int, clr color.Color) {
	if sweepDeg == 0 || radius <= 0 {
		return
	}
	fcx, fcy := float32(cx), float32(cy)

	// 屏幕 Y 轴向下，逆时针扫过需要取负角度
	start := -float32(startDeg) * math.Pi / 180
	end := -float32(startDeg+sweepDeg) * math.Pi / 180

	var path vector.Path
	path.MoveTo(fcx, fcy)
	path.Arc(fcx, fcy, float32(radius), start, end, vector.CounterClockwise)
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.dst, &path, &vector.FillOptions{}, op)
}

func (c *ebitenCanvas) FillRect(x, y, width, height int, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// PaintPieChart 绘制一个饼图：底盘、扇形、立体 Pin
// 半径为 0（控件过小）时不绘制任何内容
func PaintPieChart(canvas PieCanvas, pie *components.PieChartComponent, width, height int) {
	if pie == nil || pie.Model == nil {
		return
	}
	geom := utils.ComputePieGeometry(width, height, pie.Model.Value())
	if geom.Radius <= 0 {
		return
	}

	canvas.FillCircle(geom.CenterX, geom.CenterY, geom.Radius, pie.Colors.Disc)
	if deg := geom.ArcDegrees(); deg != 0 {
		canvas.FillArc(geom.CenterX, geom.CenterY, geom.Radius, 0, deg, pie.Colors.Arc)
	}

	x, y, size := geom.PinRect()
	Fill3DRect(canvas, x, y, size, size, pie.Colors.Pin, pie.State != components.PieStateDragging)
}

// Fill3DRect 绘制带立体边框的实心矩形
// raised 为 true 时左上亮、右下暗；为 false 时表面变暗且明暗边对调（按下效果）
func Fill3DRect(canvas PieCanvas, x, y, width, height int, clr color.RGBA, raised bool) {
	brighter := utils.Brighter(clr)
	darker := utils.Darker(clr)

	face := clr
	if !raised {
		face = darker
	}
	canvas.FillRect(x+1, y+1, width-2, height-2, face)

	light, shadow := brighter, darker
	if !raised {
		light, shadow = darker, brighter
	}
	canvas.FillRect(x, y, 1, height, light)              // 左
	canvas.FillRect(x+1, y, width-2, 1, light)           // 上
	canvas.FillRect(x+1, y+height-1, width-1, 1, shadow) // 下
	canvas.FillRect(x+width-1, y, 1, height-1, shadow)   // 右
}

// PieChartRenderSystem 饼图渲染系统
// 每个实体持有一张离屏图像，只在请求重绘或尺寸变化时重新绘制，每帧合成到屏幕
type PieChartRenderSystem struct {
	entityManager *ecs.EntityManager
	offscreens    map[ecs.EntityID]*ebiten.Image
	newCanvas     func(dst *ebiten.Image) PieCanvas

	// 累计重绘次数（用于调试和测试）
	paintCount int
}

// NewPieChartRenderSystem 创建饼图渲染系统
func NewPieChartRenderSystem(em *ecs.EntityManager) *PieChartRenderSystem {
	return &PieChartRenderSystem{
		entityManager: em,
		offscreens:    make(map[ecs.EntityID]*ebiten.Image),
		newCanvas:     NewEbitenCanvas,
	}
}

// Draw 重绘脏实体并把离屏图像合成到 screen
func (s *PieChartRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[*components.PieChartComponent, *components.PositionComponent, *components.SizeComponent](s.entityManager)

	alive := make(map[ecs.EntityID]bool, len(entities))
	for _, entityID := range entities {
		alive[entityID] = true

		pie, _ := ecs.GetComponent[*components.PieChartComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		size, _ := ecs.GetComponent[*components.SizeComponent](s.entityManager, entityID)

		img := s.offscreenFor(entityID, size.Width, size.Height)
		if img == nil {
			// 零尺寸控件：没有可绘制的内容
			pie.Dirty = false
			continue
		}

		if pie.Dirty {
			img.Clear()
			PaintPieChart(s.newCanvas(img), pie, size.Width, size.Height)
			pie.Dirty = false
			s.paintCount++
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(pos.X), float64(pos.Y))
		screen.DrawImage(img, op)
	}

	// 释放已销毁实体的离屏图像
	for id, img := range s.offscreens {
		if !alive[id] {
			img.Deallocate()
			delete(s.offscreens, id)
		}
	}
}

// offscreenFor 返回实体的离屏图像，尺寸变化时重新创建并标记重绘
func (s *PieChartRenderSystem) offscreenFor(entityID ecs.EntityID, width, height int) *ebiten.Image {
	img := s.offscreens[entityID]
	if img != nil {
		b := img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return img
		}
		img.Deallocate()
		delete(s.offscreens, entityID)
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	img = ebiten.NewImage(width, height)
	s.offscreens[entityID] = img
	if pie, ok := ecs.GetComponent[*components.PieChartComponent](s.entityManager, entityID); ok {
		pie.Dirty = true
	}
	return img
}

// PaintCount 返回离屏图像累计重绘次数
func (s *PieChartRenderSystem) PaintCount() int {
	return s.paintCount
}
