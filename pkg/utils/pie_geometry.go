package utils

import "math"

// PinSize 拖拽手柄（Pin）的边长（像素）
const PinSize = 8

// pinHalf Pin 中心到边界的距离
const pinHalf = PinSize / 2

// piePadding 圆盘与控件边界之间保留的总留白（像素）
const piePadding = 4

// PieGeometry 饼图几何快照
// 每次绘制和命中检测时根据控件尺寸和当前数值重新计算，不做缓存
type PieGeometry struct {
	CenterX, CenterY int     // 圆心（控件局部坐标）
	Radius           int     // 半径，尺寸过小时为 0
	Angle            float64 // 当前数值对应的弧度（0 = 正东）
	PinX, PinY       int     // Pin 中心位置
}

// ComputePieGeometry 根据控件尺寸和数值计算几何快照
//
// 参数：
//   - width, height: 控件尺寸
//   - value: 百分比数值（0.0 ~ 1.0）
func ComputePieGeometry(width, height int, value float64) PieGeometry {
	g := PieGeometry{
		CenterX: width / 2,
		CenterY: height / 2,
		Radius:  pieRadius(width, height),
		Angle:   value * 2 * math.Pi,
	}
	g.PinX, g.PinY = anglePoint(g.CenterX, g.CenterY, g.Radius, g.Angle)
	return g
}

// InPin 检测点 (x, y) 是否落在 Pin 中心 ±4 像素范围内（包含边界）
func (g PieGeometry) InPin(x, y int) bool {
	return x >= g.PinX-pinHalf && x <= g.PinX+pinHalf &&
		y >= g.PinY-pinHalf && y <= g.PinY+pinHalf
}

// PinRect 返回 Pin 方块左上角坐标和边长
func (g PieGeometry) PinRect() (x, y, size int) {
	return g.PinX - pinHalf, g.PinY - pinHalf, PinSize
}

// ArcDegrees 返回扇形扫过的整数角度（向零截断）
func (g PieGeometry) ArcDegrees() int {
	return ArcDegrees(g.Angle)
}

// ArcDegrees 弧度转整数角度（向零截断）
func ArcDegrees(angle float64) int {
	return int(angle * 180 / math.Pi)
}

// AngleToPoint 数值到屏幕坐标的正向映射（即 Pin 中心位置）
func AngleToPoint(width, height int, value float64) (x, y int) {
	g := ComputePieGeometry(width, height, value)
	return g.PinX, g.PinY
}

// PointToPercentage 屏幕坐标到数值的逆向映射
//
// 沿用按象限分支的反正切计算：dx == 0 的点与 dx > 0, dy >= 0 走同一分支，
// 因此正上方和正下方都映射为 0。结果范围为 [0, 1)，整圈折回 0。
//
// 返回：
//   - float64: 数值
//   - bool: 指针恰好位于圆心时方向无定义，返回 false，调用方应保留原值
func PointToPercentage(width, height, x, y int) (float64, bool) {
	dx := x - width/2
	dy := y - height/2
	if dx == 0 && dy == 0 {
		return 0, false
	}

	l := math.Sqrt(float64(dx*dx + dy*dy))
	lx := float64(dx) / l
	ly := float64(dy) / l

	var theta float64
	if lx > 0 {
		theta = math.Atan(ly / lx)
	} else if lx < 0 {
		theta = -math.Atan(ly / lx)
	}

	if dx > 0 && dy < 0 {
		theta = -theta
	} else if dx < 0 {
		theta += math.Pi
	} else {
		theta = 2*math.Pi - theta
	}

	p := theta / (2 * math.Pi)
	if p >= 1 {
		p -= 1
	}
	return p, true
}

// pieRadius 计算半径，尺寸不足时返回 0
func pieRadius(width, height int) int {
	r := min(width-piePadding, height-piePadding) / 2
	if r < 0 {
		return 0
	}
	return r
}

// anglePoint 计算圆周上某角度的屏幕坐标（屏幕 Y 轴向下，需取反）
func anglePoint(cx, cy, radius int, angle float64) (int, int) {
	x := cx + int(math.Round(math.Cos(angle)*float64(radius)))
	y := cy - int(math.Round(math.Sin(angle)*float64(radius)))
	return x, y
}
