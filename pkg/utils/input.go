// Package utils 提供饼图控件使用的几何、颜色与输入工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerTracker 合并触摸与鼠标的指针状态
//
// 手指抬起的那一帧已经没有触摸点，而移动端的 ebiten.CursorPosition() 恒为 (0, 0)。
// 触摸结束后，只要鼠标位置没有变化、鼠标也没有按下，就继续报告最后一个触摸位置。
type PointerTracker struct {
	x, y      int
	fromTouch bool

	// 触摸期间最后一次看到的鼠标位置
	mouseX, mouseY int
}

// Poll 读取本帧的触摸与鼠标输入
// 优先使用第一个触摸点
func (p *PointerTracker) Poll() (x, y int, pressed bool) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	touching := len(touchIDs) > 0
	var tx, ty int
	if touching {
		tx, ty = ebiten.TouchPosition(touchIDs[0])
	}
	mx, my := ebiten.CursorPosition()
	return p.Sample(touching, tx, ty, mx, my, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Sample 根据一帧的原始输入计算指针位置和按下状态
//
// 参数：
//   - touching: 是否有触摸点
//   - tx, ty: 第一个触摸点位置（touching 为 false 时忽略）
//   - mx, my: 鼠标位置
//   - mousePressed: 鼠标左键是否按下
func (p *PointerTracker) Sample(touching bool, tx, ty, mx, my int, mousePressed bool) (x, y int, pressed bool) {
	if touching {
		p.x, p.y = tx, ty
		p.fromTouch = true
		p.mouseX, p.mouseY = mx, my
		return tx, ty, true
	}

	if p.fromTouch && !mousePressed && mx == p.mouseX && my == p.mouseY {
		return p.x, p.y, false
	}

	p.fromTouch = false
	p.x, p.y = mx, my
	return mx, my, mousePressed
}
