package components

// PositionComponent 实体在屏幕上的左上角位置（像素）
type PositionComponent struct {
	X, Y int
}

// SizeComponent 实体的尺寸（像素）
// 尺寸可以在帧之间变化，依赖尺寸的几何数据不应缓存
type SizeComponent struct {
	Width, Height int
}
