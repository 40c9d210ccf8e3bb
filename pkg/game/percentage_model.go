package game

import "math"

// PercentageModel 百分比数值持有者
// 保存一个 [0,1] 范围内的数值，并在每次设置时同步通知所有观察者
//
// 注意：不要在观察者回调内部再次调用 SetValue（行为未定义）
type PercentageModel interface {
	// Value 返回当前数值（0.0 ~ 1.0）
	Value() float64
	// SetValue 限制到 0.0 ~ 1.0 后保存，并同步通知所有观察者
	SetValue(v float64)
	// Subscribe 注册观察者，返回取消订阅函数
	Subscribe(observer func(model PercentageModel)) (unsubscribe func())
}

// Percentage PercentageModel 的内存实现
type Percentage struct {
	value     float64
	nextID    int
	observers []percentageObserver
}

type percentageObserver struct {
	id int
	fn func(model PercentageModel)
}

// NewPercentage 创建百分比模型
//
// 参数：
//   - initial: 初始值，会被限制在 0.0 ~ 1.0 范围内
func NewPercentage(initial float64) *Percentage {
	return &Percentage{value: ClampPercentage(initial)}
}

// Value 返回当前数值
func (p *Percentage) Value() float64 {
	return p.value
}

// SetValue 设置数值并通知观察者
//
// 超出范围的值会被静默修正；即使数值没有变化也会通知
func (p *Percentage) SetValue(v float64) {
	p.value = ClampPercentage(v)

	// 复制一份，回调中取消订阅不影响本轮通知
	observers := make([]percentageObserver, len(p.observers))
	copy(observers, p.observers)
	for _, o := range observers {
		o.fn(p)
	}
}

// Subscribe 注册观察者
func (p *Percentage) Subscribe(observer func(model PercentageModel)) func() {
	if observer == nil {
		return func() {}
	}
	p.nextID++
	id := p.nextID
	p.observers = append(p.observers, percentageObserver{id: id, fn: observer})

	return func() {
		for i, o := range p.observers {
			if o.id == id {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount 返回当前观察者数量
func (p *Percentage) ObserverCount() int {
	return len(p.observers)
}

// ClampPercentage 将数值限制在 0.0 ~ 1.0 范围内，NaN 视为 0
func ClampPercentage(v float64) float64 {
	if math.IsNaN(v) || v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
