package calculator

import "gonum.org/v1/gonum/floats"

// 升温轨迹采样序列
// 采样时刻等间隔，只存步长和温度数组，推送时不必传 (t, T) 对
// 容量建队列时定死（总时长/步长 + 1），结构上保证采样数不会超界

type Sample struct {
	Time        float64 `json:"t"`
	Temperature float64 `json:"temp"`
}

type Trace struct {
	step     float64
	temps    []float64
	capacity int
}

// 工厂方法
func NewTrace(capacity int, step float64) *Trace {
	if capacity < 1 {
		capacity = 1
	}
	return &Trace{
		step:     step,
		temps:    make([]float64, 0, capacity),
		capacity: capacity,
	}
}

// 在队列结尾追加一个采样，满了返回 false
func (tr *Trace) Append(temp float64) bool {
	if tr.IsFull() {
		return false
	}
	tr.temps = append(tr.temps, temp)
	return true
}

func (tr *Trace) Size() int {
	return len(tr.temps)
}

func (tr *Trace) IsFull() bool {
	return len(tr.temps) >= tr.capacity
}

func (tr *Trace) IsEmpty() bool {
	return len(tr.temps) == 0
}

func (tr *Trace) Step() float64 {
	return tr.step
}

// 获取对应下标的采样
func (tr *Trace) At(i int) Sample {
	return Sample{Time: float64(i) * tr.step, Temperature: tr.temps[i]}
}

// 正向遍历
func (tr *Trace) Traverse(f func(i int, s Sample)) {
	for i := range tr.temps {
		f(i, tr.At(i))
	}
}

func (tr *Trace) Temps() []float64 {
	out := make([]float64, len(tr.temps))
	copy(out, tr.temps)
	return out
}

func (tr *Trace) Final() float64 {
	if tr.IsEmpty() {
		return 0
	}
	return tr.temps[len(tr.temps)-1]
}

func (tr *Trace) Peak() float64 {
	if tr.IsEmpty() {
		return 0
	}
	return floats.Max(tr.temps)
}

func (tr *Trace) Min() float64 {
	if tr.IsEmpty() {
		return 0
	}
	return floats.Min(tr.temps)
}
