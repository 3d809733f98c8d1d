package calculator

import (
	"math"

	"jr/model"
)

// 几何与流动参数推导
// 所有非法输入退化为零值哨兵，由下游公式消化，这里不抛错误

// 由内径和壁厚推导半径
func NewGeometry(innerDiameter, wallThickness, length float64) model.Geometry {
	innerRadius := innerDiameter / 2.0
	return model.Geometry{
		InnerRadius: innerRadius,
		OuterRadius: innerRadius + wallThickness,
		Length:      length,
	}
}

// L/min 换算为 m³/s
func FlowLPMToM3S(flowLPM float64) float64 {
	return flowLPM / 1000.0 / 60.0
}

// 平均流速 = 体积流量 / 横截面积
// 面积为零或负时流速取零
func NewFlowState(flowLPM float64, g model.Geometry) model.FlowState {
	flow := FlowLPMToM3S(flowLPM)
	state := model.FlowState{FlowRate: flow}

	area := math.Pi * g.InnerRadius * g.InnerRadius
	if area <= 0 || flow <= 0 {
		return state
	}
	state.Velocity = flow / area
	return state
}
