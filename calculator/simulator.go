package calculator

import "math"

// 升温过程仿真
// 显式欧拉法：净功率 = 恒定需求功率 - 当前温度下的管道损失
// 每步重新计算损失，需求功率保持设定值不更新（恒功率加热器）
// 精度和稳定性取决于步长与时间常数的比值，需要更高精度时调小步长

type SimInput struct {
	InitialTemperature float64 // ℃
	TargetTemperature  float64 // ℃
	RequiredW          float64 // 恒定加热功率, W
	ThermalCapacity    float64 // m·cp, J/K
	StepSize           float64 // s
	Duration           float64 // 仿真总时长, s
}

// 运行仿真，返回升温轨迹
// lossAt 按当前温度给出管道损失；stop 在两步之间做协作式取消
// 终止条件：到达总时长，或温度达到目标，先到为准
// 相同输入重复运行产生相同轨迹，无隐藏状态
func RunSimulation(in SimInput, lossAt func(temp float64) float64, stop <-chan struct{}) *Trace {
	step := in.StepSize
	if step <= 0 {
		step = 1.0
	}

	// 采样数上限 = ⌈总时长/步长⌉ + 1，封底确定最坏工作量
	maxSamples := int(math.Ceil(in.Duration/step)) + 1
	trace := NewTrace(maxSamples, step)

	temp := in.InitialTemperature
	trace.Append(temp)
	if in.ThermalCapacity <= 0 {
		return trace
	}

	elapsed := 0.0
	for elapsed < in.Duration && temp < in.TargetTemperature {
		select {
		case <-stop:
			return trace
		default:
		}

		net := in.RequiredW - lossAt(temp)
		temp += net / in.ThermalCapacity * step
		elapsed += step
		if !trace.Append(temp) {
			break
		}
	}
	return trace
}
