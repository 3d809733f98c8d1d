package calculator

// 推送给前端的选型结果
// 采样时刻等间隔，轨迹只传起始温度所在步长和温度数组，前端按下标还原时间轴

type TracePayload struct {
	Step  float64   `json:"step"`
	Temps []float64 `json:"temps"`
}

type SizingData struct {
	IdealPowerW    float64 `json:"ideal_power_w"`    // 理想加热功率, W
	RequiredPowerW float64 `json:"required_power_w"` // 需求功率, W
	EnergyKJ       float64 `json:"energy_kj"`        // 升温热量, kJ
	PipeLossW      float64 `json:"pipe_loss_w"`      // 目标温度下的管道损失, W
	DeltaTPerPass  float64 `json:"delta_t_per_pass"` // 单程温升, ℃
	VelocityMS     float64 `json:"velocity_ms"`      // 平均流速, m/s
	Reynolds       float64 `json:"reynolds"`
	TimeConstantS  float64 `json:"time_constant_s"` // 时间常数, s

	FinalTemperature float64 `json:"final_temperature"` // 仿真结束温度, ℃
	PeakTemperature  float64 `json:"peak_temperature"`  // 仿真峰值温度, ℃

	Trace TracePayload `json:"trace"`
}

func (c *calculator) BuildData() *SizingData {
	data := &SizingData{
		IdealPowerW:    c.budget.IdealW,
		RequiredPowerW: c.budget.RequiredW,
		EnergyKJ:       c.budget.EnergyJ / 1000.0,
		PipeLossW:      c.transfer.LossW,
		VelocityMS:     c.flow.Velocity,
		Reynolds:       c.transfer.Reynolds,
		TimeConstantS:  c.tau,
	}
	_, data.DeltaTPerPass = DeltaTPerPass(c.budget.RequiredW, c.flow.FlowRate, c.fluid)

	if c.trace != nil {
		data.FinalTemperature = c.trace.Final()
		data.PeakTemperature = c.trace.Peak()
		data.Trace = TracePayload{
			Step:  c.trace.Step(),
			Temps: c.trace.Temps(),
		}
	}
	return data
}
