package model

// 计算层使用的纯数值记录，每次求值整体重建，不做缓存

// 流体物性参数
type Fluid struct {
	Name                string  `json:"name"`
	Density             float64 `json:"density"`              // 密度, kg/m³
	SpecificHeat        float64 `json:"specific_heat"`        // 比热容, J/(kg·K)
	ThermalConductivity float64 `json:"thermal_conductivity"` // 导热系数, W/(m·K)
	Viscosity           float64 `json:"viscosity"`            // 动力粘度, Pa·s
}

// 管材物性参数
type Material struct {
	Name                string  `json:"name"`
	ThermalConductivity float64 `json:"thermal_conductivity"` // 导热系数, W/(m·K)
}

// 管段几何尺寸，单位 m
// 约定 OuterRadius > InnerRadius > 0，不满足时径向导热热阻按无穷大处理
type Geometry struct {
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	Length      float64 `json:"length"`
}

// 流动状态
// Velocity 由流量和横截面积推导，面积为零时取零，不做除法
type FlowState struct {
	FlowRate float64 `json:"flow_rate"` // 体积流量, m³/s
	Velocity float64 `json:"velocity"`  // 平均流速, m/s
}

// 工艺参数，由前端表单下发
type Env struct {
	FluidName          string  `json:"fluid_name"`
	MaterialName       string  `json:"material_name"`
	InnerDiameter      float64 `json:"inner_diameter"`      // 管道内径, m
	WallThickness      float64 `json:"wall_thickness"`      // 壁厚, m
	PipeLength         float64 `json:"pipe_length"`         // 管段长度, m
	VolumeLiters       float64 `json:"volume_liters"`       // 加热液体体积, L
	InitialTemperature float64 `json:"initial_temperature"` // 初始温度, ℃
	TargetTemperature  float64 `json:"target_temperature"`  // 目标温度, ℃
	TargetDuration     float64 `json:"target_duration"`     // 升温时长, s
	FlowRateLPM        float64 `json:"flow_rate_lpm"`       // 流量, L/min
	AmbientTemperature float64 `json:"ambient_temperature"` // 环境温度, ℃
	HOutside           float64 `json:"h_outside"`           // 外侧对流换热系数, W/(m²·K)，0 表示使用默认值
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
