package calculator

// 计算任务的启停信号
// Stop 在两个仿真步之间被检查，关闭即协作式中止本次运行

type CalcHub struct {
	Stop chan struct{}
	// 计算完成推送
	CalcResult chan struct{}
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		CalcResult: make(chan struct{}, 1),
	}
}

func (ch *CalcHub) StartSignal() {
	ch.Stop = make(chan struct{})
}

func (ch *CalcHub) StopSignal() {
	if ch.Stop == nil {
		return
	}
	select {
	case <-ch.Stop:
		// 已经关闭
	default:
		close(ch.Stop)
	}
}

func (ch *CalcHub) PushSignal() {
	select {
	case ch.CalcResult <- struct{}{}:
	default:
	}
}
