package event

// Handler receives classified events. Implementations are driven by
// Dispatch; they are not responsible for classification.
type Handler interface {
	OnStart(name string, level int)
	OnEnd(name string, level int)
	OnContent(text string, level int)
}

// Dispatch routes one event to the matching Handler method.
func Dispatch(h Handler, ev Event) {
	switch ev.Type {
	case Start:
		h.OnStart(ev.Payload, ev.Level)
	case End:
		h.OnEnd(ev.Payload, ev.Level)
	case Content:
		h.OnContent(ev.Payload, ev.Level)
	}
}

// DispatchAll routes a batch of events in order.
func DispatchAll(h Handler, evs []Event) {
	for _, ev := range evs {
		Dispatch(h, ev)
	}
}

// HandlerFuncs adapts callbacks to the Handler interface. Nil callbacks
// are skipped.
type HandlerFuncs struct {
	StartFunc   func(name string, level int)
	EndFunc     func(name string, level int)
	ContentFunc func(text string, level int)
}

func (h HandlerFuncs) OnStart(name string, level int) {
	if h.StartFunc != nil {
		h.StartFunc(name, level)
	}
}

func (h HandlerFuncs) OnEnd(name string, level int) {
	if h.EndFunc != nil {
		h.EndFunc(name, level)
	}
}

func (h HandlerFuncs) OnContent(text string, level int) {
	if h.ContentFunc != nil {
		h.ContentFunc(text, level)
	}
}
