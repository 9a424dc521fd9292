package sim

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

type endRecorder struct {
	calledAt []VTimeInSec
}

func (r *endRecorder) Handle(now VTimeInSec) {
	r.calledAt = append(r.calledAt, now)
}

func mockEvent(
	ctrl *gomock.Controller,
	t VTimeInSec,
	handler Handler,
) *MockEvent {
	evt := NewMockEvent(ctrl)
	evt.EXPECT().Time().Return(t).AnyTimes()
	evt.EXPECT().Handler().Return(handler).AnyTimes()

	return evt
}

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule events", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		evt1 := mockEvent(mockCtrl, 4.0, handler1)
		evt2 := mockEvent(mockCtrl, 2.0, handler2)
		evt3 := mockEvent(mockCtrl, 3.0, handler1)
		evt4 := mockEvent(mockCtrl, 5.0, handler1)

		handleEvt2 := handler2.EXPECT().Handle(evt2).Do(func(Event) {
			engine.Schedule(evt3)
			engine.Schedule(evt4)
		})
		handleEvt3 := handler1.EXPECT().Handle(evt3).After(handleEvt2)
		handleEvt1 := handler1.EXPECT().Handle(evt1).After(handleEvt3)
		handler1.EXPECT().Handle(evt4).After(handleEvt1)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		Expect(engine.Run()).To(Succeed())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(5.0)))
	})

	It("should handle same-time events in the order they are scheduled", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := mockEvent(mockCtrl, 1.0, handler)
		evt2 := mockEvent(mockCtrl, 1.0, handler)
		evt3 := mockEvent(mockCtrl, 1.0, handler)

		gomock.InOrder(
			handler.EXPECT().Handle(evt1),
			handler.EXPECT().Handle(evt2),
			handler.EXPECT().Handle(evt3),
		)

		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		Expect(engine.Run()).To(Succeed())
	})

	It("should return the error of a failing handler", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := mockEvent(mockCtrl, 1.0, handler)
		evt2 := mockEvent(mockCtrl, 2.0, handler)
		errFailed := errors.New("failed")

		handler.EXPECT().Handle(evt1).Return(errFailed)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		Expect(engine.Run()).To(MatchError(errFailed))
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(1.0)))
	})

	It("should panic when scheduling an event in the past", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := mockEvent(mockCtrl, 2.0, handler)
		evt2 := mockEvent(mockCtrl, 1.0, handler)

		handler.EXPECT().Handle(evt1).Do(func(Event) {
			Expect(func() { engine.Schedule(evt2) }).To(Panic())
		})

		engine.Schedule(evt1)
		Expect(engine.Run()).To(Succeed())
	})

	It("should stop when a handler stops it", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := mockEvent(mockCtrl, 1.0, handler)
		evt2 := mockEvent(mockCtrl, 2.0, handler)

		handler.EXPECT().Handle(evt1).Do(func(Event) { engine.Stop() })

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		Expect(engine.Run()).To(Succeed())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(1.0)))
	})

	It("should not handle events after the time limit", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := mockEvent(mockCtrl, 1.0, handler)
		evt2 := mockEvent(mockCtrl, 3.0, handler)
		evt3 := mockEvent(mockCtrl, 4.0, handler)

		handler.EXPECT().Handle(evt1)
		handler.EXPECT().Handle(evt2)

		engine.SetTimeLimit(3.5)
		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		Expect(engine.Run()).To(Succeed())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(3.5)))
	})

	It("should panic on a negative time limit", func() {
		Expect(func() { engine.SetTimeLimit(-1) }).To(Panic())
	})

	It("should invoke hooks around every event", func() {
		handler := NewMockHandler(mockCtrl)
		evt := mockEvent(mockCtrl, 1.0, handler)
		handler.EXPECT().Handle(evt)

		var positions []*HookPos
		engine.AcceptHook(HookFunc(func(ctx HookCtx) {
			Expect(ctx.Item).To(BeIdenticalTo(evt))
			Expect(ctx.Now).To(Equal(VTimeInSec(1.0)))
			positions = append(positions, ctx.Pos)
		}))

		engine.Schedule(evt)
		Expect(engine.Run()).To(Succeed())

		Expect(positions).To(Equal(
			[]*HookPos{HookPosBeforeEvent, HookPosAfterEvent}))
	})

	It("should pause and continue", func() {
		Expect(engine.IsPaused()).To(BeFalse())

		engine.Pause()
		engine.Pause()
		Expect(engine.IsPaused()).To(BeTrue())

		engine.Continue()
		Expect(engine.IsPaused()).To(BeFalse())
	})

	It("should call the simulation end handlers when finished", func() {
		handler := NewMockHandler(mockCtrl)
		evt := mockEvent(mockCtrl, 2.0, handler)
		handler.EXPECT().Handle(evt)

		recorder := &endRecorder{}
		engine.RegisterSimulationEndHandler(recorder)

		engine.Schedule(evt)
		Expect(engine.Run()).To(Succeed())
		engine.Finished()

		Expect(recorder.calledAt).To(Equal([]VTimeInSec{2.0}))
	})
})
