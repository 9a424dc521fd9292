package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

type sampleMsg struct {
	MsgMeta
}

func (m *sampleMsg) Meta() *MsgMeta {
	return &m.MsgMeta
}

var _ = Describe("Link", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
		srcComp  *MockComponent
		dstComp  *MockComponent
		srcPort  Port
		dstPort  Port
		link     *Link
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
		srcComp = NewMockComponent(mockCtrl)
		dstComp = NewMockComponent(mockCtrl)
		srcPort = NewPort(srcComp, 0, "Src.Port")
		dstPort = NewPort(dstComp, 0, "Dst.Port")

		link = NewLink("Link", engine, 2)
		link.PlugIn(srcPort)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should plug in the sending port", func() {
		Expect(srcPort.Connection()).To(BeIdenticalTo(link))
		Expect(func() { link.PlugIn(NewPort(srcComp, 0, "Other")) }).
			To(Panic())
	})

	It("should panic on negative latency", func() {
		Expect(func() { NewLink("Bad", engine, -1) }).To(Panic())
	})

	It("should deliver messages in order after the latency", func() {
		msgs := make([]*sampleMsg, 3)
		for i := range msgs {
			msgs[i] = &sampleMsg{}
			msgs[i].ID = GetIDGenerator().Generate()
			msgs[i].Src = srcPort
			msgs[i].Dst = dstPort
			Expect(srcPort.Send(msgs[i])).To(BeNil())
		}

		var received []Msg
		dstComp.EXPECT().
			NotifyRecv(VTimeInSec(2), dstPort).
			Do(func(_ VTimeInSec, p Port) {
				received = append(received, p.RetrieveIncoming())
			}).
			Times(3)

		Expect(engine.Run()).To(Succeed())

		Expect(received).To(HaveLen(3))
		for i, msg := range received {
			Expect(msg).To(BeIdenticalTo(msgs[i]))
			Expect(msg.Meta().RecvTime).To(Equal(VTimeInSec(2)))
		}

		Expect(link.NumDelivered()).To(Equal(uint64(3)))
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(2)))
	})

	It("should invoke hooks when sending and delivering", func() {
		msg := &sampleMsg{}
		msg.Src = srcPort
		msg.Dst = dstPort

		var positions []*HookPos
		link.AcceptHook(HookFunc(func(ctx HookCtx) {
			positions = append(positions, ctx.Pos)
		}))

		dstComp.EXPECT().NotifyRecv(VTimeInSec(2), dstPort)

		srcPort.Send(msg)
		Expect(engine.Run()).To(Succeed())

		Expect(positions).To(Equal(
			[]*HookPos{HookPosConnStartTrans, HookPosConnDeliver}))
	})

	It("should panic if the msg is not sent from the plugged in port", func() {
		msg := &sampleMsg{}
		msg.Src = dstPort
		msg.Dst = srcPort

		Expect(func() { link.Send(msg) }).To(Panic())
	})
})
