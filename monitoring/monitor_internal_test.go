package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/hopsim/sim"
)

type sampleComponent struct {
	*sim.ComponentBase

	counter int
}

func (c *sampleComponent) Handle(_ sim.Event) error {
	return nil
}

func (c *sampleComponent) NotifyRecv(_ sim.VTimeInSec, _ sim.Port) {
	// Do nothing
}

func newSampleComponent() *sampleComponent {
	c := &sampleComponent{
		ComponentBase: sim.NewComponentBase("Comp"),
		counter:       3,
	}

	c.AddPort("Port1", sim.NewPort(c, 2, "Comp.Port1"))
	c.AddPort("Port2", sim.NewPort(c, 4, "Comp.Port2"))

	return c
}

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *sim.SerialEngine
		comp   *sampleComponent
		router http.Handler
	)

	get := func(url string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)
		router.ServeHTTP(rec, req)

		return rec
	}

	BeforeEach(func() {
		m = NewMonitor()
		engine = sim.NewSerialEngine()
		comp = newSampleComponent()

		m.RegisterEngine(engine)
		m.RegisterComponent(comp)
		router = m.Router()
	})

	It("should register components and port buffers", func() {
		Expect(m.components).To(HaveLen(1))
		Expect(m.buffers).To(HaveLen(2))
	})

	It("should fall back to a random port", func() {
		m.WithPortNumber(80)
		Expect(m.portNumber).To(Equal(0))

		m.WithPortNumber(12345)
		Expect(m.portNumber).To(Equal(12345))
	})

	It("should report the current time", func() {
		rec := get("/api/now")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("{\"now\":0.0000000000}"))
	})

	It("should pause and continue the engine", func() {
		get("/api/pause")
		Expect(engine.IsPaused()).To(BeTrue())

		get("/api/continue")
		Expect(engine.IsPaused()).To(BeFalse())
	})

	It("should list the components", func() {
		rec := get("/api/list_components")

		var names []string
		Expect(json.Unmarshal(rec.Body.Bytes(), &names)).To(Succeed())
		Expect(names).To(Equal([]string{"Comp"}))
	})

	It("should serialize a component", func() {
		rec := get("/api/component/Comp")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))
	})

	It("should return 404 for unknown components", func() {
		rec := get("/api/component/Unknown")

		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should list the buffers by level", func() {
		msg := &sampleMsg{}
		comp.Ports()[1].(interface{ IncomingBuffer() sim.Buffer }).
			IncomingBuffer().Push(msg)

		rec := get("/api/buffers?limit=1")

		var rsp []bufferRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp).To(Equal([]bufferRsp{
			{Buffer: "Comp.Port2.IncomingBuf", Level: 1, Cap: 4},
		}))
	})

	It("should reject a bad limit", func() {
		rec := get("/api/buffers?limit=abc")

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should list progress bars", func() {
		bar := m.CreateProgressBar("Arrivals", 10)
		bar.IncrementFinished(4)

		other := m.CreateProgressBar("Other", 1)
		m.CompleteProgressBar(other)

		rec := get("/api/progress")

		var bars []ProgressBarStatus
		Expect(json.Unmarshal(rec.Body.Bytes(), &bars)).To(Succeed())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0].Name).To(Equal("Arrivals"))
		Expect(bars[0].Total).To(Equal(uint64(10)))
		Expect(bars[0].Finished).To(Equal(uint64(4)))
	})

	It("should report the resource usage of the process", func() {
		rec := get("/api/resource")

		var rsp resourceRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.MemorySize).To(BeNumerically(">", 0))
	})

	It("should serve the web page", func() {
		rec := get("/")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("hopsim monitor"))
	})

	It("should start and stop the server", func() {
		Expect(m.URL()).To(BeEmpty())
		Expect(m.StartServer()).To(Succeed())
		Expect(m.URL()).To(HavePrefix("http://localhost:"))

		rsp, err := http.Get(m.URL() + "/api/now")
		Expect(err).NotTo(HaveOccurred())
		rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusOK))

		Expect(m.StopServer()).To(Succeed())
	})
})

type sampleMsg struct {
	sim.MsgMeta
}

func (m *sampleMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}
