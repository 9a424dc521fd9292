package monitoring

import (
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/hopsim/routing"
	"github.com/sarchlab/hopsim/sim"
	"github.com/sarchlab/hopsim/topology"
)

var _ = Describe("Monitor with a running network", func() {
	It("should read node fields while the engine handles messages", func() {
		engine := sim.NewSerialEngine()
		network := routing.MakeNetworkBuilder().
			WithEngine(engine).
			WithTopology(topology.Ring(3)).
			WithSeed(42).
			WithLinkLatency(0).
			Build()

		network.AcceptHook(routing.NewArrivalLimiter(engine, 20000))

		m := NewMonitor()
		m.RegisterEngine(engine)

		for _, c := range network.Components() {
			m.RegisterComponent(c)
		}

		router := m.Router()
		network.Initialize()

		done := make(chan error)
		go func() {
			done <- engine.Run()
		}()

		field := url.PathEscape(
			`{"comp_name":"Node[0]","field_name":"numReceived"}`)

		for i := 0; i < 200; i++ {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(
				http.MethodGet, "/api/component/Node[0]", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(
				http.MethodGet, "/api/field/"+field, nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
		}

		Eventually(done, "10s").Should(Receive(BeNil()))
		Expect(network.NumReceived()).To(Equal(uint64(20000)))
	})
})
