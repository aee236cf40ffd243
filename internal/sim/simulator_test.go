package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/control"
	"github.com/san-kum/orbitsim/internal/forces"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
)

var _ = Describe("Simulator", func() {
	var (
		model     *forces.Model
		simulator *sim.Simulator
		circular  orbit.State
	)

	BeforeEach(func() {
		model = forces.NewModel()

		var err error
		simulator, err = sim.New(model, integrators.NewRK4(), sim.Config{
			Dt:         10.0,
			HistoryCap: 21,
			Lookahead:  50,
		})
		Expect(err).NotTo(HaveOccurred())

		r0 := forces.EarthRadius + 408000.0
		circular = orbit.State{X: 0, Y: r0, VX: model.CircularSpeed(r0), VY: 0}
	})

	Describe("construction", func() {
		It("rejects a non-positive timestep", func() {
			_, err := sim.New(model, integrators.NewRK4(), sim.Config{Dt: 0, HistoryCap: 21, Lookahead: 50})
			Expect(err).To(MatchError(ContainSubstring("dt must be positive")))
		})

		It("rejects a non-positive history capacity", func() {
			_, err := sim.New(model, integrators.NewRK4(), sim.Config{Dt: 10, HistoryCap: 0, Lookahead: 50})
			Expect(err).To(MatchError(ContainSubstring("history capacity")))
		})

		It("rejects a non-positive lookahead", func() {
			_, err := sim.New(model, integrators.NewRK4(), sim.Config{Dt: 10, HistoryCap: 21, Lookahead: -1})
			Expect(err).To(MatchError(ContainSubstring("lookahead")))
		})
	})

	Describe("Advance", func() {
		It("advances the body state and records history", func() {
			body := simulator.NewBody(1, 1.0, circular)

			next, history, err := simulator.Advance(body, orbit.ThrustNone)
			Expect(err).NotTo(HaveOccurred())

			Expect(next).NotTo(Equal(circular))
			Expect(body.State).To(Equal(next))
			Expect(history).To(HaveLen(1))
			Expect(history[0]).To(Equal(next))
		})

		It("returns history newest-first", func() {
			body := simulator.NewBody(1, 1.0, circular)

			first, _, err := simulator.Advance(body, orbit.ThrustNone)
			Expect(err).NotTo(HaveOccurred())
			second, history, err := simulator.Advance(body, orbit.ThrustNone)
			Expect(err).NotTo(HaveOccurred())

			Expect(history).To(HaveLen(2))
			Expect(history[0]).To(Equal(second))
			Expect(history[1]).To(Equal(first))
		})

		It("fails fast on a degenerate state without touching the body", func() {
			body := simulator.NewBody(1, 1.0, orbit.State{})

			_, _, err := simulator.Advance(body, orbit.ThrustNone)
			Expect(err).To(MatchError(orbit.ErrDegenerateRadius))
			Expect(body.State).To(Equal(orbit.State{}))
			Expect(body.History.Len()).To(BeZero())
		})
	})

	Describe("Predict", func() {
		It("returns exactly the configured number of positions", func() {
			path, err := simulator.Predict(circular)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(HaveLen(50))
		})

		It("is deterministic", func() {
			a, err := simulator.Predict(circular)
			Expect(err).NotTo(HaveOccurred())
			b, err := simulator.Predict(circular)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("never mutates the body it forecasts from", func() {
			body := simulator.NewBody(1, 1.0, circular)
			advanced, _, err := simulator.Advance(body, orbit.ThrustNone)
			Expect(err).NotTo(HaveOccurred())

			historyBefore := body.History.Snapshot()

			_, err = simulator.Predict(advanced)
			Expect(err).NotTo(HaveOccurred())

			Expect(body.State).To(Equal(advanced))
			Expect(body.History.Snapshot()).To(Equal(historyBefore))
		})
	})

	Describe("Run", func() {
		It("records the full trajectory", func() {
			result, err := simulator.Run(context.Background(), circular, control.NewNone(), 100)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.StepsTaken).To(Equal(100))
			Expect(result.States).To(HaveLen(101))
			Expect(result.Commands).To(HaveLen(100))
			Expect(result.Times).To(HaveLen(101))
			Expect(result.Times[100]).To(BeNumerically("~", 1000.0, 1e-9))
		})

		It("conserves energy on an unthrusted circular orbit", func() {
			result, err := simulator.Run(context.Background(), circular, control.NewNone(), 500)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.EnergyDrift).To(BeNumerically("<", 1e-5))
		})

		It("ends faster under a retrograde burn than coasting", func() {
			burns := []control.Burn{{Start: 0, Stop: 500, Command: orbit.ThrustRetrograde}}

			coast, err := simulator.Run(context.Background(), circular, control.NewNone(), 50)
			Expect(err).NotTo(HaveOccurred())
			burned, err := simulator.Run(context.Background(), circular, control.NewSchedule(burns), 50)
			Expect(err).NotTo(HaveOccurred())

			coastFinal := coast.States[len(coast.States)-1]
			burnedFinal := burned.States[len(burned.States)-1]
			Expect(burnedFinal.Speed()).To(BeNumerically("<", coastFinal.Speed()))
		})

		It("wraps degenerate-state failures with step context", func() {
			_, err := simulator.Run(context.Background(), orbit.State{}, control.NewNone(), 10)
			Expect(err).To(MatchError(orbit.ErrDegenerateRadius))
			Expect(err).To(BeAssignableToTypeOf(&orbit.StepError{}))
		})

		It("stops when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := simulator.Run(ctx, circular, control.NewNone(), 10)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
