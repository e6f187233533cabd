package solver_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eigenwell/eigenwell/internal/quantum"
	"github.com/eigenwell/eigenwell/internal/solver"
)

var _ = Describe("Lab", func() {
	var lab *solver.Lab

	BeforeEach(func() {
		lab = solver.New()
	})

	Describe("shooting path", func() {
		It("recovers the harmonic spectrum", func() {
			opts := solver.DefaultOptions()
			opts.EMax = 3.2

			res, err := lab.Solve("harmonic", opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Method).To(Equal(solver.MethodShooting))
			Expect(res.Pairs).To(HaveLen(3))

			for i, p := range res.Pairs {
				Expect(p.Energy).To(BeNumerically("~", float64(i)+0.5, 1e-3))
				Expect(p.Status).To(Equal(quantum.Converged))
				Expect(p.Psi).To(HaveLen(res.Grid.Len()))
			}
			for _, d := range res.Deviations {
				Expect(d).To(BeNumerically("<", 0.01))
			}
		})

		It("normalizes and orients every wavefunction", func() {
			opts := solver.DefaultOptions()
			opts.EMax = 2.2

			res, err := lab.Solve("harmonic", opts)
			Expect(err).NotTo(HaveOccurred())

			h := res.Grid.Step()
			for _, p := range res.Pairs {
				sum := 0.0
				firstLobe := 0.0
				peak := 0.0
				for _, v := range p.Psi {
					sum += v * v * h
					if a := math.Abs(v); a > peak {
						peak = a
					}
				}
				for _, v := range p.Psi {
					if math.Abs(v) > 0.1*peak {
						firstLobe = v
						break
					}
				}
				Expect(sum).To(BeNumerically("~", 1.0, 1e-6))
				Expect(firstLobe).To(BeNumerically(">", 0))
			}
		})

		It("returns an empty result for a rootless window", func() {
			opts := solver.DefaultOptions()
			opts.EMin, opts.EMax = -5, -0.1

			res, err := lab.Solve("harmonic", opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Pairs).To(BeEmpty())
		})

		It("rejects an inverted window outright", func() {
			opts := solver.DefaultOptions()
			opts.EMin, opts.EMax = 5, 1

			_, err := lab.Solve("harmonic", opts)
			Expect(err).To(MatchError(quantum.ErrInvertedInterval))
		})
	})

	Describe("finite-element path", func() {
		It("recovers the square well spectrum within 0.1%", func() {
			opts := solver.DefaultOptions()
			opts.Method = solver.MethodFEM
			opts.Points = 101

			res, err := lab.Solve("square_well", opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Pairs).To(HaveLen(3))

			for i, p := range res.Pairs {
				k := float64(i + 1)
				want := k * k * math.Pi * math.Pi / 2
				Expect(p.Energy).To(BeNumerically("~", want, want*0.001))
			}
		})
	})

	Describe("Compare", func() {
		It("lines both methods up against the analytic levels", func() {
			opts := solver.DefaultOptions()
			opts.EMax = 3.2
			opts.Points = 201

			cmp, err := lab.Compare("harmonic", opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmp.Analytic).To(HaveLen(3))
			Expect(cmp.Shooting.Pairs).NotTo(BeEmpty())
			Expect(cmp.FEM.Pairs).NotTo(BeEmpty())

			Expect(cmp.Shooting.Pairs[0].Energy).To(BeNumerically("~", 0.5, 0.01))
			Expect(cmp.FEM.Pairs[0].Energy).To(BeNumerically("~", 0.5, 0.01))
		})
	})

	Describe("ResidualScan", func() {
		It("changes sign once per eigenvalue", func() {
			opts := solver.DefaultOptions()
			opts.EMin, opts.EMax = 0, 2.2
			opts.Points = 1001

			_, residuals, err := lab.ResidualScan("harmonic", opts)
			Expect(err).NotTo(HaveOccurred())

			flips := 0
			for i := 1; i < len(residuals); i++ {
				if residuals[i]*residuals[i-1] < 0 {
					flips++
				}
			}
			Expect(flips).To(Equal(2)) // roots at 0.5 and 1.5
		})
	})

	Describe("GridStudy", func() {
		It("tightens with refinement", func() {
			opts := solver.DefaultOptions()
			opts.EMax = 1.2

			rows, err := lab.GridStudy("harmonic", opts, []int{101, 1001})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[1].Deviation).To(BeNumerically("<=", rows[0].Deviation))
		})
	})

	Describe("registry lookups", func() {
		It("rejects unknown names", func() {
			_, err := lab.Solve("hydrogen", solver.DefaultOptions())
			Expect(err).To(MatchError(quantum.ErrUnknownPotential))

			opts := solver.DefaultOptions()
			opts.Stepper = "leapfrog"
			_, err = lab.Solve("harmonic", opts)
			Expect(err).To(MatchError(quantum.ErrUnknownStepper))

			opts = solver.DefaultOptions()
			opts.Method = "montecarlo"
			_, err = lab.Solve("harmonic", opts)
			Expect(err).To(MatchError(quantum.ErrUnknownMethod))
		})

		It("lists everything sorted", func() {
			reg := lab.Registry()
			Expect(reg.ListPotentials()).To(ContainElements("harmonic", "square_well", "morse"))
			Expect(reg.ListSteppers()).To(Equal([]string{"euler", "numerov", "rk4"}))
		})
	})
})
