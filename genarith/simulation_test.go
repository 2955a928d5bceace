package genarith

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func searchParams(seed int64) *SimulationParams {
	params := DefaultSimulationParams()
	params.TargetValue = 10
	params.ChromosomeSize = 6
	params.MaxGenerations = 400
	params.Seed = seed
	return params
}

var _ = Describe("Simulation", func() {
	It("rejects an odd population before running", func() {
		params := DefaultSimulationParams()
		params.PopulationSize = 9

		sim, err := NewSimulation(params)
		Expect(sim).To(BeNil())

		var configErr *ConfigError
		Expect(errors.As(err, &configErr)).To(BeTrue())
		Expect(configErr.Field).To(Equal("population_size"))
	})

	It("starts out initializing", func() {
		sim, err := NewSimulation(searchParams(1))
		Expect(err).ToNot(HaveOccurred())
		Expect(sim.State()).To(Equal(StateInitializing))
		Expect(sim.Population()).To(BeEmpty())
		Expect(sim.Generation()).To(Equal(1))
	})

	It("keeps the population shape and alphabet across generations", func() {
		params := searchParams(2)
		params.TargetValue = 1000000 // out of reach of 6 genes
		params.MaxGenerations = 50
		params.MutationRate = 0.3
		params.CrossoverRate = 0.9

		sim, err := NewSimulation(params)
		Expect(err).ToNot(HaveOccurred())
		sim.Init()

		for !sim.State().Terminated() {
			Expect(sim.Population()).To(HaveLen(params.PopulationSize))
			for _, c := range sim.Population() {
				Expect(c.Len()).To(Equal(params.ChromosomeSize))
				for _, gene := range c.Genes() {
					Expect(gene.IsValid()).To(BeTrue())
				}
			}
			sim.Step()
		}

		Expect(sim.State()).To(Equal(StateExhausted))
		Expect(sim.Generation()).To(Equal(50))
		Expect(sim.Solution()).To(BeNil())
	})

	It("stops at the cap without evaluating when the cap is 1", func() {
		params := searchParams(3)
		params.MaxGenerations = 1

		sim, err := NewSimulation(params)
		Expect(err).ToNot(HaveOccurred())

		result := sim.Run()
		Expect(result.State).To(Equal(StateExhausted))
		Expect(result.Found()).To(BeFalse())
		Expect(result.Generations).To(Equal(1))
	})

	It("takes the first exact match in population order", func() {
		sim, err := NewSimulation(searchParams(4))
		Expect(err).ToNot(HaveOccurred())
		sim.Init()

		sim.population[3] = MustEncodeChromosome("*9+1*1")
		sim.population[5] = MustEncodeChromosome("5*2+00")
		for _, i := range []int{0, 1, 2} {
			sim.population[i] = MustEncodeChromosome("111111")
		}

		Expect(sim.Step()).To(Equal(StateFound))
		Expect(sim.Solution()).To(BeIdenticalTo(sim.population[3]))
		Expect(sim.Generation()).To(Equal(1))

		// Terminal states are sticky
		Expect(sim.Step()).To(Equal(StateFound))
		Expect(sim.Generation()).To(Equal(1))
	})

	It("reports a solution repaired during evaluation as it was evaluated", func() {
		params := searchParams(8)
		params.ChromosomeSize = 7
		sim, err := NewSimulation(params)
		Expect(err).ToNot(HaveOccurred())
		sim.Init()

		for i := range sim.population {
			sim.population[i] = MustEncodeChromosome("1111111")
		}
		sim.population[4] = MustEncodeChromosome("9*1/0+1")

		Expect(sim.Step()).To(Equal(StateFound))

		result := sim.Result()
		Expect(result.Solution.String()).To(Equal("9*1+0+1"))
		Expect(result.Solution.Expression()).To(Equal("9 * 1 + 0 + 1"))
		Expect(result.String()).To(Equal("Found a solution in generation 1 (target 10): 9 * 1 + 0 + 1"))

		verified, err := VerifyExpression(result.Solution)
		Expect(err).ToNot(HaveOccurred())
		Expect(verified).To(Equal(int64(10)))
	})

	It("finds a solution for 10 with most seeds", func() {
		found := 0
		for seed := int64(1); seed <= 50; seed++ {
			sim, err := NewSimulation(searchParams(seed))
			Expect(err).ToNot(HaveOccurred())

			result := sim.Run()
			if !result.Found() {
				Expect(result.State).To(Equal(StateExhausted))
				continue
			}
			found++

			Expect(result.State).To(Equal(StateFound))
			Expect(result.Generations).To(BeNumerically("<", 400))
			Expect(Decode(result.Solution.Genes()).Result).To(Equal(int64(10)))
			Expect(result.Solution.Result()).To(Equal(int64(10)))

			verified, err := VerifyExpression(result.Solution)
			Expect(err).ToNot(HaveOccurred())
			Expect(verified).To(Equal(int64(10)))

			// The rendered expression reads the way it was evaluated
			rendered := result.Solution.Expression()
			Expect(rendered).ToNot(ContainSubstring("/ 0"))
			Expect(Decode(MustEncodeChromosome(rendered).Genes()).Result).To(Equal(int64(10)), "seed %d: %s", seed, rendered)
		}

		Expect(found).To(BeNumerically(">=", 40))
	})

	It("reproduces a run from its seed, with or without a decode cache", func() {
		run := func(cacheSize int) *Result {
			params := searchParams(99)
			params.DecodeCacheSize = cacheSize
			sim, err := NewSimulation(params)
			Expect(err).ToNot(HaveOccurred())
			return sim.Run()
		}

		first, second, cached := run(0), run(0), run(64)
		Expect(first.RunID).ToNot(Equal(second.RunID))

		for _, other := range []*Result{second, cached} {
			Expect(other.State).To(Equal(first.State))
			Expect(other.Generations).To(Equal(first.Generations))
			if first.Found() {
				Expect(other.Solution.String()).To(Equal(first.Solution.String()))
			}
		}
	})

	It("writes progress every ReportInterval generations", func() {
		params := searchParams(6)
		params.TargetValue = 1000000
		params.MaxGenerations = 7
		params.ReportInterval = 2

		sim, err := NewSimulation(params)
		Expect(err).ToNot(HaveOccurred())

		var progress bytes.Buffer
		sim.SetProgressOutput(&progress)
		result := sim.Run()

		Expect(result.State).To(Equal(StateExhausted))
		Expect(progress.String()).To(ContainSubstring("Generation 2 "))
		Expect(progress.String()).To(ContainSubstring("Generation 4 "))
		Expect(progress.String()).To(ContainSubstring("Generation 6 "))
		Expect(progress.String()).ToNot(ContainSubstring("Generation 1 "))
		Expect(progress.String()).To(ContainSubstring("distinct"))
	})
})

var _ = Describe("Result", func() {
	It("describes a solution", func() {
		result := &Result{Target: 10, Generations: 12, State: StateFound, Solution: MustEncodeChromosome("*6+4")}
		Expect(result.String()).To(Equal("Found a solution in generation 12 (target 10): 6 + 4"))
	})

	It("describes an exhausted run", func() {
		result := &Result{Target: 154, Generations: 400, State: StateExhausted}
		Expect(result.Found()).To(BeFalse())
		Expect(result.String()).To(Equal("Found no solution in 400 generations (target 154)"))
	})
})
