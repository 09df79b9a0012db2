package engineconfig_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chmodjack/pershing/engineconfig"
)

var _ = Describe("EngineConfigBuilder", func() {
	It("starts from spec.md's default weights", func() {
		cfg := engineconfig.NewEngineConfigBuilder().Build()
		Expect(cfg.Alpha).To(Equal(3.0))
		Expect(cfg.Beta).To(Equal(0.1))
		Expect(cfg.Gamma).To(Equal(1.0))
		Expect(cfg.ViolationCost).To(Equal(1000))
		Expect(cfg.GenerateRatio).To(Equal(5))
		Expect(cfg.MaxIterations).To(Equal(1000))
	})

	It("returns an independent copy per With* call", func() {
		base := engineconfig.NewEngineConfigBuilder()
		a := base.WithSeed(1).Build()
		b := base.WithSeed(2).Build()
		Expect(a.Seed).To(Equal(int64(1)))
		Expect(b.Seed).To(Equal(int64(2)))
	})

	It("chains every With* method", func() {
		cfg := engineconfig.NewEngineConfigBuilder().
			WithSeed(42).
			WithAlpha(1).
			WithBeta(2).
			WithGamma(3).
			WithViolationCost(500).
			WithMaxIterations(10).
			WithGenerateRatio(2).
			Build()
		Expect(cfg).To(Equal(engineconfig.EngineConfig{
			Seed: 42, Alpha: 1, Beta: 2, Gamma: 3,
			ViolationCost: 500, MaxIterations: 10, GenerateRatio: 2,
		}))
	})
})

var _ = Describe("LoadEngineConfigYAML", func() {
	It("applies only the overrides present in the document", func() {
		doc := "seed: 7\nviolation_cost: 2000\n"
		cfg, err := engineconfig.LoadEngineConfigYAML(strings.NewReader(doc))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Seed).To(Equal(int64(7)))
		Expect(cfg.ViolationCost).To(Equal(2000))
		Expect(cfg.Alpha).To(Equal(3.0)) // untouched default
	})

	It("rejects malformed YAML", func() {
		_, err := engineconfig.LoadEngineConfigYAML(strings.NewReader("seed: [1, 2"))
		Expect(err).To(HaveOccurred())
	})
})
