package mutate_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/forgelabs/wordforge/mutate"
)

var _ = Describe("CombineWithPatterns", func() {
	It("emits suffix, prefix, and separator forms and keeps the word", func() {
		combined := mutate.CombineWithPatterns([]string{"x"}, []string{"123"})
		Expect(combined).To(Equal([]string{"123x", "x", "x123", "x_123"}))
	})

	It("deduplicates across words and patterns", func() {
		combined := mutate.CombineWithPatterns([]string{"a", "a"}, []string{"1", "1"})
		Expect(combined).To(Equal([]string{"1a", "a", "a1", "a_1"}))
	})

	It("returns an empty set for no words", func() {
		Expect(mutate.CombineWithPatterns(nil, []string{"123"})).To(BeEmpty())
	})
})

var _ = Describe("SeedCommonPasswords", func() {
	It("concatenates every casing with every weak fragment in both orders", func() {
		seeded := mutate.SeedCommonPasswords("ab")
		Expect(seeded).To(ContainElements(
			"ab123", "123ab",
			"ABpassword", "passwordAB",
			"Abqwerty", "letmeinAb",
		))
	})

	It("does not emit separator forms", func() {
		Expect(mutate.SeedCommonPasswords("ab")).NotTo(ContainElement("ab_123"))
	})

	It("is sorted and deduplicated", func() {
		seeded := mutate.SeedCommonPasswords("ab")
		Expect(len(seeded)).To(Equal(42)) // 3 casings x 7 fragments x 2 orders
		for i := 1; i < len(seeded); i++ {
			Expect(seeded[i-1] < seeded[i]).To(BeTrue())
		}
	})
})
