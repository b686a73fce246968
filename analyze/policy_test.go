package analyze_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/forgelabs/wordforge/analyze"
)

var _ = Describe("Check", func() {
	var policy analyze.Policy

	BeforeEach(func() {
		policy = analyze.DefaultPolicy()
	})

	It("passes a password that satisfies every rule", func() {
		passed, failures := analyze.Check("Abcdefg1", policy)
		Expect(passed).To(BeTrue())
		Expect(failures).To(BeEmpty())
	})

	It("flags a missing uppercase letter without flagging length at the minimum", func() {
		passed, failures := analyze.Check("abcdefg1", policy)
		Expect(passed).To(BeFalse())
		Expect(failures).To(Equal([]string{"missing_upper"}))
	})

	It("runs every check rather than stopping at the first failure", func() {
		passed, failures := analyze.Check("abc", policy)
		Expect(passed).To(BeFalse())
		Expect(failures).To(Equal([]string{"too_short", "missing_upper", "missing_digit"}))
	})

	It("measures length in characters and cased classes in ASCII only", func() {
		// 7 characters but 13 bytes; Ä is not an ASCII uppercase letter
		passed, failures := analyze.Check("Ääööüü1", policy)
		Expect(passed).To(BeFalse())
		Expect(failures).To(Equal([]string{"too_short", "missing_upper"}))
	})

	It("appends one failure per banned substring, case-insensitively", func() {
		passed, failures := analyze.Check("PASSWORD1234x", policy)
		Expect(passed).To(BeFalse())
		Expect(failures).To(Equal([]string{"contains_password", "contains_1234"}))
	})

	Context("with a custom policy", func() {
		BeforeEach(func() {
			policy = analyze.Policy{
				MinLength:     4,
				RequireUpper:  false,
				RequireDigit:  false,
				BanSubstrings: []string{"corp"},
			}
		})

		It("skips rules the policy does not require", func() {
			passed, failures := analyze.Check("abcd", policy)
			Expect(passed).To(BeTrue())
			Expect(failures).To(BeEmpty())
		})

		It("applies the custom banned substrings", func() {
			_, failures := analyze.Check("mycorpname", policy)
			Expect(failures).To(Equal([]string{"contains_corp"}))
		})
	})
})
