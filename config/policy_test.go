package config_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/forgelabs/wordforge/config"
)

var _ = Describe("LoadPolicyConfig", func() {
	It("loads every field from YAML", func() {
		bs := []byte(`
min_length: 12
require_upper: false
require_digit: false
ban_substrings:
- hunter
- corp
`)

		c, err := config.LoadPolicyConfig(bs)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.MinLength).To(Equal(12))
		Expect(c.RequireUpper).To(BeFalse())
		Expect(c.RequireDigit).To(BeFalse())
		Expect(c.BanSubstrings).To(Equal([]string{"hunter", "corp"}))
	})

	It("keeps defaults for fields the file omits", func() {
		c, err := config.LoadPolicyConfig([]byte("min_length: 10\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.MinLength).To(Equal(10))
		Expect(c.RequireUpper).To(BeTrue())
		Expect(c.RequireDigit).To(BeTrue())
		Expect(c.BanSubstrings).To(Equal([]string{"password", "1234"}))
	})

	It("returns an error for malformed YAML", func() {
		_, err := config.LoadPolicyConfig([]byte("min_length: [nope"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Validate", func() {
	It("accepts the defaults", func() {
		Expect(config.DefaultPolicyConfig().Validate()).To(BeEmpty())
	})

	It("rejects a non-positive minimum length", func() {
		c := config.DefaultPolicyConfig()
		c.MinLength = 0
		Expect(c.Validate()).To(HaveLen(1))
	})

	It("rejects empty banned substrings", func() {
		c := config.DefaultPolicyConfig()
		c.BanSubstrings = []string{"ok", ""}
		Expect(c.Validate()).To(HaveLen(1))
	})
})
