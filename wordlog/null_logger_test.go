package wordlog_test

import (
	"errors"

	"code.cloudfoundry.org/lager"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/forgelabs/wordforge/wordlog"
)

var _ = Describe("NewNullLogger", func() {
	It("accepts logs at every level without output", func() {
		logger := wordlog.NewNullLogger()

		logger.Debug("ignored")
		logger.Info("ignored", lager.Data{"k": "v"})
		logger.Error("ignored", errors.New("boom"))
	})

	It("supports sessions like any lager logger", func() {
		session := wordlog.NewNullLogger().Session("task")
		session.Debug("ignored")
		Expect(session.SessionName()).To(ContainSubstring("task"))
	})
})
