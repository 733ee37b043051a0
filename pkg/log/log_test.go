package log_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	"astralnexus/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("NewZapLogger", func() {
	It("should write JSON lines to the log file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "gateway.log")
		logger := log.NewZapLogger("astralnexus", zapcore.InfoLevel, path)

		logger.Infow("character created", "block_number", 42)
		logger.Debugw("not written")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		var entry map[string]any
		Expect(json.Unmarshal(data, &entry)).To(Succeed())
		Expect(entry["msg"]).To(Equal("character created"))
		Expect(entry["service"]).To(Equal("astralnexus"))
		Expect(entry["block_number"]).To(BeNumerically("==", 42))
		Expect(string(data)).NotTo(ContainSubstring("not written"))
	})

	DescribeTable("ParseLevel",
		func(in string, want zapcore.Level) {
			Expect(log.ParseLevel(in)).To(Equal(want))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("upper case", "WARN", zapcore.WarnLevel),
		Entry("unknown", "chatty", zapcore.InfoLevel),
		Entry("empty", "", zapcore.InfoLevel),
	)
})
