package server_test

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"astralnexus/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	It("should serve until shut down", func() {
		port := freePort()
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "pong")
		}), port)

		errChan := srv.Run()

		Eventually(func() (string, error) {
			resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%s/", port))
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).WithTimeout(5 * time.Second).WithPolling(50 * time.Millisecond).Should(Equal("pong"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should report a port that is already taken", func() {
		l, err := net.Listen("tcp", ":0")
		Expect(err).NotTo(HaveOccurred())
		defer l.Close()

		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), strconv.Itoa(l.Addr().(*net.TCPAddr).Port))
		Eventually(srv.Run()).Should(Receive(HaveOccurred()))
	})
})
