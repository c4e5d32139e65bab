package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
	"github.com/kubev2v/dexkeeper/internal/config"
	"github.com/kubev2v/dexkeeper/internal/metrics"
	"github.com/kubev2v/dexkeeper/internal/server"
)

var _ = Describe("Server", func() {
	var (
		srv *server.Server
		m   *metrics.Metrics
	)

	BeforeEach(func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()
		reg := prometheus.NewRegistry()
		m = metrics.New(reg)

		var err error
		srv, err = server.NewServer(cfg, reg, func(router *gin.RouterGroup) {
			router.GET("/ping", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"data": "pong"})
			})
			router.GET("/panic", func(c *gin.Context) {
				panic("boom")
			})
		})
		Expect(err).NotTo(HaveOccurred())
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("should report health with a timestamp", func() {
		w := get("/health")

		Expect(w.Code).To(Equal(http.StatusOK))
		var health v1.Health
		Expect(json.Unmarshal(w.Body.Bytes(), &health)).To(Succeed())
		Expect(health.Status).To(Equal("ok"))
		Expect(health.Timestamp.IsZero()).To(BeFalse())
	})

	It("should mount the handlers under /api/v1", func() {
		Expect(get("/api/v1/ping").Code).To(Equal(http.StatusOK))
		Expect(get("/ping").Code).To(Equal(http.StatusNotFound))
	})

	It("should expose the registered metrics", func() {
		m.ObserveBatch(20)

		w := get("/metrics")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("dexkeeper_import_records_total 20"))
	})

	It("should answer unknown routes with a JSON error", func() {
		w := get("/nowhere")

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("route not found"))
	})

	It("should recover from a panicking handler", func() {
		Expect(get("/api/v1/panic").Code).To(Equal(http.StatusInternalServerError))
	})

	It("should require a configuration", func() {
		_, err := server.NewServer(nil, nil, func(*gin.RouterGroup) {})
		Expect(err).To(HaveOccurred())
	})
})
