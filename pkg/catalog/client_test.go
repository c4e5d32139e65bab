package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kubev2v/dexkeeper/internal/metrics"
	"github.com/kubev2v/dexkeeper/pkg/catalog"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

const bulbasaur = `{
	"id": 1,
	"name": "bulbasaur",
	"height": 7,
	"weight": 69,
	"base_experience": 64,
	"sprites": {
		"front_default": "https://img.example/1.png",
		"other": {"official-artwork": {"front_default": "https://img.example/art/1.png"}}
	},
	"types": [
		{"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}},
		{"slot": 2, "type": {"name": "poison", "url": "https://pokeapi.co/api/v2/type/4/"}}
	],
	"abilities": [
		{"ability": {"name": "overgrow"}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "chlorophyll"}, "is_hidden": true, "slot": 3}
	],
	"stats": [
		{"base_stat": 45, "effort": 0, "stat": {"name": "hp"}},
		{"base_stat": 49, "effort": 0, "stat": {"name": "attack"}}
	]
}`

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		server *httptest.Server
		mux    *http.ServeMux
	)

	BeforeEach(func() {
		ctx = context.Background()
		mux = http.NewServeMux()
		server = httptest.NewServer(mux)
	})

	AfterEach(func() {
		server.Close()
	})

	Context("FetchPage", func() {
		// Given a catalog serving a page of two entries
		// When we fetch the page with limit and offset
		// Then both entries should be returned and the query should carry the bounds
		It("should return the summaries of the page", func() {
			// Arrange
			var query string
			mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.RawQuery
				fmt.Fprintf(w, `{"count": 1302, "next": null, "results": [
					{"name": "bulbasaur", "url": "%[1]s/pokemon/1/"},
					{"name": "ivysaur", "url": "%[1]s/pokemon/2/"}
				]}`, server.URL)
			})
			client, err := catalog.NewClient(server.URL)
			Expect(err).NotTo(HaveOccurred())

			// Act
			page, err := client.FetchPage(ctx, 151, 0)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal("limit=151&offset=0"))
			Expect(page).To(HaveLen(2))
			Expect(page[0]).To(Equal(catalog.Summary{Name: "bulbasaur", DetailRef: server.URL + "/pokemon/1/"}))
		})

		// Given a catalog answering 503
		// When we fetch the page
		// Then a transient RemoteUnavailable error should carry the status code
		It("should return RemoteUnavailable on a non success status", func() {
			// Arrange
			mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusServiceUnavailable)
			})
			reg := prometheus.NewRegistry()
			m := metrics.New(reg)
			client, err := catalog.NewClient(server.URL, catalog.WithMetrics(m))
			Expect(err).NotTo(HaveOccurred())

			// Act
			_, err = client.FetchPage(ctx, 151, 0)

			// Assert
			var unavailable *srvErrors.RemoteUnavailableError
			Expect(err).To(BeAssignableToTypeOf(unavailable))
			unavailable = err.(*srvErrors.RemoteUnavailableError)
			Expect(unavailable.StatusCode).To(Equal(http.StatusServiceUnavailable))
			Expect(unavailable.Transient()).To(BeTrue())
			Expect(testutil.ToFloat64(m.RemoteRequests.WithLabelValues("page", "503"))).To(Equal(1.0))
		})

		It("should use the configured resource", func() {
			mux.HandleFunc("/creature", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"results": []}`)
			})
			client, err := catalog.NewClient(server.URL, catalog.WithResource("/creature/"))
			Expect(err).NotTo(HaveOccurred())

			page, err := client.FetchPage(ctx, 10, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(BeEmpty())
		})
	})

	Context("FetchDetail", func() {
		It("should decode the detail record", func() {
			mux.HandleFunc("/pokemon/1/", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, bulbasaur)
			})
			client, err := catalog.NewClient(server.URL)
			Expect(err).NotTo(HaveOccurred())

			raw, err := client.FetchDetail(ctx, server.URL+"/pokemon/1/")

			Expect(err).NotTo(HaveOccurred())
			Expect(raw.ID).To(Equal(1))
			Expect(raw.Types).To(HaveLen(2))
			Expect(*raw.Sprites.Other.OfficialArtwork.FrontDefault).To(Equal("https://img.example/art/1.png"))
		})

		It("should resolve a relative reference against the base url", func() {
			mux.HandleFunc("/api/v2/pokemon/1/", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, bulbasaur)
			})
			client, err := catalog.NewClient(server.URL + "/api/v2")
			Expect(err).NotTo(HaveOccurred())

			raw, err := client.FetchDetail(ctx, "pokemon/1/")

			Expect(err).NotTo(HaveOccurred())
			Expect(raw.Name).To(Equal("bulbasaur"))
		})

		It("should not treat a 404 as transient", func() {
			client, err := catalog.NewClient(server.URL)
			Expect(err).NotTo(HaveOccurred())

			_, err = client.FetchDetail(ctx, server.URL+"/pokemon/9999/")

			var unavailable *srvErrors.RemoteUnavailableError
			Expect(err).To(BeAssignableToTypeOf(unavailable))
			Expect(err.(*srvErrors.RemoteUnavailableError).Transient()).To(BeFalse())
		})

		// Given a catalog slower than the client timeout
		// When we fetch a detail
		// Then a RemoteUnreachable error should be returned
		It("should return RemoteUnreachable on a timeout", func() {
			// Arrange
			release := make(chan struct{})
			defer close(release)
			mux.HandleFunc("/pokemon/1/", func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-release:
				case <-r.Context().Done():
				}
			})
			client, err := catalog.NewClient(server.URL, catalog.WithTimeout(50*time.Millisecond))
			Expect(err).NotTo(HaveOccurred())

			// Act
			_, err = client.FetchDetail(ctx, server.URL+"/pokemon/1/")

			// Assert
			Expect(srvErrors.IsRemoteUnreachableError(err)).To(BeTrue())
		})

		It("should return RemoteUnreachable when nothing listens", func() {
			client, err := catalog.NewClient("http://127.0.0.1:1")
			Expect(err).NotTo(HaveOccurred())

			_, err = client.FetchDetail(ctx, "pokemon/1/")

			Expect(srvErrors.IsRemoteUnreachableError(err)).To(BeTrue())
		})
	})

	Context("rate limiting", func() {
		It("should space requests beyond the burst", func() {
			var calls atomic.Int32
			mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				fmt.Fprint(w, `{"results": []}`)
			})
			client, err := catalog.NewClient(server.URL, catalog.WithRateLimit(10, 1))
			Expect(err).NotTo(HaveOccurred())

			start := time.Now()
			for range 3 {
				_, err := client.FetchPage(ctx, 1, 0)
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(calls.Load()).To(Equal(int32(3)))
			Expect(time.Since(start)).To(BeNumerically(">=", 150*time.Millisecond))
		})
	})

	It("should reject a base url that is not http", func() {
		_, err := catalog.NewClient("ftp://catalog.example")

		Expect(err).To(HaveOccurred())
	})
})
