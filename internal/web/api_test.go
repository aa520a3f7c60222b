package web_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/amirdaaee/TGSaver/internal/state"
	"github.com/amirdaaee/TGSaver/internal/web"
	mBatch "github.com/amirdaaee/TGSaver/mocks/batch"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("admin api", func() {
	const token = "s3cret"
	var (
		ctrl *gomock.Controller
		orch *mBatch.MockIOrchestrator
		srv  *web.Server
	)
	do := func(method, path, body, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		return rec
	}
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		orch = mBatch.NewMockIOrchestrator(ctrl)
		srv = web.NewServer(web.ServerConfig{ApiToken: token, AllowedOrigins: []string{"http://localhost:3000"}}, orch)
	})

	type authCase struct {
		method string
		path   string
		auth   string
	}
	DescribeTable("rejects requests without the token", func(tc authCase) {
		rec := do(tc.method, tc.path, "", tc.auth)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	},
		Entry("runs without header", authCase{method: http.MethodGet, path: "/api/runs"}),
		Entry("runs with wrong token", authCase{method: http.MethodGet, path: "/api/runs", auth: "Bearer nope"}),
		Entry("cancel with basic auth", authCase{method: http.MethodPost, path: "/api/runs/cancel", auth: "Basic " + token}),
		Entry("cache clear", authCase{method: http.MethodPost, path: "/api/cache/clear"}),
	)

	It("lists runs", func() {
		orch.EXPECT().ActiveRuns().Return([]batch.Run{
			{UserID: 5, RunRecord: state.RunRecord{Total: 10, Current: 3, Success: 2, ProgressMessageID: 77}},
		})
		rec := do(http.MethodGet, "/api/runs", "", "Bearer "+token)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"runs":[{"user_id":5,"total":10,"current":3,"success":2,"cancel_requested":false,"progress_message_id":77}]}`))
	})
	It("cancels one user", func() {
		orch.EXPECT().Cancel(gomock.Any(), int64(5)).Return(batch.CancelRequested, nil)
		rec := do(http.MethodPost, "/api/runs/cancel", `{"user_id":5}`, "Bearer "+token)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"flagged":1`))
	})
	It("cancels everything", func() {
		orch.EXPECT().CancelAll(gomock.Any()).Return(batch.CancelAllReport{Users: []int64{5, 9}, Flagged: 2, LocksCleared: 3})
		rec := do(http.MethodPost, "/api/runs/cancel", `{"all":true}`, "Bearer "+token)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"users":[5,9],"flagged":2,"conversations_cleared":0,"keys_cleared":0,"locks_cleared":3,"inflight_cleared":0}`))
	})
	It("needs a target to cancel", func() {
		rec := do(http.MethodPost, "/api/runs/cancel", `{}`, "Bearer "+token)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring("user_id or all is required"))
	})
	It("maps orchestrator failures to 500", func() {
		orch.EXPECT().Cancel(gomock.Any(), int64(5)).Return(batch.NothingToCancel, errors.New("disk full"))
		rec := do(http.MethodPost, "/api/runs/cancel", `{"user_id":5}`, "Bearer "+token)
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(MatchJSON(`{"statusCode":500,"msg":"disk full"}`))
	})
	It("clears caches", func() {
		orch.EXPECT().ClearCaches().Return(12)
		rec := do(http.MethodPost, "/api/cache/clear", "", "Bearer "+token)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"keys_cleared":12}`))
	})
	It("answers cors preflight", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/runs", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:3000"))
	})
})
