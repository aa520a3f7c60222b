package tlg_test

import (
	"context"
	"errors"
	"time"

	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/gotd/td/tgerr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RetryFloodWaitWith", func() {
	var (
		ctx    context.Context
		slept  []time.Duration
		sleep  tlg.SleepFunc
		errOut = errors.New("boom")
	)
	BeforeEach(func() {
		ctx = context.Background()
		slept = nil
		sleep = func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		}
	})
	type testCase struct {
		results       []error
		expectedCalls int
		expectedSlept []time.Duration
		expectedErr   error
	}
	DescribeTable("", func(tc testCase) {
		calls := 0
		err := tlg.RetryFloodWaitWith(ctx, sleep, func(context.Context) error {
			e := tc.results[calls]
			calls++
			return e
		})
		Expect(calls).To(Equal(tc.expectedCalls))
		Expect(slept).To(Equal(tc.expectedSlept))
		if tc.expectedErr == nil {
			Expect(err).ToNot(HaveOccurred())
		} else {
			Expect(err).To(MatchError(tc.expectedErr))
		}
	},
		Entry("first try succeeds", testCase{results: []error{nil}, expectedCalls: 1}),
		Entry("other errors are not retried", testCase{results: []error{errOut}, expectedCalls: 1, expectedErr: errOut}),
		Entry("flood wait is slept off once", testCase{
			results:       []error{tgerr.New(420, "FLOOD_WAIT_7"), nil},
			expectedCalls: 2,
			expectedSlept: []time.Duration{7 * time.Second},
		}),
		Entry("second failure is returned", testCase{
			results:       []error{tgerr.New(420, "FLOOD_WAIT_2"), errOut},
			expectedCalls: 2,
			expectedSlept: []time.Duration{2 * time.Second},
			expectedErr:   errOut,
		}),
	)
	It("gives up when the wait is interrupted", func() {
		calls := 0
		err := tlg.RetryFloodWaitWith(ctx, func(context.Context, time.Duration) error { return context.Canceled }, func(context.Context) error {
			calls++
			return tgerr.New(420, "FLOOD_WAIT_30")
		})
		Expect(err).To(MatchError(context.Canceled))
		Expect(calls).To(Equal(1))
	})
})

var _ = Describe("Sleep", func() {
	It("returns early on a done context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(tlg.Sleep(ctx, time.Hour)).To(MatchError(context.Canceled))
	})
	It("waits out short durations", func() {
		Expect(tlg.Sleep(context.Background(), time.Millisecond)).To(Succeed())
	})
})
