package notify_test

import (
	"context"
	"fmt"
	"time"

	"github.com/amirdaaee/TGSaver/internal/notify"
	mTlg "github.com/amirdaaee/TGSaver/mocks/tlg"
	"github.com/gotd/td/tgerr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

var _ = Describe("Notifier", func() {
	var (
		ctrl   *gomock.Controller
		ctx    context.Context
		sender *mTlg.MockIMessenger
		slept  []time.Duration
		n      *notify.Notifier
	)
	floodErr := func(sec int) error {
		return tgerr.New(420, fmt.Sprintf("FLOOD_WAIT_%d", sec))
	}
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		sender = mTlg.NewMockIMessenger(ctrl)
		slept = nil
		n = notify.NewNotifier(sender, func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		}, rate.Inf)
	})
	type testCase struct {
		firstErr  error
		secondErr error
		expect    notify.Report
		sleeps    []time.Duration
	}
	DescribeTable("Bulk", func(tc testCase) {
		sender.EXPECT().SendText(gomock.Any(), int64(1), 0, "hi").Return(1, nil)
		call := sender.EXPECT().SendText(gomock.Any(), int64(2), 0, "hi").Return(0, tc.firstErr)
		if tc.firstErr != nil {
			if _, ok := tgerr.AsFloodWait(tc.firstErr); ok {
				sender.EXPECT().SendText(gomock.Any(), int64(2), 0, "hi").Return(0, tc.secondErr).After(call)
			}
		}
		rep := n.Bulk(ctx, []int64{1, 2, 1, 0}, "hi")
		Expect(rep).To(Equal(tc.expect))
		Expect(slept).To(Equal(tc.sleeps))
	},
		Entry("sends once per distinct target", testCase{
			expect: notify.Report{Total: 2, Sent: 2},
		}),
		Entry("retries once after a flood wait", testCase{
			firstErr: floodErr(3),
			expect:   notify.Report{Total: 2, Sent: 2},
			sleeps:   []time.Duration{3 * time.Second},
		}),
		Entry("gives up after the retry fails", testCase{
			firstErr:  floodErr(3),
			secondErr: floodErr(5),
			expect:    notify.Report{Total: 2, Sent: 1, Failed: 1},
			sleeps:    []time.Duration{3 * time.Second},
		}),
		Entry("does not retry other errors", testCase{
			firstErr: fmt.Errorf("USER_IS_BLOCKED"),
			expect:   notify.Report{Total: 2, Sent: 1, Failed: 1},
		}),
	)
	It("renders the report", func() {
		Expect(notify.Report{Total: 3, Sent: 2, Failed: 1}.String()).To(Equal("2/3 (failed: 1)"))
	})
})
