package events_test

import (
	"context"
	"fmt"
	"time"

	"github.com/amirdaaee/TGSaver/internal/events"
	mEvents "github.com/amirdaaee/TGSaver/mocks/events"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("NatsPublisher", func() {
	var (
		ctrl *gomock.Controller
		conn *mEvents.MockINatsConn
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		conn = mEvents.NewMockINatsConn(ctrl)
	})
	It("publishes json under a per-type subject", func() {
		at := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
		conn.EXPECT().Publish("tgsaver.batch.item_done", gomock.Any()).DoAndReturn(func(_ string, data []byte) error {
			Expect(data).To(MatchJSON(`{"type":"item_done","user_id":5,"index":2,"total":4,"outcome":"Done.","at":"2025-03-04T00:00:00Z"}`))
			return nil
		})
		p := events.NewNatsPublisher(conn, "tgsaver.batch")
		Expect(p.Publish(context.Background(), events.Event{Type: events.ItemDone, UserID: 5, Index: 2, Total: 4, Outcome: "Done.", At: at})).To(Succeed())
	})
	It("wraps publish errors", func() {
		conn.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(fmt.Errorf("nats: connection closed"))
		p := events.NewNatsPublisher(conn, "tgsaver.batch")
		Expect(p.Publish(context.Background(), events.Event{Type: events.RunStarted})).To(MatchError(ContainSubstring("connection closed")))
	})
})
