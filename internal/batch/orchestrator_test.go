package batch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/amirdaaee/TGSaver/internal/events"
	"github.com/amirdaaee/TGSaver/internal/fetcher"
	"github.com/amirdaaee/TGSaver/internal/link"
	"github.com/amirdaaee/TGSaver/internal/notify"
	"github.com/amirdaaee/TGSaver/internal/state"
	"github.com/amirdaaee/TGSaver/internal/transfer"
	"github.com/amirdaaee/TGSaver/internal/types"
	mBatch "github.com/amirdaaee/TGSaver/mocks/batch"
	mEvents "github.com/amirdaaee/TGSaver/mocks/events"
	mFacade "github.com/amirdaaee/TGSaver/mocks/facade"
	mFetcher "github.com/amirdaaee/TGSaver/mocks/fetcher"
	mNotify "github.com/amirdaaee/TGSaver/mocks/notify"
	mRouter "github.com/amirdaaee/TGSaver/mocks/router"
	mTlg "github.com/amirdaaee/TGSaver/mocks/tlg"
	mTransfer "github.com/amirdaaee/TGSaver/mocks/transfer"
	"github.com/gotd/td/tgerr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

// chatLog records everything the orchestrator shows to users.
type chatLog struct {
	mu     sync.Mutex
	texts  []string
	sleeps []time.Duration
	nextID int
}

func (c *chatLog) add(text string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts = append(c.texts, text)
	c.nextID++
	return c.nextID
}

func (c *chatLog) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.texts...)
}

func (c *chatLog) last() string {
	all := c.all()
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1]
}

func (c *chatLog) sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	return nil
}

func (c *chatLog) slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

var _ = Describe("Orchestrator", func() {
	const (
		userID int64 = 42
		chat   int64 = 42
	)
	var (
		ctrl      *gomock.Controller
		ctx       context.Context
		ui        *mTlg.MockIMessenger
		bot       *mTlg.MockIMessenger
		session   *mTlg.MockIMessenger
		rt        *mRouter.MockIRouter
		fetch     *mFetcher.MockIFetcher
		engine    *mTransfer.MockIEngine
		quota     *mFacade.MockIQuotaGate
		notifier  *mNotify.MockINotifier
		sweeper   *mBatch.MockISweeper
		store     *state.Store
		statePath string
		chatLogs  *chatLog
		opts      batch.Options
		publisher events.IPublisher
	)
	newOrchestrator := func() *batch.Orchestrator {
		return batch.NewOrchestrator(ctx, batch.Deps{
			UI:       ui,
			Router:   rt,
			Fetcher:  fetch,
			Engine:   engine,
			Quota:    quota,
			Store:    store,
			Notifier: notifier,
			Sweeper:  sweeper,
			Events:   publisher,
		}, opts)
	}
	found := func(_ context.Context, _, _ any, ref link.Ref) (*fetcher.Fetched, error) {
		return &fetcher.Fetched{Item: &types.Item{ID: ref.ItemID, Kind: types.KindDocument}}, nil
	}
	startBatch := func(o *batch.Orchestrator, startLink, count string) {
		Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
		Expect(o.HandleText(ctx, userID, chat, startLink)).To(BeTrue())
		Expect(o.HandleText(ctx, userID, chat, count)).To(BeTrue())
	}
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		ui = mTlg.NewMockIMessenger(ctrl)
		bot = mTlg.NewMockIMessenger(ctrl)
		session = mTlg.NewMockIMessenger(ctrl)
		rt = mRouter.NewMockIRouter(ctrl)
		fetch = mFetcher.NewMockIFetcher(ctrl)
		engine = mTransfer.NewMockIEngine(ctrl)
		quota = mFacade.NewMockIQuotaGate(ctrl)
		notifier = mNotify.NewMockINotifier(ctrl)
		sweeper = mBatch.NewMockISweeper(ctrl)
		statePath = filepath.Join(GinkgoT().TempDir(), "state.json")
		store = state.NewStore(state.NewFileBackend(statePath))
		chatLogs = &chatLog{}
		publisher = nil
		opts = batch.Options{FreemiumLimit: 10, FreeBatchDailyLimit: 1, Sleep: chatLogs.sleep}

		ui.EXPECT().SendText(gomock.Any(), chat, 0, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) (int, error) {
			return chatLogs.add(text), nil
		}).AnyTimes()
		ui.EXPECT().EditText(gomock.Any(), chat, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) error {
			chatLogs.add(text)
			return nil
		}).AnyTimes()
		sweeper.EXPECT().Sweep().Return(0, nil).AnyTimes()
		rt.EXPECT().GetBotClient(gomock.Any(), userID).Return(bot, nil).AnyTimes()
		quota.EXPECT().IsPremium(gomock.Any(), userID).Return(true, nil).AnyTimes()
		quota.EXPECT().TierLimit(gomock.Any(), userID).Return(10, nil).AnyTimes()
	})

	Describe("Begin", func() {
		type testCase struct {
			setup  func()
			expect string
		}
		DescribeTable("", func(tc testCase) {
			// fresh controller so each entry can override the defaults above
			ctrl = gomock.NewController(GinkgoT())
			rt = mRouter.NewMockIRouter(ctrl)
			quota = mFacade.NewMockIQuotaGate(ctrl)
			ui = mTlg.NewMockIMessenger(ctrl)
			ui.EXPECT().SendText(gomock.Any(), chat, 0, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) (int, error) {
				return chatLogs.add(text), nil
			}).AnyTimes()
			ui.EXPECT().EditText(gomock.Any(), chat, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) error {
				chatLogs.add(text)
				return nil
			}).AnyTimes()
			tc.setup()
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
			Expect(chatLogs.last()).To(Equal(tc.expect))
		},
			Entry("no free service", testCase{
				setup: func() {
					opts.FreemiumLimit = 0
					quota.EXPECT().IsPremium(gomock.Any(), userID).Return(false, nil)
				},
				expect: "This bot does not provide free services, get a subscription from the owner.",
			}),
			Entry("free batch quota used up", testCase{
				setup: func() {
					quota.EXPECT().IsPremium(gomock.Any(), userID).Return(false, nil)
					quota.EXPECT().ConsumeFreeBatchQuota(gomock.Any(), userID, 1).Return(false, nil)
				},
				expect: "Free users can use /batch only 1 times per day.",
			}),
			Entry("active run exists", testCase{
				setup: func() {
					quota.EXPECT().IsPremium(gomock.Any(), userID).Return(true, nil)
					Expect(store.Put(ctx, userID, state.RunRecord{Total: 3})).To(Succeed())
				},
				expect: "You have an active task. Use /stop to cancel it.",
			}),
			Entry("no bot configured", testCase{
				setup: func() {
					quota.EXPECT().IsPremium(gomock.Any(), userID).Return(true, nil)
					rt.EXPECT().GetBotClient(gomock.Any(), userID).Return(nil, errors.New("no bot"))
				},
				expect: "Add your bot with /setbot first",
			}),
			Entry("free user with quota left", testCase{
				setup: func() {
					quota.EXPECT().IsPremium(gomock.Any(), userID).Return(false, nil)
					quota.EXPECT().ConsumeFreeBatchQuota(gomock.Any(), userID, 1).Return(true, nil)
					rt.EXPECT().GetBotClient(gomock.Any(), userID).Return(bot, nil)
				},
				expect: "Send start link...",
			}),
		)
	})

	Describe("conversation", func() {
		It("asks for a count after a link", func() {
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
			Expect(o.HandleText(ctx, userID, chat, "https://t.me/somechan/10")).To(BeTrue())
			Expect(chatLogs.last()).To(Equal("How many messages?"))
		})
		It("ignores text without a conversation", func() {
			o := newOrchestrator()
			Expect(o.HandleText(ctx, userID, chat, "hello")).To(BeFalse())
			Expect(chatLogs.all()).To(BeEmpty())
		})
		It("ends the conversation on a bad link", func() {
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
			Expect(o.HandleText(ctx, userID, chat, "not a link")).To(BeTrue())
			Expect(chatLogs.last()).To(Equal("Invalid link format."))
			Expect(o.HandleText(ctx, userID, chat, "5")).To(BeFalse())
		})
		It("requires a login for private links", func() {
			rt.EXPECT().HasSession(gomock.Any(), userID).Return(false)
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
			Expect(o.HandleText(ctx, userID, chat, "https://t.me/c/123456/10")).To(BeTrue())
			Expect(chatLogs.last()).To(Equal("❌ You must /login first to download from private channels/groups."))
		})
		type countCase struct {
			text   string
			expect string
		}
		DescribeTable("rejects a bad count and keeps asking", func(tc countCase) {
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
			Expect(o.HandleText(ctx, userID, chat, "https://t.me/somechan/10")).To(BeTrue())
			Expect(o.HandleText(ctx, userID, chat, tc.text)).To(BeTrue())
			Expect(chatLogs.last()).To(Equal(tc.expect))
			Expect(store.Snapshot()).To(BeEmpty())
			Expect(o.HandleText(ctx, userID, chat, tc.text)).To(BeTrue())
		},
			Entry("letters", countCase{text: "abc", expect: "Enter valid number."}),
			Entry("zero", countCase{text: "0", expect: "Enter valid number."}),
			Entry("negative", countCase{text: "-3", expect: "Enter valid number."}),
			Entry("over the tier limit", countCase{text: "11", expect: "Maximum limit is 10."}),
		)
	})

	Describe("batch run", func() {
		BeforeEach(func() {
			rt.EXPECT().HasSession(gomock.Any(), userID).Return(false).AnyTimes()
		})
		It("skips a missing item and reports the final tally", func() {
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b, s any, ref link.Ref) (*fetcher.Fetched, error) {
				if ref.ItemID == 12 {
					return nil, nil
				}
				return found(ctx, b, s, ref)
			}).Times(5)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req transfer.Request) transfer.Outcome {
				Expect(req.UserID).To(Equal(userID))
				Expect(req.Ref.Container).To(Equal("somechan"))
				return transfer.Outcome{Kind: transfer.Done}
			}).Times(4)
			o := newOrchestrator()
			startBatch(o, "https://t.me/somechan/10", "5")
			o.Wait()

			texts := chatLogs.all()
			Expect(texts).To(ContainElements(
				"Processing batch...",
				"1/5: Done. | ✅ 1",
				"2/5: Done. | ✅ 2",
				"3/5: Skipped (not found/access). ✅ 2",
				"4/5: Done. | ✅ 3",
				"5/5: Done. | ✅ 4",
			))
			Expect(chatLogs.last()).To(Equal("Batch Completed ✅ Success: 4/5"))
			Expect(chatLogs.slept()).To(Equal([]time.Duration{
				batch.DefaultItemDelay, batch.DefaultItemDelay, batch.DefaultSkipDelay, batch.DefaultItemDelay, batch.DefaultItemDelay,
			}))
			Expect(store.Snapshot()).To(BeEmpty())
			Expect(o.ActiveRuns()).To(BeEmpty())
		})
		It("counts a failed item without stopping", func() {
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(found).Times(2)
			gomock.InOrder(
				engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(transfer.Outcome{Kind: transfer.Failed, Reason: "boom"}),
				engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, transfer.Request) transfer.Outcome {
					panic("kaboom")
				}),
			)
			o := newOrchestrator()
			startBatch(o, "https://t.me/somechan/10", "2")
			o.Wait()
			Expect(chatLogs.all()).To(ContainElements("1/2: Error: boom | ✅ 0", "2/2: Error: kaboom | ✅ 0"))
			Expect(chatLogs.last()).To(Equal("Batch Completed ✅ Success: 0/2"))
		})
		It("keeps going when a lookup panics", func() {
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b, s any, ref link.Ref) (*fetcher.Fetched, error) {
				if ref.ItemID == 11 {
					panic("nil peer")
				}
				return found(ctx, b, s, ref)
			}).Times(3)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(transfer.Outcome{Kind: transfer.Done}).Times(2)
			o := newOrchestrator()
			startBatch(o, "https://t.me/somechan/10", "3")
			o.Wait()
			Expect(chatLogs.all()).To(ContainElements(
				"1/3: Done. | ✅ 1",
				"2/3: Error: nil peer | ✅ 1",
				"3/3: Done. | ✅ 2",
			))
			Expect(chatLogs.last()).To(Equal("Batch Completed ✅ Success: 2/3"))
			Expect(store.Snapshot()).To(BeEmpty())
			Expect(o.ActiveRuns()).To(BeEmpty())
		})
		It("stops at the next item once cancelled", func() {
			var o *batch.Orchestrator
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(found).Times(2)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, req transfer.Request) transfer.Outcome {
				if req.Ref.ItemID == 11 {
					res, err := o.Cancel(ctx, userID)
					Expect(err).ToNot(HaveOccurred())
					Expect(res).To(Equal(batch.CancelRequested))
				}
				return transfer.Outcome{Kind: transfer.SentDirect}
			}).Times(2)
			o = newOrchestrator()
			startBatch(o, "https://t.me/somechan/10", "5")
			o.Wait()
			Expect(chatLogs.last()).To(Equal("Cancelled at 2/5. Success: 2"))
			Expect(chatLogs.all()).ToNot(ContainElement(ContainSubstring("Batch Completed")))
			Expect(store.Snapshot()).To(BeEmpty())
		})
		It("publishes lifecycle events under one run id", func() {
			pub := mEvents.NewMockIPublisher(ctrl)
			publisher = pub
			var got []events.Event
			pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev events.Event) error {
				got = append(got, ev)
				return nil
			}).Times(4)
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(found).Times(2)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(transfer.Outcome{Kind: transfer.Done}).Times(2)
			o := newOrchestrator()
			startBatch(o, "https://t.me/somechan/10", "2")
			o.Wait()
			Expect(got).To(HaveLen(4))
			Expect(got[0].Type).To(Equal(events.RunStarted))
			Expect(got[1].Type).To(Equal(events.ItemDone))
			Expect(got[2].Outcome).To(Equal("Done."))
			Expect(got[3].Type).To(Equal(events.RunFinished))
			Expect(got[3].Success).To(Equal(2))
			Expect(got[0].RunID).ToNot(BeEmpty())
			for _, ev := range got {
				Expect(ev.RunID).To(Equal(got[0].RunID))
				Expect(ev.UserID).To(Equal(userID))
			}
		})
		It("refuses a second run while one is active", func() {
			release := make(chan struct{})
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(found)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, transfer.Request) transfer.Outcome {
				<-release
				return transfer.Outcome{Kind: transfer.Done}
			})
			o := newOrchestrator()
			startBatch(o, "https://t.me/somechan/10", "1")
			Expect(o.ActiveRuns()).To(HaveLen(1))
			Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
			Expect(chatLogs.last()).To(Equal("You have an active task. Use /stop to cancel it."))
			close(release)
			o.Wait()
			Expect(chatLogs.last()).To(Equal("Batch Completed ✅ Success: 1/1"))
		})
		It("retries a flood-limited status edit once", func() {
			ctrl = gomock.NewController(GinkgoT())
			ui = mTlg.NewMockIMessenger(ctrl)
			ui.EXPECT().SendText(gomock.Any(), chat, 0, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) (int, error) {
				return chatLogs.add(text), nil
			}).AnyTimes()
			gomock.InOrder(
				ui.EXPECT().EditText(gomock.Any(), chat, gomock.Any(), "Send start link...").Return(nil),
				ui.EXPECT().EditText(gomock.Any(), chat, gomock.Any(), "1/1: Done. | ✅ 1").Return(tgerr.New(420, "FLOOD_WAIT_3")),
				ui.EXPECT().EditText(gomock.Any(), chat, gomock.Any(), "1/1: Done. | ✅ 1").Return(nil),
			)
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(found)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(transfer.Outcome{Kind: transfer.Done})
			o := newOrchestrator()
			startBatch(o, "https://t.me/somechan/10", "1")
			o.Wait()
			Expect(chatLogs.slept()).To(Equal([]time.Duration{3 * time.Second, batch.DefaultItemDelay}))
		})
	})

	Describe("single", func() {
		BeforeEach(func() {
			rt.EXPECT().HasSession(gomock.Any(), userID).Return(false).AnyTimes()
		})
		It("transfers once and flags a repeat as duplicate", func() {
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).DoAndReturn(found).Times(2)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(transfer.Outcome{Kind: transfer.DoneLarge})
			o := newOrchestrator()
			for range 2 {
				Expect(o.Begin(ctx, userID, chat, batch.ModeSingle)).To(Succeed())
				Expect(chatLogs.last()).To(Equal("Send link you want to process."))
				Expect(o.HandleText(ctx, userID, chat, "https://t.me/somechan/77")).To(BeTrue())
			}
			Expect(chatLogs.all()).To(ContainElement("1/1: Done (Large file)."))
			Expect(chatLogs.last()).To(Equal("Already processed (duplicate)."))
			Expect(o.ClearCaches()).To(Equal(1))
		})
		It("reports a missing item", func() {
			fetch.EXPECT().Fetch(gomock.Any(), bot, gomock.Any(), gomock.Any()).Return(nil, nil)
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeSingle)).To(Succeed())
			Expect(o.HandleText(ctx, userID, chat, "https://t.me/somechan/77")).To(BeTrue())
			Expect(chatLogs.last()).To(Equal("Message not found / deleted / no access."))
		})
		It("uses the session for private links", func() {
			ctrl = gomock.NewController(GinkgoT())
			rt = mRouter.NewMockIRouter(ctrl)
			rt.EXPECT().GetBotClient(gomock.Any(), userID).Return(bot, nil).AnyTimes()
			rt.EXPECT().HasSession(gomock.Any(), userID).Return(true).AnyTimes()
			rt.EXPECT().GetSessionClient(gomock.Any(), userID).Return(session, nil)
			fetch.EXPECT().Fetch(gomock.Any(), bot, session, link.Ref{Container: "-100123456", ItemID: 9, Visibility: link.Private}).DoAndReturn(found)
			engine.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req transfer.Request) transfer.Outcome {
				Expect(req.Session).To(Equal(session))
				return transfer.Outcome{Kind: transfer.Done}
			})
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeSingle)).To(Succeed())
			Expect(o.HandleText(ctx, userID, chat, "https://t.me/c/123456/9")).To(BeTrue())
			Expect(chatLogs.last()).To(Equal("1/1: Done."))
		})
		It("asks for a new login when the session is broken", func() {
			ctrl = gomock.NewController(GinkgoT())
			rt = mRouter.NewMockIRouter(ctrl)
			rt.EXPECT().GetBotClient(gomock.Any(), userID).Return(bot, nil).AnyTimes()
			rt.EXPECT().HasSession(gomock.Any(), userID).Return(true).AnyTimes()
			rt.EXPECT().GetSessionClient(gomock.Any(), userID).Return(nil, errors.New("revoked"))
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeSingle)).To(Succeed())
			Expect(o.HandleText(ctx, userID, chat, "https://t.me/c/123456/9")).To(BeTrue())
			Expect(chatLogs.last()).To(Equal("❌ Login session missing/invalid. Please /login again."))
		})
	})

	Describe("Cancel", func() {
		It("clears a pending conversation", func() {
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeBatch)).To(Succeed())
			res, err := o.Cancel(ctx, userID)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(batch.ConversationCleared))
			Expect(o.HandleText(ctx, userID, chat, "https://t.me/somechan/1")).To(BeFalse())
		})
		It("has nothing to cancel", func() {
			o := newOrchestrator()
			res, err := o.Cancel(ctx, userID)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(batch.NothingToCancel))
			Expect(res.String()).To(Equal("No active batch process found."))
		})
	})

	Describe("CancelAll", func() {
		It("flags runs and drops conversations", func() {
			Expect(store.Put(ctx, 7, state.RunRecord{Total: 4})).To(Succeed())
			Expect(store.Put(ctx, 3, state.RunRecord{Total: 2})).To(Succeed())
			engine.EXPECT().ClearInflight().Return(2)
			o := newOrchestrator()
			Expect(o.Begin(ctx, userID, chat, batch.ModeSingle)).To(Succeed())
			rep := o.CancelAll(ctx)
			Expect(rep.Users).To(Equal([]int64{3, 7}))
			Expect(rep.Flagged).To(Equal(2))
			Expect(rep.ConversationsCleared).To(Equal(1))
			Expect(rep.LocksCleared).To(Equal(1))
			Expect(rep.InflightCleared).To(Equal(2))
			for _, r := range o.ActiveRuns() {
				Expect(r.CancelRequested).To(BeTrue())
			}
		})
	})

	Describe("Recover", func() {
		It("notifies each abandoned user once and empties the document", func() {
			Expect(os.WriteFile(statePath, []byte(`{"5":{"total":10,"current":3,"success":2},"9":{"total":4,"current":0,"success":0}}`), 0o644)).To(Succeed())
			notifier.EXPECT().Bulk(gomock.Any(), []int64{5, 9}, batch.RestartNotice).Return(notify.Report{Total: 2, Sent: 2})
			o := newOrchestrator()
			rep, err := o.Recover(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(rep.Sent).To(Equal(2))
			Expect(store.Snapshot()).To(BeEmpty())
			data, err := os.ReadFile(statePath)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(data)).To(MatchJSON(`{}`))

			By("a second restart finds nothing to do")
			rep, err = newOrchestrator().Recover(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(rep).To(Equal(notify.Report{}))
		})
		It("starts clean without a state file", func() {
			o := newOrchestrator()
			_, err := o.Recover(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(o.ActiveRuns()).To(BeEmpty())
		})
	})
})
