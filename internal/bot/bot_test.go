package bot_test

import (
	"context"
	"errors"

	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/amirdaaee/TGSaver/internal/bot"
	"github.com/amirdaaee/TGSaver/internal/errs"
	"github.com/amirdaaee/TGSaver/internal/facade"
	"github.com/amirdaaee/TGSaver/internal/notify"
	"github.com/amirdaaee/TGSaver/internal/state"
	mBatch "github.com/amirdaaee/TGSaver/mocks/batch"
	mFacade "github.com/amirdaaee/TGSaver/mocks/facade"
	mNotify "github.com/amirdaaee/TGSaver/mocks/notify"
	mTlg "github.com/amirdaaee/TGSaver/mocks/tlg"
	"github.com/celestix/gotgproto/dispatcher"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Handler", func() {
	const (
		owner    int64 = 1
		user     int64 = 42
		logGroup int64 = -1001234
	)
	var (
		ctrl     *gomock.Controller
		ctx      context.Context
		orch     *mBatch.MockIOrchestrator
		bans     *mFacade.MockIBanList
		profiles *mFacade.MockIProfileStore
		notifier *mNotify.MockINotifier
		ui       *mTlg.MockIMessenger
		h        *bot.Handler
		replies  []string
	)
	from := func(uid int64, args string) bot.Incoming {
		return bot.Incoming{UserID: uid, ChatID: uid, Args: args}
	}
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		orch = mBatch.NewMockIOrchestrator(ctrl)
		bans = mFacade.NewMockIBanList(ctrl)
		profiles = mFacade.NewMockIProfileStore(ctrl)
		notifier = mNotify.NewMockINotifier(ctrl)
		ui = mTlg.NewMockIMessenger(ctrl)
		replies = nil
		ui.EXPECT().SendText(gomock.Any(), gomock.Not(logGroup), 0, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) (int, error) {
			replies = append(replies, text)
			return len(replies), nil
		}).AnyTimes()
		h = bot.NewHandler(bot.HandlerDeps{
			Orchestrator: orch,
			Bans:         bans,
			Profiles:     profiles,
			Notifier:     notifier,
			UI:           ui,
		}, bot.HandlerOptions{OwnerIDs: []int64{owner}, LogGroup: logGroup, AdminContact: "@admin"})
	})

	Describe("Gate", func() {
		type testCase struct {
			uid      int64
			setup    func()
			expected error
			reply    []string
		}
		DescribeTable("", func(tc testCase) {
			if tc.setup != nil {
				tc.setup()
			}
			err := h.Gate(ctx, from(tc.uid, ""))
			if tc.expected == nil {
				Expect(err).ToNot(HaveOccurred())
			} else {
				Expect(err).To(MatchError(tc.expected))
			}
			Expect(replies).To(Equal(tc.reply))
		},
			Entry("owner passes unchecked", testCase{uid: owner}),
			Entry("allowed user", testCase{
				uid:   user,
				setup: func() { bans.EXPECT().IsBanned(gomock.Any(), user).Return(false, nil) },
			}),
			Entry("banned user", testCase{
				uid:      user,
				setup:    func() { bans.EXPECT().IsBanned(gomock.Any(), user).Return(true, nil) },
				expected: dispatcher.EndGroups,
				reply:    []string{"⛔ You are banned.\nContact @admin"},
			}),
			Entry("ban store down lets the user through", testCase{
				uid:   user,
				setup: func() { bans.EXPECT().IsBanned(gomock.Any(), user).Return(false, errors.New("down")) },
			}),
		)
	})

	Describe("user commands", func() {
		It("begins a batch", func() {
			orch.EXPECT().Begin(gomock.Any(), user, user, batch.ModeBatch).Return(nil)
			Expect(h.HandleBatch(ctx, from(user, ""))).To(Succeed())
		})
		It("begins a single", func() {
			orch.EXPECT().Begin(gomock.Any(), user, user, batch.ModeSingle).Return(nil)
			Expect(h.HandleSingle(ctx, from(user, ""))).To(Succeed())
		})
		It("replies the cancel result", func() {
			orch.EXPECT().Cancel(gomock.Any(), user).Return(batch.CancelRequested, nil)
			Expect(h.HandleCancel(ctx, from(user, ""))).To(Succeed())
			Expect(replies).To(Equal([]string{"Cancellation requested. Batch will stop after current file completes."}))
		})
		It("feeds text into the conversation", func() {
			orch.EXPECT().HandleText(gomock.Any(), user, user, "https://t.me/chan/5").Return(true)
			in := from(user, "")
			in.Text = "https://t.me/chan/5"
			Expect(h.HandleText(ctx, in)).To(Succeed())
		})
		It("leaves unknown commands alone", func() {
			in := from(user, "")
			in.Text = "/setbot 123:abc"
			Expect(h.HandleText(ctx, in)).To(Succeed())
		})
	})

	Describe("admin commands", func() {
		It("resets everything and notifies users", func() {
			orch.EXPECT().CancelAll(gomock.Any()).Return(batch.CancelAllReport{Flagged: 2, ConversationsCleared: 1, KeysCleared: 7})
			profiles.EXPECT().UserIDs(gomock.Any()).Return([]int64{5, 6, 7}, nil)
			notifier.EXPECT().Bulk(gomock.Any(), []int64{5, 6, 7}, bot.KillAllNotice).Return(notify.Report{Total: 3, Sent: 2, Failed: 1})
			Expect(h.HandleKillAll(ctx, from(owner, ""))).To(Succeed())
			Expect(replies).To(HaveLen(1))
			Expect(replies[0]).To(ContainSubstring("Tasks flagged: 2"))
			Expect(replies[0]).To(ContainSubstring("Users notified: 2/3 (failed: 1)"))
		})
		It("lists active runs", func() {
			orch.EXPECT().ActiveRuns().Return([]batch.Run{
				{UserID: 5, RunRecord: state.RunRecord{Total: 10, Current: 3, Success: 2}},
				{UserID: 9, RunRecord: state.RunRecord{Total: 4, Current: 1, Success: 1, CancelRequested: true}},
			})
			Expect(h.HandleActive(ctx, from(owner, ""))).To(Succeed())
			Expect(replies).To(Equal([]string{"Active tasks: 2\n5: 3/10 ✅ 2\n9: 1/4 ✅ 1 (cancelling)"}))
		})
		It("reports no active runs", func() {
			orch.EXPECT().ActiveRuns().Return(nil)
			Expect(h.HandleActive(ctx, from(owner, ""))).To(Succeed())
			Expect(replies).To(Equal([]string{"No active tasks."}))
		})
		It("clears caches", func() {
			orch.EXPECT().ClearCaches().Return(4)
			Expect(h.HandleClearCache(ctx, from(owner, ""))).To(Succeed())
			Expect(replies).To(Equal([]string{"🧹 Cache cleared. Keys removed: 4"}))
		})
		It("broadcasts to every user", func() {
			profiles.EXPECT().UserIDs(gomock.Any()).Return([]int64{5, 6}, nil)
			notifier.EXPECT().Bulk(gomock.Any(), []int64{5, 6}, "hello all").Return(notify.Report{Total: 2, Sent: 2})
			Expect(h.HandleBroadcast(ctx, from(owner, "hello all"))).To(Succeed())
			Expect(replies).To(Equal([]string{
				"📣 Broadcast started...",
				"✅ Broadcast completed.\nTotal users: 2\nSuccess: 2\nFailed: 0",
			}))
		})
		It("asks for a broadcast text", func() {
			err := h.HandleBroadcast(ctx, from(owner, ""))
			msg, ok := errs.UserMessage(err)
			Expect(ok).To(BeTrue())
			Expect(msg).To(Equal("Usage: /broadcast <message>"))
		})
		It("tests the log group", func() {
			ui.EXPECT().SendText(gomock.Any(), logGroup, 0, gomock.Any()).Return(9, nil)
			Expect(h.HandleLogTest(ctx, from(owner, ""))).To(Succeed())
			Expect(replies).To(Equal([]string{"✅ Log group is reachable."}))
		})
		It("reports an unreachable log group", func() {
			ui.EXPECT().SendText(gomock.Any(), logGroup, 0, gomock.Any()).Return(0, errors.New("CHAT_WRITE_FORBIDDEN"))
			Expect(h.HandleLogTest(ctx, from(owner, ""))).To(Succeed())
			Expect(replies).To(Equal([]string{"❌ Log group test failed: CHAT_WRITE_FORBIDDEN"}))
		})

		type banCase struct {
			args  string
			setup func()
			reply []string
			usage bool
		}
		DescribeTable("ban", func(tc banCase) {
			if tc.setup != nil {
				tc.setup()
			}
			err := h.HandleBan(ctx, from(owner, tc.args))
			if tc.usage {
				_, ok := errs.UserMessage(err)
				Expect(ok).To(BeTrue())
				return
			}
			Expect(err).ToNot(HaveOccurred())
			Expect(replies).To(Equal(tc.reply))
		},
			Entry("with reason", banCase{
				args:  "42 spam links",
				setup: func() { bans.EXPECT().Ban(gomock.Any(), user, owner, "spam links").Return(nil) },
				reply: []string{"⛔ User 42 banned."},
			}),
			Entry("already banned", banCase{
				args:  "42",
				setup: func() { bans.EXPECT().Ban(gomock.Any(), user, owner, "").Return(facade.ErrAlreadyBanned) },
				reply: []string{"User 42 is already banned."},
			}),
			Entry("missing id", banCase{usage: true}),
			Entry("bad id", banCase{args: "abc", usage: true}),
		)
		It("unbans and tells the user", func() {
			bans.EXPECT().Unban(gomock.Any(), user).Return(nil)
			notifier.EXPECT().Notify(gomock.Any(), user, bot.UnbanNotice).Return(nil)
			Expect(h.HandleUnban(ctx, from(owner, "42"))).To(Succeed())
			Expect(replies).To(Equal([]string{"✅ User 42 unbanned."}))
		})
	})
})
