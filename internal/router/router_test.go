package router_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/amirdaaee/TGSaver/internal/router"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/types"
	mFacade "github.com/amirdaaee/TGSaver/mocks/facade"
	mTlg "github.com/amirdaaee/TGSaver/mocks/tlg"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type plainCipher struct{ fail bool }

func (c plainCipher) Decrypt(enc string) (string, error) {
	if c.fail {
		return "", tlg.ErrBadSession
	}
	return "plain-" + enc, nil
}

var _ = Describe("Router", func() {
	var (
		ctrl      *gomock.Controller
		ctx       context.Context
		profiles  *mFacade.MockIProfileStore
		messenger *mTlg.MockIMessenger
		dials     atomic.Int32
		dialErr   error
		lastCred  tlg.Credential
		credMu    sync.Mutex
		cipher    plainCipher
	)
	dial := func(cred tlg.Credential) (tlg.IMessenger, error) {
		dials.Add(1)
		credMu.Lock()
		lastCred = cred
		credMu.Unlock()
		if dialErr != nil {
			return nil, dialErr
		}
		return messenger, nil
	}
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		profiles = mFacade.NewMockIProfileStore(ctrl)
		messenger = mTlg.NewMockIMessenger(ctrl)
		dials.Store(0)
		dialErr = nil
		cipher = plainCipher{}
	})
	Describe("GetBotClient", func() {
		It("starts the client once and caches it", func() {
			profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("123:abc", nil).Times(8)
			r := router.NewRouter(profiles, cipher, dial)
			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					m, err := r.GetBotClient(ctx, 1)
					Expect(err).ToNot(HaveOccurred())
					Expect(m).To(Equal(messenger))
				}()
			}
			wg.Wait()
			Expect(dials.Load()).To(Equal(int32(1)))
			Expect(lastCred.BotToken).To(Equal("123:abc"))
		})
		It("reports a missing token", func() {
			profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("", nil)
			_, err := router.NewRouter(profiles, cipher, dial).GetBotClient(ctx, 1)
			Expect(err).To(MatchError(router.ErrNoCredential))
			Expect(dials.Load()).To(BeZero())
		})
		It("does not cache start failures", func() {
			profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("123:abc", nil).Times(2)
			dialErr = fmt.Errorf("mock err")
			r := router.NewRouter(profiles, cipher, dial)
			_, err := r.GetBotClient(ctx, 1)
			Expect(err).To(MatchError(router.ErrNoCredential))
			dialErr = nil
			_, err = r.GetBotClient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
		})
		It("drops the cached client once the token is removed", func() {
			gomock.InOrder(
				profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("123:abc", nil),
				profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("", nil),
			)
			messenger.EXPECT().Stop().Times(1)
			r := router.NewRouter(profiles, cipher, dial)
			m, err := r.GetBotClient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(m).To(Equal(messenger))
			_, err = r.GetBotClient(ctx, 1)
			Expect(err).To(MatchError(router.ErrNoCredential))
			Expect(dials.Load()).To(Equal(int32(1)))
			r.Close()
		})
		It("restarts the client when the token is replaced", func() {
			gomock.InOrder(
				profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("123:abc", nil),
				profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("456:def", nil),
			)
			messenger.EXPECT().Stop().Times(1)
			r := router.NewRouter(profiles, cipher, dial)
			_, err := r.GetBotClient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.GetBotClient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(dials.Load()).To(Equal(int32(2)))
			Expect(lastCred.BotToken).To(Equal("456:def"))
		})
		It("keeps the cached client when the profile can not be read", func() {
			gomock.InOrder(
				profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("123:abc", nil),
				profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return(nil, fmt.Errorf("mongo down")),
			)
			r := router.NewRouter(profiles, cipher, dial)
			_, err := r.GetBotClient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			m, err := r.GetBotClient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(m).To(Equal(messenger))
		})
	})
	Describe("GetSessionClient", func() {
		It("decrypts the session and refreshes dialogs once", func() {
			profiles.EXPECT().GetField(gomock.Any(), int64(2), types.UserDoc__SessionField, "").Return("enc", nil).Times(2)
			messenger.EXPECT().RefreshDialogs(gomock.Any()).Return(nil).Times(1)
			r := router.NewRouter(profiles, cipher, dial)
			_, err := r.GetSessionClient(ctx, 2)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.GetSessionClient(ctx, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(lastCred.Session).To(Equal("plain-enc"))
			Expect(r.HasSession(ctx, 2)).To(BeTrue())
		})
		It("treats an undecryptable session as not logged in", func() {
			profiles.EXPECT().GetField(gomock.Any(), int64(2), types.UserDoc__SessionField, "").Return("enc", nil)
			cipher.fail = true
			_, err := router.NewRouter(profiles, cipher, dial).GetSessionClient(ctx, 2)
			Expect(err).To(MatchError(router.ErrNoCredential))
		})
		It("keeps the client when the dialog refresh fails", func() {
			profiles.EXPECT().GetField(gomock.Any(), int64(2), types.UserDoc__SessionField, "").Return("enc", nil)
			messenger.EXPECT().RefreshDialogs(gomock.Any()).Return(fmt.Errorf("mock err"))
			_, err := router.NewRouter(profiles, cipher, dial).GetSessionClient(ctx, 2)
			Expect(err).ToNot(HaveOccurred())
		})
	})
	Describe("Close", func() {
		It("stops cached clients", func() {
			profiles.EXPECT().GetField(gomock.Any(), int64(1), types.UserDoc__BotTokenField, "").Return("123:abc", nil)
			messenger.EXPECT().Stop().Times(1)
			r := router.NewRouter(profiles, cipher, dial)
			_, err := r.GetBotClient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			r.Close()
		})
	})
})
