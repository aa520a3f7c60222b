package transfer_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/amirdaaee/TGSaver/internal/fetcher"
	"github.com/amirdaaee/TGSaver/internal/ffmpeg"
	"github.com/amirdaaee/TGSaver/internal/link"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/transfer"
	"github.com/amirdaaee/TGSaver/internal/types"
	mFacade "github.com/amirdaaee/TGSaver/mocks/facade"
	mFFmpeg "github.com/amirdaaee/TGSaver/mocks/ffmpeg"
	mTlg "github.com/amirdaaee/TGSaver/mocks/tlg"
	mTransfer "github.com/amirdaaee/TGSaver/mocks/transfer"
	"github.com/gotd/td/tg"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Engine", func() {
	const (
		userID   int64 = 7
		invoking int64 = 7
		dstChat  int64 = -1009999999999
		logGroup int64 = -1001111111111
		statusID       = 500
	)
	var (
		ctrl     *gomock.Controller
		ctx      context.Context
		bot      *mTlg.MockIMessenger
		session  *mTlg.MockIMessenger
		relay    *mTlg.MockIMessenger
		profiles *mFacade.MockIProfileStore
		renamer  *mTransfer.MockIRenamer
		ff       *mFFmpeg.MockIFFmpeg
		workDir  string
		opts     transfer.EngineOptions
		profile  *types.UserDoc
	)
	docItem := func(name string, size int64) *types.Item {
		return &types.Item{
			ID:   3,
			Kind: types.KindDocument,
			Text: "hello",
			Media: &types.Media{
				Document: &tg.Document{ID: 1, AccessHash: 2, FileReference: []byte{1}},
				FileName: name,
				MimeType: "application/zip",
				Size:     size,
			},
		}
	}
	payload := []byte("0123456789")
	expectDownload := func(cl *mTlg.MockIMessenger) {
		cl.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ tg.InputFileLocationClass, w io.Writer) error {
			_, err := w.Write(payload)
			return err
		})
	}
	listWorkDir := func() []string {
		entries, err := os.ReadDir(workDir)
		Expect(err).ToNot(HaveOccurred())
		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		bot = mTlg.NewMockIMessenger(ctrl)
		session = mTlg.NewMockIMessenger(ctrl)
		relay = mTlg.NewMockIMessenger(ctrl)
		profiles = mFacade.NewMockIProfileStore(ctrl)
		renamer = mTransfer.NewMockIRenamer(ctrl)
		ff = mFFmpeg.NewMockIFFmpeg(ctrl)
		workDir = GinkgoT().TempDir()
		profile = &types.UserDoc{
			UserID:           userID,
			ChatID:           fmt.Sprintf("%d/12", dstChat),
			Caption:          "by me",
			ReplacementWords: map[string]string{"hello": "hi"},
		}
		opts = transfer.EngineOptions{
			WorkDir: workDir,
			Now:     func() time.Time { return time.Unix(1700000000, 0) },
			Sleep:   func(context.Context, time.Duration) error { return nil },
		}
		profiles.EXPECT().Get(gomock.Any(), userID).Return(profile, nil).AnyTimes()
	})
	newEngine := func() *transfer.Engine {
		return transfer.NewEngine(profiles, renamer, ff, opts)
	}

	It("relays public media through the bot without downloading", func() {
		item := docItem("a.zip", 10)
		bot.EXPECT().SendMedia(gomock.Any(), dstChat, 12, gomock.AssignableToTypeOf(&tg.InputMediaDocument{}), "hi\n\nby me").Return(1, nil)
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: bot},
			Ref:          link.Ref{Container: "chan", ItemID: 3, Visibility: link.Public},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
		})
		Expect(out.Kind).To(Equal(transfer.SentDirect))
	})

	It("sends text items as text", func() {
		item := &types.Item{ID: 4, Kind: types.KindText, Text: "hello world"}
		bot.EXPECT().SendText(gomock.Any(), dstChat, 12, "hi world\n\nby me").Return(2, nil)
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: session},
			Ref:          link.Ref{Container: "-1002222222222", ItemID: 4, Visibility: link.Private},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
			Session:      session,
		})
		Expect(out.Kind).To(Equal(transfer.SentDirect))
	})

	It("downloads private media through the fetching client and uploads through the bot", func() {
		item := docItem("a.zip", int64(len(payload)))
		bot.EXPECT().SendText(gomock.Any(), invoking, 0, "Downloading...").Return(statusID, nil)
		bot.EXPECT().EditText(gomock.Any(), invoking, statusID, gomock.Any()).Return(nil).AnyTimes()
		expectDownload(session)
		renamer.EXPECT().Rename(gomock.Any(), filepath.Join(workDir, "a.zip"), userID).DoAndReturn(func(_ context.Context, p string, _ int64) (string, error) {
			return p, nil
		})
		bot.EXPECT().Upload(gomock.Any(), filepath.Join(workDir, "a.zip"), gomock.Any()).Return(&tg.InputFile{ID: 9}, nil)
		bot.EXPECT().SendMedia(gomock.Any(), dstChat, 12, gomock.Any(), "hi\n\nby me").DoAndReturn(func(_ context.Context, _ int64, _ int, media tg.InputMediaClass, _ string) (int, error) {
			doc, ok := media.(*tg.InputMediaUploadedDocument)
			Expect(ok).To(BeTrue())
			Expect(doc.ForceFile).To(BeTrue())
			return 3, nil
		})
		bot.EXPECT().DeleteMessages(gomock.Any(), invoking, statusID).Return(nil)
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: session},
			Ref:          link.Ref{Container: "-1002222222222", ItemID: 3, Visibility: link.Private},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
			Session:      session,
		})
		Expect(out.Kind).To(Equal(transfer.Done))
		Expect(listWorkDir()).To(BeEmpty())
	})

	It("reports upload failures and removes the partial file", func() {
		item := docItem("a.zip", int64(len(payload)))
		bot.EXPECT().SendText(gomock.Any(), invoking, 0, "Downloading...").Return(statusID, nil)
		edits := []string{}
		bot.EXPECT().EditText(gomock.Any(), invoking, statusID, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) error {
			edits = append(edits, text)
			return nil
		}).AnyTimes()
		expectDownload(session)
		renamer.EXPECT().Rename(gomock.Any(), gomock.Any(), userID).DoAndReturn(func(_ context.Context, p string, _ int64) (string, error) {
			return p, nil
		})
		bot.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("FILE_PARTS_INVALID"))
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: session},
			Ref:          link.Ref{Container: "-1002222222222", ItemID: 3, Visibility: link.Private},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
			Session:      session,
		})
		Expect(out.Kind).To(Equal(transfer.Failed))
		Expect(out.String()).To(Equal("Failed."))
		Expect(edits).To(ContainElement("Upload failed: FILE_PARTS_INVALID"))
		Expect(listWorkDir()).To(BeEmpty())
	})

	It("routes files above the threshold through the relay session", func() {
		opts.Relay = relay
		opts.LogGroup = logGroup
		opts.LargeFileThreshold = 4
		item := docItem("big.mkv", int64(len(payload)))
		bot.EXPECT().SendText(gomock.Any(), invoking, 0, "Downloading...").Return(statusID, nil)
		bot.EXPECT().EditText(gomock.Any(), invoking, statusID, gomock.Any()).Return(nil).AnyTimes()
		expectDownload(session)
		renamer.EXPECT().Rename(gomock.Any(), gomock.Any(), userID).DoAndReturn(func(_ context.Context, p string, _ int64) (string, error) {
			return p, nil
		})
		relay.EXPECT().RefreshDialogs(gomock.Any()).Return(nil)
		ff.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(ffmpeg.VideoMeta{Duration: 10, Width: 640, Height: 360})
		ff.EXPECT().GenThumbnail(gomock.Any(), gomock.Any(), 5*time.Second, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, _ time.Duration, out string) error {
			return os.WriteFile(out, []byte("jpg"), 0o644)
		})
		relay.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(&tg.InputFileBig{ID: 1}, nil).Times(2)
		relay.EXPECT().SendMedia(gomock.Any(), logGroup, 0, gomock.Any(), "hi\n\nby me").Return(77, nil)
		bot.EXPECT().CopyMessage(gomock.Any(), logGroup, 77, dstChat).Return(78, nil)
		bot.EXPECT().DeleteMessages(gomock.Any(), invoking, statusID).Return(nil)
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: session},
			Ref:          link.Ref{Container: "-1002222222222", ItemID: 3, Visibility: link.Private},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
			Session:      session,
		})
		Expect(out.Kind).To(Equal(transfer.DoneLarge))
		Expect(out.String()).To(Equal("Done (Large file)."))
		Expect(listWorkDir()).To(BeEmpty())
	})

	It("keeps the persistent user thumbnail", func() {
		Expect(os.WriteFile(filepath.Join(workDir, "7.jpg"), []byte("jpg"), 0o644)).To(Succeed())
		item := &types.Item{ID: 5, Kind: types.KindVideo, Media: &types.Media{
			Document: &tg.Document{ID: 1}, Size: int64(len(payload)),
		}}
		bot.EXPECT().SendText(gomock.Any(), invoking, 0, "Downloading...").Return(statusID, nil)
		bot.EXPECT().EditText(gomock.Any(), invoking, statusID, gomock.Any()).Return(nil).AnyTimes()
		expectDownload(session)
		ff.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(ffmpeg.VideoMeta{Duration: 1, Width: 1, Height: 1})
		bot.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(&tg.InputFile{ID: 1}, nil)
		bot.EXPECT().Upload(gomock.Any(), filepath.Join(workDir, "7.jpg"), gomock.Any()).Return(&tg.InputFile{ID: 2}, nil)
		bot.EXPECT().SendMedia(gomock.Any(), dstChat, 12, gomock.Any(), "").Return(3, nil)
		bot.EXPECT().DeleteMessages(gomock.Any(), invoking, statusID).Return(nil)
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: session},
			Ref:          link.Ref{Container: "-1002222222222", ItemID: 5, Visibility: link.Private},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
			Session:      session,
		})
		Expect(out.Kind).To(Equal(transfer.Done))
		Expect(listWorkDir()).To(ConsistOf("7.jpg"))
	})

	It("removes downloaded photos that carry no file name", func() {
		item := &types.Item{ID: 6, Kind: types.KindPhoto, Media: &types.Media{
			Photo: &tg.Photo{ID: 1, AccessHash: 2, FileReference: []byte{1}, Sizes: []tg.PhotoSizeClass{
				&tg.PhotoSize{Type: "y", W: 1280, H: 720, Size: len(payload)},
			}},
			Size: int64(len(payload)),
		}}
		bot.EXPECT().SendText(gomock.Any(), invoking, 0, "Downloading...").Return(statusID, nil)
		bot.EXPECT().EditText(gomock.Any(), invoking, statusID, gomock.Any()).Return(nil).AnyTimes()
		expectDownload(session)
		bot.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p string, _ tlg.ProgressFunc) (tg.InputFileClass, error) {
			Expect(filepath.Base(p)).To(HavePrefix("dl_"))
			Expect(transfer.IsPersistentThumb(p, userID)).To(BeFalse())
			return &tg.InputFile{ID: 1}, nil
		})
		bot.EXPECT().SendMedia(gomock.Any(), dstChat, 12, gomock.AssignableToTypeOf(&tg.InputMediaUploadedPhoto{}), "").Return(3, nil)
		bot.EXPECT().DeleteMessages(gomock.Any(), invoking, statusID).Return(nil)
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: session},
			Ref:          link.Ref{Container: "-1002222222222", ItemID: 6, Visibility: link.Private},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
			Session:      session,
		})
		Expect(out.Kind).To(Equal(transfer.Done))
		Expect(listWorkDir()).To(BeEmpty())
	})

	It("reports relay failures on the status message", func() {
		opts.Relay = relay
		opts.LogGroup = logGroup
		opts.LargeFileThreshold = 4
		item := docItem("big.mkv", int64(len(payload)))
		bot.EXPECT().SendText(gomock.Any(), invoking, 0, "Downloading...").Return(statusID, nil)
		edits := []string{}
		bot.EXPECT().EditText(gomock.Any(), invoking, statusID, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, _ int, text string) error {
			edits = append(edits, text)
			return nil
		}).AnyTimes()
		expectDownload(session)
		renamer.EXPECT().Rename(gomock.Any(), gomock.Any(), userID).DoAndReturn(func(_ context.Context, p string, _ int64) (string, error) {
			return p, nil
		})
		relay.EXPECT().RefreshDialogs(gomock.Any()).Return(nil)
		ff.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(ffmpeg.VideoMeta{Duration: 10, Width: 640, Height: 360})
		ff.EXPECT().GenThumbnail(gomock.Any(), gomock.Any(), 5*time.Second, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, _ time.Duration, out string) error {
			return os.WriteFile(out, []byte("jpg"), 0o644)
		})
		relay.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(&tg.InputFileBig{ID: 1}, nil).Times(2)
		relay.EXPECT().SendMedia(gomock.Any(), logGroup, 0, gomock.Any(), gomock.Any()).Return(0, fmt.Errorf("CHAT_WRITE_FORBIDDEN"))
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: session},
			Ref:          link.Ref{Container: "-1002222222222", ItemID: 3, Visibility: link.Private},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
			Session:      session,
		})
		Expect(out.Kind).To(Equal(transfer.Failed))
		Expect(edits).To(ContainElement("Upload failed: CHAT_WRITE_FORBIDDEN"))
		Expect(listWorkDir()).To(BeEmpty())
	})

	It("converts panics into failures", func() {
		item := docItem("a.zip", 10)
		bot.EXPECT().SendMedia(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, int64, int, tg.InputMediaClass, string) (int, error) {
			panic("kaboom")
		})
		out := newEngine().Transfer(ctx, transfer.Request{
			Item:         &fetcher.Fetched{Item: item, Via: bot},
			Ref:          link.Ref{Container: "chan", ItemID: 3, Visibility: link.Public},
			UserID:       userID,
			InvokingChat: invoking,
			Bot:          bot,
		})
		Expect(out.Kind).To(Equal(transfer.Failed))
		Expect(out.String()).To(Equal("Error: kaboom"))
	})

	It("fails without a bot", func() {
		out := newEngine().Transfer(ctx, transfer.Request{Item: &fetcher.Fetched{Item: docItem("a", 1)}, UserID: userID})
		Expect(out.Success()).To(BeFalse())
	})

	It("clears in-flight claims", func() {
		Expect(newEngine().ClearInflight()).To(Equal(0))
	})
})
