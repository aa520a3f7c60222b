// Package transfer moves one fetched item to the user's destination chat.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirdaaee/TGSaver/internal/facade"
	"github.com/amirdaaee/TGSaver/internal/fetcher"
	"github.com/amirdaaee/TGSaver/internal/ffmpeg"
	"github.com/amirdaaee/TGSaver/internal/link"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gotd/td/tg"
	"github.com/sirupsen/logrus"
)

// DefaultLargeFileThreshold is the largest file the bot uploads on its own.
const DefaultLargeFileThreshold int64 = 2 << 30

const (
	statusDownloading = "Downloading..."
	statusRenaming    = "Renaming..."
	statusLarge       = "File is larger than 2GB. Using alternative method..."
	statusUploading   = "Uploading..."
)

var (
	ErrNoBot      = errors.New("no bot client")
	ErrNoDownload = errors.New("item has no downloadable media")
)

var (
	videoExts = map[string]struct{}{
		".mp4": {}, ".avi": {}, ".mkv": {}, ".mov": {}, ".wmv": {},
		".flv": {}, ".webm": {}, ".m4v": {}, ".3gp": {}, ".ogv": {},
	}
	audioExts = map[string]struct{}{
		".mp3": {}, ".wav": {}, ".flac": {}, ".aac": {}, ".ogg": {},
		".wma": {}, ".m4a": {}, ".opus": {}, ".aiff": {}, ".ac3": {},
	}
)

// Request describes one item transfer.
type Request struct {
	Item         *fetcher.Fetched
	Ref          link.Ref
	UserID       int64
	InvokingChat int64
	Bot          tlg.IMessenger
	Session      tlg.IMessenger
}

// IEngine transfers items. Transfer never returns an error; failures are folded into the Outcome.
//
//go:generate mockgen -source=engine.go -destination=../../mocks/transfer/engine.go -package=mocks
type IEngine interface {
	Transfer(ctx context.Context, req Request) Outcome
	// ClearInflight drops every local path claim and returns how many there were.
	ClearInflight() int
}

type EngineOptions struct {
	WorkDir string
	// Relay and LogGroup enable the large file route; both must be set.
	Relay              tlg.IMessenger
	LogGroup           int64
	LargeFileThreshold int64
	Now                func() time.Time
	Sleep              tlg.SleepFunc
}

type Engine struct {
	profiles facade.IProfileStore
	renamer  IRenamer
	ff       ffmpeg.IFFmpeg
	opts     EngineOptions

	mu       sync.Mutex
	inflight map[string]struct{}
}

var _ IEngine = (*Engine)(nil)

// job carries per-transfer state between the steps of Transfer.
type job struct {
	Request
	dst      Destination
	caption  string
	statusID int
	path     string
	thumb    string
	ll       *logrus.Entry
}

func (e *Engine) Transfer(ctx context.Context, req Request) (out Outcome) {
	ll := e.getLogger("Transfer").WithField("ref", req.Ref.Key()).WithField("user", req.UserID)
	defer func() {
		if r := recover(); r != nil {
			ll.Errorf("recovered: %v", r)
			out = failed(fmt.Sprint(r))
		}
	}()
	if req.Bot == nil {
		return failed(ErrNoBot.Error())
	}
	if req.Item == nil || req.Item.Item == nil {
		return failed("item missing")
	}
	j := &job{Request: req, ll: ll}
	if err := e.prepare(ctx, j); err != nil {
		ll.WithError(err).Error("can not read profile")
		return failed(err.Error())
	}
	if j.Item.Kind == types.KindText {
		if _, err := j.Bot.SendText(ctx, j.dst.ChatID, j.dst.ReplyTo, j.caption); err != nil {
			return failed(err.Error())
		}
		return Outcome{Kind: SentDirect}
	}
	if j.Ref.Visibility == link.Public && j.Item.Relayable() && e.sendDirect(ctx, j) {
		return Outcome{Kind: SentDirect}
	}
	return e.viaDownload(ctx, j)
}

func (e *Engine) prepare(ctx context.Context, j *job) error {
	doc, err := e.profiles.Get(ctx, j.UserID)
	if err != nil {
		return err
	}
	j.dst = ParseDestination(doc.Destination(), j.InvokingChat)
	if doc != nil {
		j.caption = BuildCaption(ApplyCaptionRules(j.Item.Text, doc.ReplacementWords, doc.DeleteWords), doc.Caption)
	} else {
		j.caption = j.Item.Text
	}
	return nil
}

// sendDirect re-sends the existing media handle through the bot.
func (e *Engine) sendDirect(ctx context.Context, j *job) bool {
	media, ok := j.Item.InputMedia()
	if !ok {
		return false
	}
	if _, err := j.Bot.SendMedia(ctx, j.dst.ChatID, j.dst.ReplyTo, media, directCaption(j.Item.Item, j.caption)); err != nil {
		j.ll.WithError(err).Debug("direct relay refused, downloading")
		return false
	}
	return true
}

func directCaption(item *types.Item, caption string) string {
	switch item.Kind {
	case types.KindVideoNote, types.KindVoice, types.KindSticker:
		return ""
	}
	return caption
}

func (e *Engine) viaDownload(ctx context.Context, j *job) Outcome {
	if j.Item.Kind == types.KindSticker {
		// try the sticker handle first; download only when that fails
		if media, ok := j.Item.InputMedia(); ok {
			if _, err := j.Bot.SendMedia(ctx, j.dst.ChatID, j.dst.ReplyTo, media, ""); err == nil {
				return Outcome{Kind: Done}
			}
		}
	}
	id, err := j.Bot.SendText(ctx, j.InvokingChat, 0, statusDownloading)
	if err != nil {
		j.ll.WithError(err).Warn("can not post status")
	}
	j.statusID = id

	defer func() { e.release(j.path) }()
	if err := e.download(ctx, j); err != nil {
		j.ll.WithError(err).Error("download failed")
		e.setStatus(ctx, j, Outcome{Kind: Failed}.String())
		e.discard(j)
		return Outcome{Kind: Failed}
	}

	if j.Item.HasFileName() {
		e.setStatus(ctx, j, statusRenaming)
		if p, err := e.renamer.Rename(ctx, j.path, j.UserID); err != nil {
			j.ll.WithError(err).Warn("rename skipped")
		} else {
			j.path = e.reclaim(j.path, p)
		}
	}
	st, err := os.Stat(j.path)
	if err != nil {
		e.discard(j)
		return failed(err.Error())
	}
	if thumb, ok := UserThumb(e.opts.WorkDir, j.UserID); ok {
		j.thumb = thumb
	}
	if st.Size() > e.threshold() && e.opts.Relay != nil && e.opts.LogGroup != 0 {
		return e.uploadLarge(ctx, j)
	}
	return e.upload(ctx, j)
}

func (e *Engine) download(ctx context.Context, j *job) error {
	loc, ok := j.Item.FileLocation()
	if !ok {
		return ErrNoDownload
	}
	j.path = e.claim(filepath.Join(e.opts.WorkDir, LocalName(j.Item.Item, e.now())))
	f, err := os.Create(j.path)
	if err != nil {
		return err
	}
	w := &countingWriter{w: f, total: j.Item.Media.Size, progress: e.progress(ctx, j, statusDownloading)}
	dlErr := e.downloader(j).Download(ctx, loc, w)
	if err := f.Close(); err != nil && dlErr == nil {
		dlErr = err
	}
	return dlErr
}

// downloader picks the client the item was fetched through; its file handles are bound to it.
func (e *Engine) downloader(j *job) tlg.IMessenger {
	switch {
	case j.Item.Via != nil:
		return j.Item.Via
	case j.Session != nil:
		return j.Session
	}
	return j.Bot
}

func (e *Engine) uploadLarge(ctx context.Context, j *job) Outcome {
	e.setStatus(ctx, j, statusLarge)
	defer e.discard(j)
	if err := e.opts.Relay.RefreshDialogs(ctx); err != nil {
		j.ll.WithError(err).Warn("relay dialogs refresh failed")
	}
	meta := e.ff.Probe(ctx, j.path)
	if j.thumb == "" {
		j.thumb = e.screenshot(ctx, j, meta)
	}
	err := func() error {
		media, err := e.buildMedia(ctx, e.opts.Relay, j, types.KindDocument, meta, e.progress(ctx, j, statusUploading))
		if err != nil {
			return err
		}
		staged, err := e.opts.Relay.SendMedia(ctx, e.opts.LogGroup, 0, media, e.uploadCaption(j))
		if err != nil {
			return err
		}
		_, err = j.Bot.CopyMessage(ctx, e.opts.LogGroup, staged, j.dst.ChatID)
		return err
	}()
	if err != nil {
		j.ll.WithError(err).Error("relay upload failed")
		e.setStatus(ctx, j, "Upload failed: "+Truncate(err.Error(), 60))
		return Outcome{Kind: Failed}
	}
	e.dropStatus(ctx, j)
	return Outcome{Kind: DoneLarge}
}

func (e *Engine) upload(ctx context.Context, j *job) Outcome {
	e.setStatus(ctx, j, statusUploading)
	kind := UploadKind(j.Item.Item, j.path)
	meta := ffmpeg.VideoMeta{Duration: 1, Width: 1, Height: 1}
	if kind == types.KindVideo {
		meta = e.ff.Probe(ctx, j.path)
		if j.thumb == "" {
			j.thumb = e.screenshot(ctx, j, meta)
		}
	}
	err := func() error {
		media, err := e.buildMedia(ctx, j.Bot, j, kind, meta, e.progress(ctx, j, statusUploading))
		if err != nil {
			return err
		}
		_, err = j.Bot.SendMedia(ctx, j.dst.ChatID, j.dst.ReplyTo, media, e.uploadCaptionFor(j, kind))
		return err
	}()
	if err != nil {
		j.ll.WithError(err).Error("upload failed")
		e.setStatus(ctx, j, "Upload failed: "+Truncate(err.Error(), 60))
		e.discard(j)
		return Outcome{Kind: Failed}
	}
	e.discard(j)
	e.dropStatus(ctx, j)
	return Outcome{Kind: Done}
}

// UploadKind decides how a downloaded file is sent: by native kind, or by extension for documents.
func UploadKind(item *types.Item, path string) types.ItemKind {
	if item.Kind != types.KindDocument {
		return item.Kind
	}
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := videoExts[ext]; ok {
		return types.KindVideo
	}
	if _, ok := audioExts[ext]; ok {
		return types.KindAudio
	}
	return types.KindDocument
}

func (e *Engine) uploadCaption(j *job) string {
	if j.Item.Text == "" {
		return ""
	}
	return j.caption
}

func (e *Engine) uploadCaptionFor(j *job, kind types.ItemKind) string {
	switch kind {
	case types.KindVideoNote, types.KindVoice, types.KindSticker:
		return ""
	}
	return e.uploadCaption(j)
}

func (e *Engine) buildMedia(ctx context.Context, via tlg.IMessenger, j *job, kind types.ItemKind, meta ffmpeg.VideoMeta, progress tlg.ProgressFunc) (tg.InputMediaClass, error) {
	file, err := via.Upload(ctx, j.path, progress)
	if err != nil {
		return nil, err
	}
	if kind == types.KindPhoto {
		return &tg.InputMediaUploadedPhoto{File: file}, nil
	}
	doc := &tg.InputMediaUploadedDocument{File: file, MimeType: mimeOf(j.path, j.Item.Item)}
	nameAttr := &tg.DocumentAttributeFilename{FileName: filepath.Base(j.path)}
	switch kind {
	case types.KindVideo:
		doc.Attributes = []tg.DocumentAttributeClass{
			&tg.DocumentAttributeVideo{Duration: float64(meta.Duration), W: meta.Width, H: meta.Height, SupportsStreaming: true},
			nameAttr,
		}
	case types.KindVideoNote:
		doc.Attributes = []tg.DocumentAttributeClass{
			&tg.DocumentAttributeVideo{RoundMessage: true, Duration: j.Item.Media.Duration, W: j.Item.Media.Width, H: j.Item.Media.Height},
		}
	case types.KindVoice:
		doc.Attributes = []tg.DocumentAttributeClass{
			&tg.DocumentAttributeAudio{Voice: true, Duration: int(j.Item.Media.Duration)},
		}
	case types.KindAudio:
		doc.Attributes = []tg.DocumentAttributeClass{
			&tg.DocumentAttributeAudio{Duration: int(j.Item.Media.Duration), Title: j.Item.Media.Title, Performer: j.Item.Media.Performer},
			nameAttr,
		}
	default:
		doc.Attributes = []tg.DocumentAttributeClass{nameAttr}
		doc.ForceFile = true
	}
	if j.thumb != "" && kind != types.KindVoice && kind != types.KindVideoNote {
		thumb, err := via.Upload(ctx, j.thumb, nil)
		if err != nil {
			j.ll.WithError(err).Warn("thumbnail upload failed")
		} else {
			doc.Thumb = thumb
		}
	}
	return doc, nil
}

func mimeOf(path string, item *types.Item) string {
	if m, err := mimetype.DetectFile(path); err == nil && m.String() != "application/octet-stream" {
		return m.String()
	}
	if item.Media != nil && item.Media.MimeType != "" {
		return item.Media.MimeType
	}
	return "application/octet-stream"
}

// screenshot grabs a frame at half the duration; an empty result means no thumbnail.
func (e *Engine) screenshot(ctx context.Context, j *job, meta ffmpeg.VideoMeta) string {
	out := filepath.Join(e.opts.WorkDir, "thumb_"+strconv.FormatInt(e.now().UnixNano(), 10)+".jpg")
	at := time.Duration(meta.Duration/2) * time.Second
	if err := e.ff.GenThumbnail(ctx, j.path, at, out); err != nil {
		j.ll.WithError(err).Debug("no thumbnail")
		return ""
	}
	return out
}

func (e *Engine) progress(ctx context.Context, j *job, label string) tlg.ProgressFunc {
	th := newProgressThrottle(e.now)
	return func(done, total int64) {
		if text, ok := th.Step(done, total); ok {
			e.setStatus(ctx, j, label+"\n\n"+text)
		}
	}
}

// setStatus edits the status message; edit failures never abort the transfer.
func (e *Engine) setStatus(ctx context.Context, j *job, text string) {
	if j.statusID == 0 {
		return
	}
	err := tlg.RetryFloodWaitWith(ctx, e.sleep(), func(ctx context.Context) error {
		return j.Bot.EditText(ctx, j.InvokingChat, j.statusID, text)
	})
	if err != nil {
		j.ll.WithError(err).Debug("status edit failed")
	}
}

func (e *Engine) dropStatus(ctx context.Context, j *job) {
	if j.statusID == 0 {
		return
	}
	if err := j.Bot.DeleteMessages(ctx, j.InvokingChat, j.statusID); err != nil {
		j.ll.WithError(err).Debug("status delete failed")
	}
}

func (e *Engine) discard(j *job) {
	removeArtifact(j.path, j.UserID)
	removeArtifact(j.thumb, j.UserID)
}

// claim reserves a local path, prefixing a stamp when another transfer already holds it.
func (e *Engine) claim(path string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, taken := e.inflight[path]; taken {
		path = filepath.Join(filepath.Dir(path), strconv.FormatInt(e.now().UnixNano(), 10)+"_"+filepath.Base(path))
	}
	e.inflight[path] = struct{}{}
	return path
}

func (e *Engine) reclaim(oldPath, newPath string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, oldPath)
	e.inflight[newPath] = struct{}{}
	return newPath
}

func (e *Engine) release(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, path)
}

func (e *Engine) ClearInflight() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.inflight)
	e.inflight = map[string]struct{}{}
	return n
}

func (e *Engine) threshold() int64 {
	if e.opts.LargeFileThreshold > 0 {
		return e.opts.LargeFileThreshold
	}
	return DefaultLargeFileThreshold
}

func (e *Engine) now() time.Time {
	if e.opts.Now != nil {
		return e.opts.Now()
	}
	return time.Now()
}

func (e *Engine) sleep() tlg.SleepFunc {
	if e.opts.Sleep != nil {
		return e.opts.Sleep
	}
	return tlg.Sleep
}

func (e *Engine) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.TransferModule).WithField("func", fmt.Sprintf("%T.%s", e, fn))
}

func NewEngine(profiles facade.IProfileStore, renamer IRenamer, ff ffmpeg.IFFmpeg, opts EngineOptions) *Engine {
	return &Engine{
		profiles: profiles,
		renamer:  renamer,
		ff:       ff,
		opts:     opts,
		inflight: map[string]struct{}{},
	}
}

type countingWriter struct {
	w        io.Writer
	done     int64
	total    int64
	progress tlg.ProgressFunc
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.done += int64(n)
	if c.progress != nil && c.total > 0 {
		c.progress(c.done, c.total)
	}
	return n, err
}
