package tlg

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/go-faster/errors"
	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/telegram/query"
	"github.com/gotd/td/telegram/query/dialogs"
	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"
	"github.com/sirupsen/logrus"
)

// maxDialogs bounds a dialog refresh; it only has to warm the peer cache.
const maxDialogs = 200

var errDialogLimit = errors.New("dialog limit reached")

// ProgressFunc receives the transferred and total byte counts.
type ProgressFunc func(done, total int64)

// IMessenger is the subset of the Telegram API the transfer pipeline needs,
// bound to one logged-in client. Implementations are safe for concurrent use.
//
//go:generate mockgen -source=messenger.go -destination=../../mocks/tlg/messenger.go -package=mocks
type IMessenger interface {
	// RefreshDialogs warms the peer cache from the account's dialog list.
	RefreshDialogs(ctx context.Context) error
	// GetMessage returns nil without error when the message does not exist or is a placeholder.
	GetMessage(ctx context.Context, container string, msgID int) (*tg.Message, error)
	SendText(ctx context.Context, chatID int64, replyTo int, text string) (int, error)
	EditText(ctx context.Context, chatID int64, msgID int, text string) error
	DeleteMessages(ctx context.Context, chatID int64, msgIDs ...int) error
	SendMedia(ctx context.Context, chatID int64, replyTo int, media tg.InputMediaClass, caption string) (int, error)
	Download(ctx context.Context, loc tg.InputFileLocationClass, w io.Writer) error
	Upload(ctx context.Context, path string, progress ProgressFunc) (tg.InputFileClass, error)
	CopyMessage(ctx context.Context, fromChat int64, msgID int, toChat int64) (int, error)
	Stop()
}

type messenger struct {
	cl     IClient
	sender *message.Sender
	dl     *downloader.Downloader

	mu    sync.RWMutex
	peers map[int64]tg.InputPeerClass
	names map[string]tg.InputPeerClass
}

var _ IMessenger = (*messenger)(nil)

// NewMessenger wraps a connected client.
func NewMessenger(cl IClient) IMessenger {
	api := cl.GetClient().API()
	return &messenger{
		cl:     cl,
		sender: message.NewSender(api),
		dl:     downloader.NewDownloader(),
		peers:  map[int64]tg.InputPeerClass{},
		names:  map[string]tg.InputPeerClass{},
	}
}

func (m *messenger) api() *tg.Client {
	return m.cl.GetClient().API()
}

func (m *messenger) RefreshDialogs(ctx context.Context) error {
	ll := m.getLogger("RefreshDialogs")
	n := 0
	err := query.GetDialogs(m.api()).BatchSize(100).ForEach(ctx, func(_ context.Context, elem dialogs.Elem) error {
		if id, ok := ChatIDOf(elem.Peer); ok {
			m.remember(id, elem.Peer)
		}
		n++
		if n >= maxDialogs {
			return errDialogLimit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDialogLimit) {
		return errors.Wrap(err, "iterate dialogs")
	}
	ll.Debugf("%d dialogs cached", n)
	return nil
}

func (m *messenger) GetMessage(ctx context.Context, container string, msgID int) (*tg.Message, error) {
	peer, err := m.resolve(ctx, container)
	if err != nil {
		return nil, err
	}
	input := []tg.InputMessageClass{&tg.InputMessageID{ID: msgID}}
	var res tg.MessagesMessagesClass
	if ch, ok := peer.(*tg.InputPeerChannel); ok {
		res, err = m.api().ChannelsGetMessages(ctx, &tg.ChannelsGetMessagesRequest{
			Channel: &tg.InputChannel{ChannelID: ch.ChannelID, AccessHash: ch.AccessHash},
			ID:      input,
		})
	} else {
		res, err = m.api().MessagesGetMessages(ctx, input)
	}
	if err != nil {
		return nil, errors.Wrap(err, "get messages")
	}
	return PickMessage(res, msgID)
}

func (m *messenger) SendText(ctx context.Context, chatID int64, replyTo int, text string) (int, error) {
	peer, err := m.resolveID(ctx, chatID)
	if err != nil {
		return 0, err
	}
	req := &tg.MessagesSendMessageRequest{Peer: peer, Message: text, RandomID: rand.Int64()}
	if replyTo != 0 {
		req.ReplyTo = &tg.InputReplyToMessage{ReplyToMsgID: replyTo}
	}
	upd, err := m.api().MessagesSendMessage(ctx, req)
	if err != nil {
		return 0, errors.Wrap(err, "send message")
	}
	return SentMessageID(upd), nil
}

func (m *messenger) EditText(ctx context.Context, chatID int64, msgID int, text string) error {
	peer, err := m.resolveID(ctx, chatID)
	if err != nil {
		return err
	}
	if _, err := m.api().MessagesEditMessage(ctx, &tg.MessagesEditMessageRequest{Peer: peer, ID: msgID, Message: text}); err != nil {
		return errors.Wrap(err, "edit message")
	}
	return nil
}

func (m *messenger) DeleteMessages(ctx context.Context, chatID int64, msgIDs ...int) error {
	peer, err := m.resolveID(ctx, chatID)
	if err != nil {
		return err
	}
	if ch, ok := peer.(*tg.InputPeerChannel); ok {
		_, err = m.api().ChannelsDeleteMessages(ctx, &tg.ChannelsDeleteMessagesRequest{
			Channel: &tg.InputChannel{ChannelID: ch.ChannelID, AccessHash: ch.AccessHash},
			ID:      msgIDs,
		})
	} else {
		_, err = m.api().MessagesDeleteMessages(ctx, &tg.MessagesDeleteMessagesRequest{Revoke: true, ID: msgIDs})
	}
	if err != nil {
		return errors.Wrap(err, "delete messages")
	}
	return nil
}

func (m *messenger) SendMedia(ctx context.Context, chatID int64, replyTo int, media tg.InputMediaClass, caption string) (int, error) {
	peer, err := m.resolveID(ctx, chatID)
	if err != nil {
		return 0, err
	}
	req := &tg.MessagesSendMediaRequest{Peer: peer, Media: media, Message: caption, RandomID: rand.Int64()}
	if replyTo != 0 {
		req.ReplyTo = &tg.InputReplyToMessage{ReplyToMsgID: replyTo}
	}
	upd, err := m.api().MessagesSendMedia(ctx, req)
	if err != nil {
		return 0, errors.Wrap(err, "send media")
	}
	return SentMessageID(upd), nil
}

func (m *messenger) Download(ctx context.Context, loc tg.InputFileLocationClass, w io.Writer) error {
	if _, err := m.dl.Download(m.api(), loc).Stream(ctx, w); err != nil {
		return errors.Wrap(err, "download")
	}
	return nil
}

func (m *messenger) Upload(ctx context.Context, path string, progress ProgressFunc) (tg.InputFileClass, error) {
	up := uploader.NewUploader(m.api())
	if progress != nil {
		up = up.WithProgress(uploadProgress(progress))
	}
	f, err := up.FromPath(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "upload")
	}
	return f, nil
}

func (m *messenger) CopyMessage(ctx context.Context, fromChat int64, msgID int, toChat int64) (int, error) {
	from, err := m.resolveID(ctx, fromChat)
	if err != nil {
		return 0, err
	}
	to, err := m.resolveID(ctx, toChat)
	if err != nil {
		return 0, err
	}
	upd, err := m.api().MessagesForwardMessages(ctx, &tg.MessagesForwardMessagesRequest{
		FromPeer:   from,
		ID:         []int{msgID},
		RandomID:   []int64{rand.Int64()},
		ToPeer:     to,
		DropAuthor: true,
	})
	if err != nil {
		return 0, errors.Wrap(err, "forward message")
	}
	return SentMessageID(upd), nil
}

func (m *messenger) Stop() {
	m.cl.Stop()
}

func (m *messenger) remember(chatID int64, peer tg.InputPeerClass) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.peers[chatID] = peer
}

func (m *messenger) resolve(ctx context.Context, container string) (tg.InputPeerClass, error) {
	if id, err := strconv.ParseInt(container, 10, 64); err == nil {
		return m.resolveID(ctx, id)
	}
	m.mu.RLock()
	peer, ok := m.names[container]
	m.mu.RUnlock()
	if ok {
		return peer, nil
	}
	peer, err := m.sender.Resolve(container).AsInputPeer(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPeerNotFound, container, err)
	}
	m.mu.Lock()
	m.names[container] = peer
	m.mu.Unlock()
	return peer, nil
}

func (m *messenger) resolveID(ctx context.Context, chatID int64) (tg.InputPeerClass, error) {
	m.mu.RLock()
	peer, ok := m.peers[chatID]
	m.mu.RUnlock()
	if ok {
		return peer, nil
	}
	bare, class := SplitChatID(chatID)
	if stored := m.cl.GetClient().PeerStorage.GetInputPeerById(bare); stored != nil {
		if got, ok := ChatIDOf(stored); ok && got == chatID {
			m.remember(chatID, stored)
			return stored, nil
		}
	}
	switch class {
	case PeerChannel:
		peer, err := m.lookupChannel(ctx, bare)
		if err != nil {
			return nil, err
		}
		m.remember(chatID, peer)
		return peer, nil
	case PeerChat:
		return &tg.InputPeerChat{ChatID: bare}, nil
	}
	// bots may address users they have talked to without an access hash
	return &tg.InputPeerUser{UserID: bare}, nil
}

func (m *messenger) lookupChannel(ctx context.Context, channelID int64) (tg.InputPeerClass, error) {
	chatList, err := m.api().ChannelsGetChannels(ctx, []tg.InputChannelClass{&tg.InputChannel{ChannelID: channelID}})
	if err != nil {
		return nil, fmt.Errorf("%w: channel %d: %w", ErrPeerNotFound, channelID, err)
	}
	for _, cht := range chatList.GetChats() {
		if cht.GetID() != channelID {
			continue
		}
		chn, ok := cht.(*tg.Channel)
		if !ok {
			return nil, &UnexpectedTypeErrType{ExpectedType: (*tg.Channel)(nil), GotType: cht}
		}
		return chn.AsInputPeer(), nil
	}
	return nil, fmt.Errorf("%w: channel %d", ErrPeerNotFound, channelID)
}

func (m *messenger) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.TlgModule).WithField("func", fmt.Sprintf("%T.%s", m, fn))
}

type uploadProgress ProgressFunc

func (p uploadProgress) Chunk(_ context.Context, state uploader.ProgressState) error {
	p(state.Uploaded, state.Total)
	return nil
}

// Dial connects a client for cred and wraps it in a messenger.
func Dial(sessCfg *SessionConfig, cred Credential) (IMessenger, error) {
	cl := NewTgClient(sessCfg, cred)
	if err := cl.Connect(); err != nil {
		return nil, err
	}
	return NewMessenger(cl), nil
}
