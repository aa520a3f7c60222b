package tlg

import (
	"github.com/gotd/td/tg"
)

const channelChatIDOffset int64 = 1000000000000

// ChatIDOf maps an input peer to its chat id: users positive, basic groups -id,
// channels -100<id>.
func ChatIDOf(peer tg.InputPeerClass) (int64, bool) {
	switch p := peer.(type) {
	case *tg.InputPeerUser:
		return p.UserID, true
	case *tg.InputPeerChat:
		return -p.ChatID, true
	case *tg.InputPeerChannel:
		return -(channelChatIDOffset + p.ChannelID), true
	}
	return 0, false
}

// PeerClass identifies which kind of entity a chat id points at.
type PeerClass int

const (
	PeerUser PeerClass = iota
	PeerChat
	PeerChannel
)

// SplitChatID returns the bare entity id and class encoded in a chat id.
func SplitChatID(chatID int64) (int64, PeerClass) {
	switch {
	case chatID <= -channelChatIDOffset:
		return -chatID - channelChatIDOffset, PeerChannel
	case chatID < 0:
		return -chatID, PeerChat
	}
	return chatID, PeerUser
}

// SentMessageID digs the id of the message a send/forward call produced out of its updates.
func SentMessageID(upd tg.UpdatesClass) int {
	switch u := upd.(type) {
	case *tg.UpdateShortSentMessage:
		return u.ID
	case *tg.Updates:
		return idFromUpdates(u.Updates)
	case *tg.UpdatesCombined:
		return idFromUpdates(u.Updates)
	}
	return 0
}

func idFromUpdates(list []tg.UpdateClass) int {
	for _, x := range list {
		switch v := x.(type) {
		case *tg.UpdateMessageID:
			return v.ID
		case *tg.UpdateNewMessage:
			if m, ok := v.Message.(*tg.Message); ok {
				return m.ID
			}
		case *tg.UpdateNewChannelMessage:
			if m, ok := v.Message.(*tg.Message); ok {
				return m.ID
			}
		}
	}
	return 0
}

// PickMessage returns msgID out of a getMessages result; nil when the message is
// missing, deleted or a service message.
func PickMessage(res tg.MessagesMessagesClass, msgID int) (*tg.Message, error) {
	modified, ok := res.AsModified()
	if !ok {
		return nil, &UnexpectedTypeErrType{ExpectedType: (tg.ModifiedMessagesMessages)(nil), GotType: res}
	}
	for _, cls := range modified.GetMessages() {
		if msg, ok := cls.(*tg.Message); ok && msg.ID == msgID {
			return msg, nil
		}
	}
	return nil, nil
}
