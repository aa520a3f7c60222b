package types

import (
	"path/filepath"
	"strings"

	"github.com/gotd/td/tg"
)

// ItemKind tags the payload carried by an Item.
type ItemKind int

const (
	KindText ItemKind = iota
	KindPhoto
	KindVideo
	KindAudio
	KindVoice
	KindVideoNote
	KindSticker
	KindDocument
)

func (k ItemKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	case KindVoice:
		return "voice"
	case KindVideoNote:
		return "video_note"
	case KindSticker:
		return "sticker"
	case KindDocument:
		return "document"
	}
	return "unknown"
}

// Media is the payload of every non-text item. Exactly one of Document and Photo is set.
type Media struct {
	Document  *tg.Document
	Photo     *tg.Photo
	FileName  string
	MimeType  string
	Size      int64
	Duration  float64
	Width     int
	Height    int
	Title     string
	Performer string
}

// Item is a source message reduced to what a transfer needs.
type Item struct {
	ID    int
	Kind  ItemKind
	Text  string // message text, or the caption for media items
	Media *Media
}

func (i *Item) HasFileName() bool {
	return i.Media != nil && i.Media.FileName != ""
}

// Relayable reports whether the item can be re-sent by referencing its existing media handle.
func (i *Item) Relayable() bool {
	if i.Media == nil {
		return false
	}
	return i.Media.Document != nil || i.Media.Photo != nil
}

// Ext returns the lower-cased extension of the item's file name, if any.
func (i *Item) Ext() string {
	if i.Media == nil {
		return ""
	}
	return strings.ToLower(filepath.Ext(i.Media.FileName))
}

// FileLocation returns the download location of the item's media.
func (i *Item) FileLocation() (tg.InputFileLocationClass, bool) {
	if i.Media == nil {
		return nil, false
	}
	if doc := i.Media.Document; doc != nil {
		return doc.AsInputDocumentFileLocation(), true
	}
	if ph := i.Media.Photo; ph != nil {
		size, ok := largestPhotoSize(ph)
		if !ok {
			return nil, false
		}
		return &tg.InputPhotoFileLocation{
			ID:            ph.ID,
			AccessHash:    ph.AccessHash,
			FileReference: ph.FileReference,
			ThumbSize:     size,
		}, true
	}
	return nil, false
}

// InputMedia references the existing media handle for a zero-download re-send.
func (i *Item) InputMedia() (tg.InputMediaClass, bool) {
	if i.Media == nil {
		return nil, false
	}
	if doc := i.Media.Document; doc != nil {
		return &tg.InputMediaDocument{ID: doc.AsInput()}, true
	}
	if ph := i.Media.Photo; ph != nil {
		return &tg.InputMediaPhoto{ID: ph.AsInput()}, true
	}
	return nil, false
}

// ItemFromMessage converts a message into an Item. It reports false for messages
// carrying neither text nor a supported media payload.
func ItemFromMessage(msg *tg.Message) (*Item, bool) {
	if msg == nil {
		return nil, false
	}
	item := &Item{ID: msg.ID, Text: msg.Message}
	switch m := msg.Media.(type) {
	case *tg.MessageMediaPhoto:
		ph, ok := m.Photo.(*tg.Photo)
		if !ok {
			return nil, false
		}
		item.Kind = KindPhoto
		item.Media = &Media{Photo: ph, MimeType: "image/jpeg"}
		if size, ok := largestPhotoSize(ph); ok {
			item.Media.Size = photoSizeBytes(ph, size)
		}
		return item, true
	case *tg.MessageMediaDocument:
		doc, ok := m.Document.(*tg.Document)
		if !ok {
			return nil, false
		}
		item.Media = &Media{Document: doc, MimeType: doc.MimeType, Size: doc.Size}
		item.Kind = fillFromDocument(item.Media, doc, m)
		return item, true
	}
	if item.Text == "" {
		return nil, false
	}
	item.Kind = KindText
	return item, true
}

func fillFromDocument(media *Media, doc *tg.Document, m *tg.MessageMediaDocument) ItemKind {
	kind := KindDocument
	animated := false
	for _, attr := range doc.Attributes {
		switch v := attr.(type) {
		case *tg.DocumentAttributeAnimated:
			animated = true
		case *tg.DocumentAttributeFilename:
			media.FileName = v.FileName
		case *tg.DocumentAttributeSticker:
			kind = KindSticker
		case *tg.DocumentAttributeVideo:
			media.Duration = v.Duration
			media.Width = v.W
			media.Height = v.H
			if kind == KindSticker {
				continue
			}
			if v.RoundMessage || m.Round {
				kind = KindVideoNote
			} else {
				kind = KindVideo
			}
		case *tg.DocumentAttributeAudio:
			media.Duration = float64(v.Duration)
			media.Title = v.Title
			media.Performer = v.Performer
			if v.Voice || m.Voice {
				kind = KindVoice
			} else {
				kind = KindAudio
			}
		}
	}
	// animations tagged as video keep their document form
	if animated && kind == KindVideo {
		kind = KindDocument
	}
	return kind
}

func largestPhotoSize(ph *tg.Photo) (string, bool) {
	best, bestDim := "", 0
	for _, s := range ph.Sizes {
		switch v := s.(type) {
		case *tg.PhotoSize:
			if d := max(v.W, v.H); d > bestDim {
				best, bestDim = v.Type, d
			}
		case *tg.PhotoSizeProgressive:
			if d := max(v.W, v.H); d > bestDim {
				best, bestDim = v.Type, d
			}
		}
	}
	return best, best != ""
}

func photoSizeBytes(ph *tg.Photo, sizeType string) int64 {
	for _, s := range ph.Sizes {
		switch v := s.(type) {
		case *tg.PhotoSize:
			if v.Type == sizeType {
				return int64(v.Size)
			}
		case *tg.PhotoSizeProgressive:
			if v.Type == sizeType && len(v.Sizes) > 0 {
				return int64(v.Sizes[len(v.Sizes)-1])
			}
		}
	}
	return 0
}
