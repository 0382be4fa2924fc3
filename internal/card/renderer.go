// Package card turns trainer profiles into outbound message payloads. It is
// pure formatting: no transport calls, no storage access.
package card

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lavrov08/trainers-tinder/internal/domain"
)

// Platform constants. A photo caption caps at CaptionLimit; any message
// body caps at MessageLimit.
const (
	CaptionLimit = 1024
	MessageLimit = 4096
)

// Kind tags the outbound content variant.
type Kind int

const (
	TextOnly Kind = iota
	PhotoWithCaption
)

// Content is the outbound sum type: either plain text or a photo reference
// with a caption. Consumers branch on Kind, never on attachment probing.
type Content struct {
	Kind    Kind
	PhotoID string
	Text    string
}

// Payload is one outbound message. Action controls are attached only where
// WithControls is set; in a split card that is always the final payload.
type Payload struct {
	Content      Content
	WithControls bool
}

// Options adjust the rendered card around the profile fields.
type Options struct {
	// Prefix goes above the card, e.g. "Your profile".
	Prefix string
	// Status is an annotation under the header, e.g. "Awaiting review".
	Status string
	// Position is appended to the body, e.g. "Profile 2/7".
	Position string
	// Contact appends the owner's handle and id, used on moderation cards.
	Contact string
}

// Render produces one payload when the combined text fits the caption
// limit, otherwise a header payload (carrying the photo, if any) plus a
// body payload with the long-form description.
func Render(t *domain.Trainer, opts Options) []Payload {
	head := headerText(t, opts)
	body := bodyText(t, opts)
	full := clamp(head+"\n\n"+body, MessageLimit)

	if utf8.RuneCountInString(full) <= CaptionLimit {
		return []Payload{{Content: content(t.PhotoID, full), WithControls: true}}
	}

	return []Payload{
		{Content: content(t.PhotoID, clamp(head, CaptionLimit))},
		{Content: Content{Kind: TextOnly, Text: clamp(body, MessageLimit)}, WithControls: true},
	}
}

func headerText(t *domain.Trainer, opts Options) string {
	var b strings.Builder
	if opts.Prefix != "" {
		b.WriteString(opts.Prefix)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%s\nAge: %d\nExperience: %s\nDirection: %s",
		t.Name, t.Age, t.Experience, t.Direction)
	if opts.Status != "" {
		b.WriteString("\n\n")
		b.WriteString(opts.Status)
	}
	return b.String()
}

func bodyText(t *domain.Trainer, opts Options) string {
	var b strings.Builder
	b.WriteString("About:\n")
	b.WriteString(t.About)
	if opts.Contact != "" {
		b.WriteString("\n\n")
		b.WriteString(opts.Contact)
	}
	if opts.Position != "" {
		b.WriteString("\n\n")
		b.WriteString(opts.Position)
	}
	return b.String()
}

func content(photoID, text string) Content {
	if photoID != "" {
		return Content{Kind: PhotoWithCaption, PhotoID: photoID, Text: text}
	}
	return Content{Kind: TextOnly, Text: text}
}

// clamp cuts text at limit runes, marking the cut with an ellipsis.
func clamp(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit-3]) + "..."
}

// ContactLine formats the owner's reachable handle, falling back to the
// numeric id when no username is set.
func ContactLine(username string, userID int64) string {
	if username != "" {
		return "@" + username
	}
	return fmt.Sprintf("ID: %d", userID)
}

// Moderation renders the full profile for an admin review message,
// including the owner's contact block.
func Moderation(t *domain.Trainer) []Payload {
	return Render(t, Options{
		Prefix:  "New trainer profile awaiting moderation",
		Contact: fmt.Sprintf("Username: %s\nUser ID: %d", ContactLine(t.Username, t.UserID), t.UserID),
	})
}
