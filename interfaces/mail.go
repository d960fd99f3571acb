package interfaces

import (
	"context"

	"github.com/customeros/graphmail/dto"
)

type MailService interface {
	// SendEmail sends a plain-text email to the given recipients.
	SendEmail(ctx context.Context, subject, body string, recipients []string) error
	// ReadEmails returns the first top messages of the mailbox in the
	// service's default ordering. It never paginates past the first page.
	ReadEmails(ctx context.Context, top int) ([]dto.Message, error)
	MoveEmail(ctx context.Context, messageID, destinationFolderID string) error
	MarkEmailRead(ctx context.Context, messageID string, isRead bool) error
	DeleteEmail(ctx context.Context, messageID string) error
	ListFolders(ctx context.Context) ([]dto.MailFolder, error)
	CreateFolder(ctx context.Context, displayName string) (*dto.MailFolder, error)
	// MoveEmailToJunk moves the message into the mailbox's "Junk Email"
	// folder. When the mailbox has no such folder the message is left in
	// place and no error is returned.
	MoveEmailToJunk(ctx context.Context, messageID string) error
	ReplyToEmail(ctx context.Context, messageID, comment string) error
	ForwardEmail(ctx context.Context, messageID, comment string, recipients []string) error
}
