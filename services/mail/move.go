package mail

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/opentracing/opentracing-go"
	"golang.org/x/net/context"

	"github.com/customeros/graphmail/dto"
	"github.com/customeros/graphmail/internal/tracing"
	"github.com/customeros/graphmail/internal/utils"
)

const junkFolderName = "Junk Email"

func (s *mailService) MoveEmail(ctx context.Context, messageID, destinationFolderID string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.MoveEmail")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagMessageId(span, messageID)
	tracing.TagFolderId(span, destinationFolderID)

	if utils.IsBlank(messageID) {
		tracing.TraceErr(span, ErrMessageIDMissing)
		return ErrMessageIDMissing
	}
	if utils.IsBlank(destinationFolderID) {
		tracing.TraceErr(span, ErrFolderIDMissing)
		return ErrFolderIDMissing
	}

	request := dto.MoveMessageRequest{DestinationID: destinationFolderID}

	err := s.doRequest(ctx, http.MethodPost, s.userPath("/messages/"+url.PathEscape(messageID)+"/move"), request, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to move email %s to folder %s: %v", messageID, destinationFolderID, err)
		return err
	}

	return nil
}

func (s *mailService) DeleteEmail(ctx context.Context, messageID string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.DeleteEmail")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagMessageId(span, messageID)

	if utils.IsBlank(messageID) {
		tracing.TraceErr(span, ErrMessageIDMissing)
		return ErrMessageIDMissing
	}

	err := s.doRequest(ctx, http.MethodDelete, s.userPath("/messages/"+url.PathEscape(messageID)), nil, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to delete email %s: %v", messageID, err)
		return err
	}

	return nil
}

func (s *mailService) MoveEmailToJunk(ctx context.Context, messageID string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.MoveEmailToJunk")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagMessageId(span, messageID)

	if utils.IsBlank(messageID) {
		tracing.TraceErr(span, ErrMessageIDMissing)
		return ErrMessageIDMissing
	}

	folder, err := s.findFolderByName(ctx, junkFolderName)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to look up %q folder: %v", junkFolderName, err)
		return err
	}
	if folder == nil {
		s.log.Warnf("mailbox has no %q folder, message %s left in place", junkFolderName, messageID)
		return nil
	}

	return s.MoveEmail(ctx, messageID, folder.ID)
}

// findFolderByName asks the service for folders matching the display name
// and returns the first hit, or nil when there is none.
func (s *mailService) findFolderByName(ctx context.Context, displayName string) (*dto.MailFolder, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("displayName eq '%s'", strings.ReplaceAll(displayName, "'", "''")))

	var collection dto.MailFolderCollection
	err := s.doRequest(ctx, http.MethodGet, s.userPath("/mailFolders?"+query.Encode()), nil, &collection)
	if err != nil {
		return nil, err
	}

	if len(collection.Value) == 0 {
		return nil, nil
	}
	return &collection.Value[0], nil
}
