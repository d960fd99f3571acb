package mail

import (
	"net/http"

	"github.com/opentracing/opentracing-go"
	"golang.org/x/net/context"

	"github.com/customeros/graphmail/dto"
	"github.com/customeros/graphmail/internal/tracing"
	"github.com/customeros/graphmail/internal/utils"
)

func (s *mailService) ListFolders(ctx context.Context) ([]dto.MailFolder, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.ListFolders")
	defer span.Finish()
	tracing.TagComponentService(span)

	var collection dto.MailFolderCollection
	err := s.doRequest(ctx, http.MethodGet, s.userPath("/mailFolders"), nil, &collection)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to list folders: %v", err)
		return nil, err
	}

	span.LogKV("result.count", len(collection.Value))
	return collection.Value, nil
}

func (s *mailService) CreateFolder(ctx context.Context, displayName string) (*dto.MailFolder, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.CreateFolder")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("displayName", displayName)

	if utils.IsBlank(displayName) {
		tracing.TraceErr(span, ErrEmptyFolderName)
		return nil, ErrEmptyFolderName
	}

	request := dto.CreateFolderRequest{DisplayName: displayName}

	var folder dto.MailFolder
	err := s.doRequest(ctx, http.MethodPost, s.userPath("/mailFolders"), request, &folder)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to create folder %q: %v", displayName, err)
		return nil, err
	}

	tracing.TagFolderId(span, folder.ID)
	s.log.Infof("created folder %q (%s)", folder.DisplayName, folder.ID)
	return &folder, nil
}
