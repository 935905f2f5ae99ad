package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"lab-notebook-be/internal/dto"
	"lab-notebook-be/internal/pkg/apperror"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/pkg/blobstore"

	"github.com/google/uuid"
)

const (
	reactionImagePrefix  = "reactions"
	reactionImageURLBase = "/static/reactions/"
	defaultImageExt      = ".png"
)

// imageExtPattern is what a client extension must look like to be kept in the
// blob key and URL.
var imageExtPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,10}$`)

type IReactionImageService interface {
	Upload(ctx context.Context, req *dto.UploadReactionImageRequest) (*dto.UploadReactionImageResponse, error)
	Open(ctx context.Context, name string) (blobstore.Info, io.ReadCloser, error)
}

type reactionImageService struct {
	store  blobstore.Store
	logger logger.ILogger
}

func NewReactionImageService(store blobstore.Store, logger logger.ILogger) IReactionImageService {
	return &reactionImageService{
		store:  store,
		logger: logger,
	}
}

// Upload stores an image under a fresh random name, keeping the client's file
// extension, and returns the public URL it is served from.
func (s *reactionImageService) Upload(ctx context.Context, req *dto.UploadReactionImageRequest) (*dto.UploadReactionImageResponse, error) {
	if req == nil || req.Body == nil {
		return nil, apperror.Validation("file is required")
	}
	if !strings.HasPrefix(strings.ToLower(req.ContentType), "image/") {
		return nil, apperror.UnsupportedMedia("Only image uploads are allowed")
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + imageExtension(req.Filename)
	key := path.Join(reactionImagePrefix, name)

	info, err := s.store.Put(ctx, key, req.Body, blobstore.PutOptions{ContentType: req.ContentType})
	if err != nil {
		return nil, fmt.Errorf("store reaction image: %w", err)
	}

	s.logger.Info("REACTION_IMAGE", "Reaction image stored", map[string]interface{}{
		"key":    key,
		"size":   info.Size,
		"driver": string(s.store.Driver()),
	})

	return &dto.UploadReactionImageResponse{Url: reactionImageURLBase + name}, nil
}

// Open returns a stored image by the file name found in its URL.
func (s *reactionImageService) Open(ctx context.Context, name string) (blobstore.Info, io.ReadCloser, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return blobstore.Info{}, nil, apperror.NotFound("reaction image not found")
	}

	info, body, err := s.store.Get(ctx, path.Join(reactionImagePrefix, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return blobstore.Info{}, nil, apperror.Wrap(apperror.KindNotFound, "reaction image not found", err)
		}
		return blobstore.Info{}, nil, fmt.Errorf("read reaction image %s: %w", name, err)
	}
	return info, body, nil
}

func imageExtension(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	if !imageExtPattern.MatchString(ext) {
		return defaultImageExt
	}
	return ext
}
