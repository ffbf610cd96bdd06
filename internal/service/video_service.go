package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"
	"vsl_edu_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VideoService struct {
	VideoRepo  *repository.VideoRepository
	LessonRepo *repository.LessonRepository
	Storage    *StorageService
}

func NewVideoService(videoRepo *repository.VideoRepository, lessonRepo *repository.LessonRepository, storage *StorageService) *VideoService {
	return &VideoService{
		VideoRepo:  videoRepo,
		LessonRepo: lessonRepo,
		Storage:    storage,
	}
}

type VideoRequest struct {
	LessonID     uint   `json:"lessonId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	VideoURL     string `json:"videoUrl" binding:"required"`
	Thumbnail    string `json:"thumbnail"`
	Duration     int    `json:"duration"`
	DisplayOrder int    `json:"displayOrder"`
}

func (s *VideoService) Create(req VideoRequest) (*model.Video, error) {
	if _, err := s.LessonRepo.FindByID(req.LessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	video := &model.Video{
		LessonID:     req.LessonID,
		Title:        req.Title,
		VideoURL:     req.VideoURL,
		Thumbnail:    req.Thumbnail,
		Duration:     req.Duration,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.VideoRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Get(id uint) (*model.Video, error) {
	video, err := s.VideoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

func (s *VideoService) ListByLesson(lessonID uint) ([]model.Video, error) {
	return s.VideoRepo.ListByLesson(lessonID)
}

type VideoUpdateRequest struct {
	Title        *string `json:"title"`
	VideoURL     *string `json:"videoUrl"`
	Thumbnail    *string `json:"thumbnail"`
	Duration     *int    `json:"duration"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (s *VideoService) Update(id uint, req VideoUpdateRequest) (*model.Video, error) {
	video, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, util.Validation("title must not be empty")
		}
		video.Title = *req.Title
	}
	if req.VideoURL != nil {
		video.VideoURL = *req.VideoURL
	}
	if req.Thumbnail != nil {
		video.Thumbnail = *req.Thumbnail
	}
	if req.Duration != nil {
		video.Duration = *req.Duration
	}
	if req.DisplayOrder != nil {
		video.DisplayOrder = *req.DisplayOrder
	}

	if err := s.VideoRepo.Update(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.VideoRepo.Delete(id)
}

// Upload stores an uploaded video file, probes it for duration,
// generates a thumbnail and records the resulting video row.
func (s *VideoService) Upload(ctx context.Context, lessonID uint, title string, fileHeader *multipart.FileHeader) (*model.Video, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".mp4", ".webm", ".mov", ".avi", ".mkv":
	default:
		return nil, util.Validation("unsupported video format: " + ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// ffmpeg needs a file on disk, so stage the upload in a temp file.
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	duration := 0
	if info, err := util.GetVideoInfo(tmpPath); err != nil {
		logger.Log.Warn("probe video failed", zap.String("file", fileHeader.Filename), zap.Error(err))
	} else {
		duration = int(info.Duration)
	}

	objectID := uuid.New().String()
	videoObject := "videos/" + objectID + ext

	videoURL, err := s.Storage.UploadFile(ctx, videoObject, tmpPath, contentTypeForExt(ext))
	if err != nil {
		return nil, fmt.Errorf("store video: %w", err)
	}

	thumbnailURL := ""
	thumbPath := tmpPath + ".jpg"
	if err := util.GenerateThumbnail(tmpPath, thumbPath, "00:00:01"); err != nil {
		logger.Log.Warn("generate thumbnail failed", zap.String("file", fileHeader.Filename), zap.Error(err))
	} else {
		defer os.Remove(thumbPath)
		thumbObject := "thumbnails/" + objectID + ".jpg"
		if url, err := s.Storage.UploadFile(ctx, thumbObject, thumbPath, "image/jpeg"); err != nil {
			logger.Log.Warn("store thumbnail failed", zap.Error(err))
		} else {
			thumbnailURL = url
		}
	}

	if title == "" {
		title = strings.TrimSuffix(fileHeader.Filename, ext)
	}

	video := &model.Video{
		LessonID:  lessonID,
		Title:     title,
		VideoURL:  videoURL,
		Thumbnail: thumbnailURL,
		Duration:  duration,
	}
	if err := s.VideoRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/x-msvideo"
	case ".mkv":
		return "video/x-matroska"
	default:
		return "application/octet-stream"
	}
}
