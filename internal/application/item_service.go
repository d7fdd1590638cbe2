package application

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/gateway"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
	"github.com/founditapp/foundit-backend/pkg/helpers"
	"github.com/founditapp/foundit-backend/pkg/mailer"
)

// ItemService owns the listing lifecycle: report, browse, retrieve, delete,
// photo upload and image analysis. Ownership checks happen here so they are
// testable without HTTP.
type ItemService struct {
	Items        repository.ItemRepository
	Users        repository.UserRepository
	Matcher      gateway.Matcher
	GCS          *storage.Client
	GCSBucket    string
	ES           *elasticsearch.Client
	ESItemsIndex string
	Rabbit       *helpers.RabbitPublisher
	Logger       *logrus.Logger
}

func NewItemService(items repository.ItemRepository, users repository.UserRepository, matcher gateway.Matcher, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esItemsIndex string, rabbit *helpers.RabbitPublisher, logger *logrus.Logger) *ItemService {
	return &ItemService{
		Items:        items,
		Users:        users,
		Matcher:      matcher,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
		ES:           es,
		ESItemsIndex: esItemsIndex,
		Rabbit:       rabbit,
		Logger:       logger,
	}
}

type ReportItemInput struct {
	Type          entity.ItemType
	Title         string
	Description   string
	Category      string
	Location      string
	ImageURL      string
	ContactNumber string
}

func (s *ItemService) List(ctx context.Context, t entity.ItemType) ([]entity.Item, error) {
	if !t.Valid() {
		return nil, ErrInvalidItem
	}
	return s.Items.List(ctx, t)
}

// Report creates a new listing owned by the session's user. The id is the
// type prefix plus the creation unix-millisecond; two reports of the same
// type within one millisecond would collide, a known limitation.
func (s *ItemService) Report(ctx context.Context, sess *entity.Session, in ReportItemInput) (*entity.Item, error) {
	if sess == nil {
		return nil, ErrNoSession
	}
	if !in.Type.Valid() {
		return nil, ErrInvalidItem
	}
	now := time.Now()
	it := entity.Item{
		ID:            in.Type.Prefix() + strconv.FormatInt(now.UnixMilli(), 10),
		Type:          in.Type,
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Location:      in.Location,
		ImageURL:      in.ImageURL,
		ContactNumber: in.ContactNumber,
		Timestamp:     now,
		OwnerID:       sess.UserID,
		Retrieved:     false,
	}
	if err := s.Items.Add(ctx, it); err != nil {
		return nil, err
	}
	s.indexItem(ctx, &it)
	return &it, nil
}

// MarkRetrieved closes a listing. Only the owner may do it; repeating the
// call is harmless and an item never becomes un-retrieved.
func (s *ItemService) MarkRetrieved(ctx context.Context, sess *entity.Session, id string) error {
	it, err := s.authorize(ctx, sess, id)
	if err != nil {
		return err
	}
	if err := s.Items.MarkRetrieved(ctx, id); err != nil {
		return err
	}
	it.Retrieved = true
	s.indexItem(ctx, it)
	s.queueRetrievedEmail(ctx, sess, it)
	return nil
}

// Delete removes a listing permanently. Owner only.
func (s *ItemService) Delete(ctx context.Context, sess *entity.Session, id string) error {
	if _, err := s.authorize(ctx, sess, id); err != nil {
		return err
	}
	if err := s.Items.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *ItemService) authorize(ctx context.Context, sess *entity.Session, id string) (*entity.Item, error) {
	if sess == nil {
		return nil, ErrNoSession
	}
	it, err := s.Items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, ErrItemNotFound
	}
	if it.OwnerID != sess.UserID {
		return nil, ErrNotOwner
	}
	return it, nil
}

// Analyze extracts title/description/category suggestions from a photo.
// Failures surface as gateway.ErrAnalysisFailed so the caller can fall back
// to manual entry.
func (s *ItemService) Analyze(ctx context.Context, image []byte, mimeType string) (*gateway.ItemDetails, error) {
	return s.Matcher.ExtractDetails(ctx, image, mimeType)
}

// UploadImage stores a listing photo in GCS and returns its public URL.
func (s *ItemService) UploadImage(ctx context.Context, sess *entity.Session, r io.Reader, filename, contentType string) (string, error) {
	if sess == nil {
		return "", ErrNoSession
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", ErrUploadsDisabled
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("items", sess.UserID, uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// KeywordSearch is the plain browse filter over the Elasticsearch item
// index. The AI matcher stays the only relevance judge for semantic search;
// this is a literal multi_match lookup.
func (s *ItemService) KeywordSearch(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESItemsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "category", "location"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESItemsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// indexItem mirrors the item into Elasticsearch, best effort. The durable
// store stays authoritative; index failures are logged and swallowed.
func (s *ItemService) indexItem(ctx context.Context, it *entity.Item) {
	if s.ES == nil || s.ESItemsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          it.ID,
		"type":        it.Type,
		"title":       it.Title,
		"description": it.Description,
		"category":    it.Category,
		"location":    it.Location,
		"retrieved":   it.Retrieved,
		"timestamp":   it.Timestamp.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESItemsIndex, DocumentID: it.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("item_id", it.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("item_id", it.ID).Warn("es index response error")
	}
}

func (s *ItemService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESItemsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESItemsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("item_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *ItemService) queueRetrievedEmail(ctx context.Context, sess *entity.Session, it *entity.Item) {
	if s.Rabbit == nil || s.Users == nil {
		return
	}
	owner, err := s.Users.GetByID(ctx, sess.UserID)
	if err != nil || owner == nil || owner.Email == "" {
		return
	}
	job := mailer.EmailJob{
		To:       owner.Email,
		Template: mailer.TemplateItemRetrieved,
		Data:     map[string]any{"Username": owner.Username, "Title": it.Title},
	}
	if err := s.Rabbit.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("item_id", it.ID).Warn("queue retrieved email failed")
	}
}
