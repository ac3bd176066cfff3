package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	lru "github.com/hashicorp/golang-lru"
)

const (
	imageExt         = ".jpg"
	imageCacheSize   = 512
	headTimeout      = 500 * time.Millisecond
	imageCacheTTL    = time.Hour
	imageContentType = "image/jpeg"
)

// objectStore is the subset of the S3 client the image service calls.
type objectStore interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type presence struct {
	exists  bool
	checked time.Time
}

// BirdImageService serves species artwork from a DigitalOcean Spaces bucket.
type BirdImageService struct {
	client   objectStore
	bucket   string
	region   string
	BirdRoot string
	known    *lru.Cache
	now      func() time.Time
}

func NewBirdImageService(ctx context.Context, key, secret, region, bucket, birdRoot string) (*BirdImageService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.digitaloceanspaces.com", region))
	})
	return newBirdImageService(client, region, bucket, birdRoot)
}

func newBirdImageService(client objectStore, region, bucket, birdRoot string) (*BirdImageService, error) {
	cache, err := lru.New(imageCacheSize)
	if err != nil {
		return nil, err
	}
	return &BirdImageService{
		client:   client,
		bucket:   bucket,
		region:   region,
		BirdRoot: strings.Trim(birdRoot, "/"),
		known:    cache,
		now:      time.Now,
	}, nil
}

// Key is the object key of a species image: <root>/<rarity>/<species>.jpg
func (s *BirdImageService) Key(sp catalog.Species) string {
	key := fmt.Sprintf("%s/%s%s", sp.Rarity, sp.ID, imageExt)
	if s.BirdRoot == "" {
		return key
	}
	return s.BirdRoot + "/" + key
}

func (s *BirdImageService) ImageURL(sp catalog.Species) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, s.Key(sp))
}

// HasImage reports whether artwork exists, caching answers for an hour.
// Lookup failures count as missing so embeds simply render without a thumbnail.
func (s *BirdImageService) HasImage(ctx context.Context, sp catalog.Species) bool {
	key := s.Key(sp)
	if v, ok := s.known.Get(key); ok {
		p := v.(presence)
		if s.now().Sub(p.checked) < imageCacheTTL {
			return p.exists
		}
	}

	headCtx, cancel := context.WithTimeout(ctx, headTimeout)
	defer cancel()

	_, err := s.client.HeadObject(headCtx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	exists := err == nil
	if err != nil {
		var nf *types.NotFound
		if !errors.As(err, &nf) {
			slog.Debug("Bird image lookup failed",
				slog.String("type", "sys"),
				slog.String("key", key),
				slog.Any("error", err))
			return false
		}
	}
	s.known.Add(key, presence{exists: exists, checked: s.now()})
	return exists
}

// ThumbnailURL returns the image URL when the species has artwork.
func (s *BirdImageService) ThumbnailURL(ctx context.Context, sp catalog.Species) (string, bool) {
	if !s.HasImage(ctx, sp) {
		return "", false
	}
	return s.ImageURL(sp), true
}

// Upload stores public artwork for a species.
func (s *BirdImageService) Upload(ctx context.Context, sp catalog.Species, body io.Reader) error {
	key := s.Key(sp)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(imageContentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	s.known.Add(key, presence{exists: true, checked: s.now()})
	return nil
}

func (s *BirdImageService) Delete(ctx context.Context, sp catalog.Species) error {
	key := s.Key(sp)
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	s.known.Remove(key)
	return nil
}

func (s *BirdImageService) GetBucket() string {
	return s.bucket
}
