package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxImageDim = 1024

// Uploader stores pet photos in S3 as webp. Returns nil when the
// bucket is not configured; the photo endpoint then reports the
// feature as unavailable.
type Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

type UploaderConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

func NewUploader(cfg UploaderConfig) *Uploader {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})

	return &Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseURL: cfg.PublicBaseURL,
	}
}

// UploadWebP scales the image down to maxImageDim, encodes it as webp
// and puts it under key. Returns the public URL.
func (u *Uploader) UploadWebP(ctx context.Context, key string, img image.Image) (string, error) {
	img = fit(img, maxImageDim)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}

	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.baseURL != "" {
		return fmt.Sprintf("%s/%s", u.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

func fit(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
