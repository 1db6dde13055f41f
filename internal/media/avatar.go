package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/handyhub/marketplace-api/internal/config"
)

// Avatars are square-bounded and re-encoded to WebP before hitting S3,
// so clients never serve multi-megabyte camera originals.
const maxAvatarDim = 512

// Uploader pushes processed avatars to S3. A nil *Uploader (bucket not
// configured) disables the avatar endpoint.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	baseURL := cfg.S3PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}
}

func (u *Uploader) Enabled() bool {
	return u != nil
}

// UploadAvatar decodes a JPEG/PNG, downscales it to fit maxAvatarDim,
// re-encodes as WebP and uploads it under the user's key. Returns the
// public URL.
func (u *Uploader) UploadAvatar(ctx context.Context, userID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	src = shrink(src, maxAvatarDim)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	key := fmt.Sprintf("avatars/%d.webp", userID)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return u.baseURL + "/" + key, nil
}

// shrink scales the image down so neither side exceeds maxDim. Images
// already within bounds pass through untouched.
func shrink(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
