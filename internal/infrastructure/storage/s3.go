package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nutrabene/backoffice/pkg/logger"
)

// Uploader abstrai o armazenamento de mídia dos lembretes
type Uploader interface {
	// Upload envia o conteúdo e retorna a URL pública do objeto
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// S3Uploader implementa Uploader sobre um bucket S3 (ou compatível)
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
	logger    logger.Logger
}

// NewS3Uploader cria um novo uploader a partir das variáveis de ambiente.
// S3_ENDPOINT permite apontar para serviços compatíveis (MinIO etc).
func NewS3Uploader(ctx context.Context, log logger.Logger) (*S3Uploader, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET não configurado")
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey := os.Getenv("S3_ACCESS_KEY"); accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, os.Getenv("S3_SECRET_KEY"), "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração AWS: %w", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := os.Getenv("S3_PUBLIC_URL")
	if publicURL == "" {
		if endpoint != "" {
			publicURL = fmt.Sprintf("%s/%s", endpoint, bucket)
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}

	return &S3Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
		logger:    log,
	}, nil
}

// Upload implementa Uploader.Upload
func (u *S3Uploader) Upload(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar arquivo para o bucket: %w", err)
	}

	url := fmt.Sprintf("%s/%s", u.publicURL, key)
	u.logger.Info("mídia enviada para o storage", "key", key, "size", len(data))
	return url, nil
}
