package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"labo-isometeer-backend/config"
)

type Provider interface {
	UploadContract(ctx context.Context, workOrderID string, fileReader io.Reader, fileSize int64, contentType string) error
	GetContract(ctx context.Context, workOrderID string) ([]byte, error)
	DeleteContract(ctx context.Context, workOrderID string) error
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadContract(ctx context.Context, workOrderID string, fileReader io.Reader, fileSize int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, i.contractObjectName(workOrderID),
		fileReader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetContract(ctx context.Context, workOrderID string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, i.contractObjectName(workOrderID), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (i impl) DeleteContract(ctx context.Context, workOrderID string) error {
	return i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, i.contractObjectName(workOrderID), minio.RemoveObjectOptions{})
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (i impl) contractObjectName(workOrderID string) string {
	return fmt.Sprintf("ot/%s/contrato", workOrderID)
}
