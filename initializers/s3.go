package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/config"
	filestorage "labo-isometeer-backend/lib/file-storage"
	s3client "labo-isometeer-backend/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("error inicializando el cliente S3")
		return
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)

	err = filestorage.Instance.EnsureBucket(context.Background())
	if err != nil {
		log.WithError(err).Error("no se pudo verificar el bucket de contratos")
		return
	}
	log.Info("cliente S3 inicializado")
}
