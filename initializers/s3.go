package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "talentos-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("erro ao inicializar o cliente S3")
		return
	}
	err = s3client.MakeBucket(context.Background(), minioClient)
	if err != nil {
		log.WithError(err).Error("erro ao garantir o bucket de arquivos")
	}
	s3client.Client = minioClient
	log.Info("cliente S3 inicializado")
}
