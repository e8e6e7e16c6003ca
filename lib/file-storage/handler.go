package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	"talentos-backend/db"
	arquivostore "talentos-backend/lib/file-storage/store"
	"talentos-backend/models"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	UploadCurriculo(ctx context.Context, candidatoID, fileName string, file []byte) (id string, err error)
	UploadDocumento(ctx context.Context, candidatoID, fileName string, file []byte) (id string, err error)
	GetFile(ctx context.Context, fileID string) (data []byte, fileName string, err error)
	GetCurriculo(ctx context.Context, candidatoID string) (data []byte, fileName string, err error)
	ListByCandidato(candidatoID string) (list []dbmodels.Arquivo, err error)
	Delete(ctx context.Context, fileID string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
		store:    arquivostore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    arquivostore.Provider
}

func (i impl) UploadCurriculo(ctx context.Context, candidatoID, fileName string, file []byte) (id string, err error) {
	return i.upload(ctx, candidatoID, fileName, models.FileTypeCurriculo, file)
}

func (i impl) UploadDocumento(ctx context.Context, candidatoID, fileName string, file []byte) (id string, err error) {
	return i.upload(ctx, candidatoID, fileName, models.FileTypeDocumento, file)
}

func (i impl) upload(ctx context.Context, candidatoID, fileName string, fileType models.FileType, file []byte) (id string, err error) {
	logger := log.WithField("candidato_id", candidatoID).
		WithField("file_name", fileName)
	rec := dbmodels.Arquivo{
		CandidatoID: candidatoID,
		Tipo:        fileType,
		Nome:        fileName,
	}
	id, err = i.store.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao gravar os metadados do arquivo")
		return "", errors.New("erro ao salvar o arquivo")
	}
	objectName := i.getObjectName(candidatoID, id)
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		logger.WithError(err).Error("erro ao enviar o arquivo para o storage")
		return "", errors.New("erro ao salvar o arquivo")
	}
	rec.BaseModel = dbmodels.BaseModel{ID: id}
	rec.ObjectName = objectName
	if _, err = i.store.SaveFile(rec); err != nil {
		logger.WithError(err).Error("erro ao gravar os metadados do arquivo")
		return "", errors.New("erro ao salvar o arquivo")
	}
	logger.WithField("rec_id", id).Info("arquivo salvo")
	return id, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) (data []byte, fileName string, err error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		log.WithField("rec_id", fileID).WithError(err).Error("erro ao obter o arquivo")
		return nil, "", errors.New("erro ao obter o arquivo")
	}
	if rec == nil {
		return nil, "", errors.New("arquivo não encontrado")
	}
	data, err = i.download(ctx, rec.ObjectName)
	if err != nil {
		return nil, "", err
	}
	return data, rec.Nome, nil
}

func (i impl) GetCurriculo(ctx context.Context, candidatoID string) (data []byte, fileName string, err error) {
	rec, err := i.store.GetByType(candidatoID, models.FileTypeCurriculo)
	if err != nil {
		log.WithField("candidato_id", candidatoID).WithError(err).Error("erro ao obter o currículo")
		return nil, "", errors.New("erro ao obter o currículo")
	}
	if rec == nil {
		return nil, "", errors.New("candidato não possui currículo")
	}
	data, err = i.download(ctx, rec.ObjectName)
	if err != nil {
		return nil, "", err
	}
	return data, rec.Nome, nil
}

func (i impl) ListByCandidato(candidatoID string) (list []dbmodels.Arquivo, err error) {
	return i.store.ListByCandidato(candidatoID)
}

func (i impl) Delete(ctx context.Context, fileID string) error {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		log.WithField("rec_id", fileID).WithError(err).Error("erro ao excluir o arquivo")
		return errors.New("erro ao excluir o arquivo")
	}
	if rec == nil {
		return errors.New("arquivo não encontrado")
	}
	err = i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, rec.ObjectName, minio.RemoveObjectOptions{})
	if err != nil {
		log.WithField("rec_id", fileID).WithError(err).Error("erro ao remover o arquivo do storage")
		return errors.New("erro ao excluir o arquivo")
	}
	return i.store.Delete(fileID)
}

func (i impl) download(ctx context.Context, objectName string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		log.WithField("object_name", objectName).WithError(err).Error("erro ao baixar o arquivo do storage")
		return nil, errors.New("erro ao obter o arquivo")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		log.WithField("object_name", objectName).WithError(err).Error("erro ao baixar o arquivo do storage")
		return nil, errors.New("erro ao obter o arquivo")
	}
	return data, nil
}

func (i impl) getObjectName(candidatoID, fileID string) string {
	return fmt.Sprintf("candidatos/%s/%s", candidatoID, fileID)
}
