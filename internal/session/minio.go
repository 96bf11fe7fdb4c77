package session

import (
	"bytes"
	"context"
	"strings"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioStore keeps session blobs in an object bucket, one object per SID.
// Used when the service runs without a shared filesystem.
type MinioStore struct {
	cli    *minio.Client
	bucket string
}

func NewMinioStore(conf config.SessionConfig) (*MinioStore, error) {
	cli, err := minio.New(
		conf.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.MinioAccessKey, conf.MinioSecretKey, ""),
			Secure: conf.MinioUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}

	exists, err := cli.BucketExists(context.Background(), conf.MinioBucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		err = cli.MakeBucket(
			context.Background(),
			conf.MinioBucket,
			minio.MakeBucketOptions{},
		)
		if err != nil {
			return nil, err
		}
	}

	return &MinioStore{cli: cli, bucket: conf.MinioBucket}, nil
}

func (m *MinioStore) Save(ctx context.Context, s *Session) error {
	if !ValidSID(s.SID) {
		return ErrInvalidSID
	}

	blob, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = m.cli.PutObject(
		ctx,
		m.bucket,
		s.SID,
		bytes.NewReader(blob),
		int64(len(blob)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)

	return err
}

func (m *MinioStore) Get(ctx context.Context, sid string) (*Session, error) {
	if !ValidSID(sid) {
		return nil, ErrSessionNotFound
	}

	obj, err := m.cli.GetObject(ctx, m.bucket, sid, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	s := &Session{}
	if err = json.NewDecoder(obj).Decode(s); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return s, nil
}

func (m *MinioStore) DeleteFromIdentifiers(ctx context.Context, identifiers []string) int {
	deleted := 0
	for _, identifier := range identifiers {
		if !ValidSID(identifier) {
			continue
		}

		objects := m.cli.ListObjects(
			ctx, m.bucket, minio.ListObjectsOptions{Prefix: identifier},
		)

		for obj := range objects {
			if obj.Err != nil {
				zap.L().Warn(
					"failed to list session objects",
					zap.String("identifier", identifier),
					zap.Error(obj.Err),
				)
				continue
			}

			if !strings.HasPrefix(obj.Key, identifier) {
				continue
			}

			err := m.cli.RemoveObject(ctx, m.bucket, obj.Key, minio.RemoveObjectOptions{})
			if err != nil {
				zap.L().Error(
					"failed to delete session object",
					zap.String("key", obj.Key),
					zap.Error(err),
				)
				continue
			}
			deleted++
		}
	}

	zap.L().Info("Deleted session objects", zap.Int("count", deleted))
	return deleted
}
