package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"AgendorBridge/internal/config"
	"AgendorBridge/internal/lib/sl"
)

const connectTimeout = 5 * time.Second

// MongoDB holds connection options only. The service keeps no data of its
// own, so the database is opened for connectivity checks and closed again.
type MongoDB struct {
	clientOptions *options.ClientOptions
	log           *slog.Logger
}

func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if conf.Mongo.Uri == "" {
		return nil, nil
	}
	clientOptions := options.Client().
		ApplyURI(conf.Mongo.Uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)
	if err := clientOptions.Validate(); err != nil {
		return nil, fmt.Errorf("mongodb uri: %w", err)
	}
	return &MongoDB{
		clientOptions: clientOptions,
		log:           logger.With(sl.Module("mongodb")),
	}, nil
}

func (m *MongoDB) connect(ctx context.Context) (*mongo.Client, error) {
	connection, err := mongo.Connect(ctx, m.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	return connection, nil
}

func (m *MongoDB) disconnect(ctx context.Context, connection *mongo.Client) {
	if err := connection.Disconnect(ctx); err != nil {
		m.log.Debug("mongodb disconnect", sl.Err(err))
	}
}

// Ping checks that the primary answers.
func (m *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	connection, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer m.disconnect(ctx, connection)

	if err = connection.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping error: %w", err)
	}
	return nil
}
