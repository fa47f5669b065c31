package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrUnavailable = errors.New("store unavailable")
	ErrCanceled    = errors.New("request canceled")
)

// ParseID converts a path identifier into the store key.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// classify tags caller cancellation with ErrCanceled and connectivity failures
// with ErrUnavailable, and leaves the rest as is.
func classify(err error) error {
	var sse topology.ServerSelectionError
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	case errors.As(err, &sse),
		errors.Is(err, mongo.ErrClientDisconnected),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
