package usecases

import "context"

// UnreadCountCache holds the badge value per recipient. A miss reports ok=false.
type UnreadCountCache interface {
	Get(ctx context.Context, userID uint) (count int64, ok bool, err error)
	Set(ctx context.Context, userID uint, count int64) error
	Invalidate(ctx context.Context, userID uint) error
}
