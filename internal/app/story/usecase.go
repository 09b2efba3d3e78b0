package story

import (
	"context"
	"errors"

	"shadowrise/internal/app/ports"
)

var ErrInvalidChapter = errors.New("invalid story chapter number")

type UseCase struct {
	Provider ports.StoryProvider
}

func (u UseCase) Index(ctx context.Context) ([]byte, error) {
	return u.Provider.Index(ctx)
}

func (u UseCase) Chapter(ctx context.Context, number int) ([]byte, error) {
	if number <= 0 {
		return nil, ErrInvalidChapter
	}
	return u.Provider.Chapter(ctx, number)
}
