package fetch

import (
	"context"
	"os"
	"path/filepath"
)

// FileFetcher 从本地目录取已下载的牌谱，<dir>/<uuid>.json
type FileFetcher struct {
	Dir string
}

func (f *FileFetcher) Fetch(ctx context.Context, uuid string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(f.Dir, uuid+".json"))
}
